package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖和内置默认值
// 配置文件是可选的：不提供时使用默认值即可启动（内存存储 + 内置图书数据）
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Session  SessionConfig  `mapstructure:"session"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LogConfig struct {
	Level        string `mapstructure:"level"`  // debug | info | warn | error
	Format       string `mapstructure:"format"` // console | json
	Output       string `mapstructure:"output"` // stdout | stderr | /path/to/file
	EnableCaller bool   `mapstructure:"enable_caller"`
}

type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpire  time.Duration `mapstructure:"access_token_expire"`
	RefreshTokenExpire time.Duration `mapstructure:"refresh_token_expire"`
}

// SessionConfig 会话配置
// Store决定Token黑名单放在哪里：memory（单进程）或redis（多实例共享）
// 购物车、收藏夹、结算流程闲置超过CookieMaxAge后由后台每SweepInterval清理一次
type SessionConfig struct {
	Store         string        `mapstructure:"store"` // memory | redis
	CookieName    string        `mapstructure:"cookie_name"`
	HeaderName    string        `mapstructure:"header_name"`
	CookieMaxAge  int           `mapstructure:"cookie_max_age"` // 秒
	SecureCookie  bool          `mapstructure:"secure_cookie"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// IdleTimeout 会话状态的最长闲置时间，与Cookie有效期一致
func (c SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(c.CookieMaxAge) * time.Second
}

type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr 返回Redis地址
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	ParseTime       bool          `mapstructure:"parse_time"`
	Loc             string        `mapstructure:"loc"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN 生成MySQL连接字符串
// 注意：loc参数需要URL编码（America/New_York → America%2FNew_York）
func (d DatabaseConfig) DSN() string {
	loc := url.QueryEscape(d.Loc)
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, d.ParseTime, loc)
}

// CatalogConfig 图书目录来源
type CatalogConfig struct {
	Source string `mapstructure:"source"` // fixtures | mysql
	Seed   bool   `mapstructure:"seed"`   // source=mysql且表为空时写入内置图书
}

// CheckoutConfig 结算配置，金额单位为分
type CheckoutConfig struct {
	FreeShippingThreshold int64         `mapstructure:"free_shipping_threshold"`
	ShippingFee           int64         `mapstructure:"shipping_fee"`
	TaxRate               string        `mapstructure:"tax_rate"` // 十进制字符串，如"0.08"，避免浮点误差
	SagaTimeout           time.Duration `mapstructure:"saga_timeout"`
}

// AccountConfig 预置账户（启动时bcrypt哈希，明文不落到内存存储）
type AccountConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Phone    string `mapstructure:"phone"`
	Role     string `mapstructure:"role"` // user | admin
}

type AuthConfig struct {
	BcryptCost int             `mapstructure:"bcrypt_cost"`
	Accounts   []AccountConfig `mapstructure:"accounts"`
}

type CORSConfig struct {
	AllowOrigins     []string      `mapstructure:"allow_origins"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
	Insecure    bool    `mapstructure:"insecure"`
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// setDefaults 内置默认值，保证没有配置文件也能启动
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("jwt.secret", defaultJWTSecret)
	v.SetDefault("jwt.access_token_expire", 2*time.Hour)
	v.SetDefault("jwt.refresh_token_expire", 7*24*time.Hour)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.cookie_name", "bookstore_sid")
	v.SetDefault("session.header_name", "X-Session-ID")
	v.SetDefault("session.cookie_max_age", 7*24*3600)
	v.SetDefault("session.sweep_interval", 10*time.Minute)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.dbname", "bookstore")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.loc", "Local")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("catalog.source", "fixtures")
	v.SetDefault("catalog.seed", true)

	v.SetDefault("checkout.free_shipping_threshold", 5000)
	v.SetDefault("checkout.shipping_fee", 599)
	v.SetDefault("checkout.tax_rate", "0.08")
	v.SetDefault("checkout.saga_timeout", 5*time.Second)

	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.accounts", []map[string]any{
		{"email": "test@test.com", "password": "123456789", "name": "Test User", "role": "admin"},
	})

	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 12*time.Hour)

	v.SetDefault("tracing.service_name", "bookstore-storefront")
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.sample_ratio", 1.0)
	v.SetDefault("tracing.insecure", true)
}

// Load 加载配置
// 支持：
// 1. 默认加载config/config.yaml（不存在时只用默认值）
// 2. 通过环境变量BOOKSTORE_ENV指定环境（如config.prod.yaml）
// 3. 环境变量覆盖（如BOOKSTORE_JWT_SECRET → jwt.secret）
func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom 从指定目录加载配置
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	name := "config"
	if env := os.Getenv("BOOKSTORE_ENV"); env != "" {
		name = "config." + env
	}
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量绑定（BOOKSTORE_DATABASE_PASSWORD → database.password）
	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	if cfg.JWT.Secret == defaultJWTSecret && cfg.Server.Mode == "release" {
		return fmt.Errorf("生产环境必须修改JWT密钥")
	}
	if cfg.JWT.AccessTokenExpire <= 0 || cfg.JWT.RefreshTokenExpire <= 0 {
		return fmt.Errorf("JWT过期时间必须大于0")
	}

	switch cfg.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("无效的session.store: %q", cfg.Session.Store)
	}
	if cfg.Session.CookieMaxAge <= 0 || cfg.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.cookie_max_age和session.sweep_interval必须大于0")
	}

	switch cfg.Catalog.Source {
	case "fixtures", "mysql":
	default:
		return fmt.Errorf("无效的catalog.source: %q", cfg.Catalog.Source)
	}

	if cfg.Checkout.FreeShippingThreshold < 0 || cfg.Checkout.ShippingFee < 0 {
		return fmt.Errorf("运费配置不能为负数")
	}
	rate, err := decimal.NewFromString(cfg.Checkout.TaxRate)
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("无效的checkout.tax_rate: %q", cfg.Checkout.TaxRate)
	}

	if len(cfg.Auth.Accounts) == 0 {
		return fmt.Errorf("至少需要配置一个账户")
	}
	for _, acc := range cfg.Auth.Accounts {
		if acc.Email == "" || acc.Password == "" {
			return fmt.Errorf("账户配置缺少email或password")
		}
		if acc.Role != "" && acc.Role != "user" && acc.Role != "admin" {
			return fmt.Errorf("账户%s的角色无效: %q", acc.Email, acc.Role)
		}
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		return fmt.Errorf("开启追踪时必须配置tracing.endpoint")
	}

	return nil
}
