package user

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/user"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
	"github.com/xiebiao/storefront/pkg/jwt"
	"github.com/xiebiao/storefront/pkg/metrics"
	"github.com/xiebiao/storefront/pkg/tracing"
)

const tracerName = "storefront/user"

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 验证邮箱密码（领域服务,失败时统一返回ErrInvalidCredentials）
// 2. 生成JWT Token对,Access Token携带角色
// 3. 记录登录指标,失败只记日志不暴露原因
type LoginUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
	logger      *zap.Logger
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(userService user.Service, jwtManager *jwt.Manager, logger *zap.Logger) *LoginUseCase {
	metrics.InitMetrics()
	return &LoginUseCase{
		userService: userService,
		jwtManager:  jwtManager,
		logger:      logger,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (resp *LoginResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "Login")
	defer func() { tracing.End(span, err) }()

	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		result := "error"
		switch {
		case errors.Is(err, user.ErrMissingCredentials):
			result = "missing"
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			result = "invalid"
		}
		metrics.IncCounterVec(metrics.LoginAttemptsTotal, map[string]string{"result": result})
		// 不记录邮箱以外的输入
		uc.logger.Info("login failed", zap.String("email", req.Email), zap.String("result", result))
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID), attribute.String("user.role", string(u.Role)))

	tokenPair, err := uc.jwtManager.GenerateToken(jwt.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   string(u.Role),
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.LoginAttemptsTotal, map[string]string{"result": "success"})
	uc.logger.Info("login succeeded", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))

	return &LoginResponse{
		User:         toUserInfo(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 用户登出用例
type LogoutUseCase struct {
	blacklist  user.TokenBlacklist
	jwtManager *jwt.Manager
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(blacklist user.TokenBlacklist, jwtManager *jwt.Manager) *LogoutUseCase {
	return &LogoutUseCase{blacklist: blacklist, jwtManager: jwtManager}
}

// Execute 登出
// 1. 当前Access Token加入黑名单
// 2. 整个登录会话加入黑名单，保留到Refresh Token过期，之后同一会话的刷新和已刷新出的Token全部失效
func (uc *LogoutUseCase) Execute(ctx context.Context, accessToken string) error {
	claims, err := uc.jwtManager.ParseToken(accessToken)
	if err != nil {
		return err
	}
	if err := uc.blacklist.Add(ctx, accessToken, uc.jwtManager.AccessTTL()); err != nil {
		return err
	}
	return uc.blacklist.Add(ctx, jwt.SessionKey(claims.SessionID), uc.jwtManager.RefreshTTL())
}

// RefreshTokenUseCase 刷新Access Token
type RefreshTokenUseCase struct {
	jwtManager *jwt.Manager
	blacklist  user.TokenBlacklist
}

// NewRefreshTokenUseCase 创建刷新用例
func NewRefreshTokenUseCase(jwtManager *jwt.Manager, blacklist user.TokenBlacklist) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{jwtManager: jwtManager, blacklist: blacklist}
}

// Execute 用Refresh Token换取新的Access Token，已登出的会话返回ErrTokenRevoked
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	claims, err := uc.jwtManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	revoked, err := uc.blacklist.Contains(ctx, jwt.SessionKey(claims.SessionID))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	token, err := uc.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtManager.AccessTTL().Seconds()),
	}, nil
}

// =========================================
// 应用层DTO
// =========================================

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token过期时间（秒）
}

// RefreshResponse 刷新响应
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

func toUserInfo(u *user.User) UserInfo {
	return UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}
