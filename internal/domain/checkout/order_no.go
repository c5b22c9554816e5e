package checkout

import (
	"strconv"
	"sync"
	"time"
)

// OrderNumberGenerator 订单号生成器
// 格式:ORD- + 毫秒时间戳
// 同一毫秒内(或时钟回拨时)在上一个值的基础上加1,保证进程内严格递增
type OrderNumberGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewOrderNumberGenerator 创建订单号生成器
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{now: time.Now}
}

// Next 生成下一个订单号
func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	token := g.now().UnixMilli()
	if token <= g.last {
		token = g.last + 1
	}
	g.last = token
	return "ORD-" + strconv.FormatInt(token, 10)
}
