package checkout

import (
	"sync"
	"time"
)

// Store 按会话保存结算流程
// 并发设计:Update在锁内对副本执行变更,返回nil才提交,校验失败不会留下部分修改
type Store struct {
	mu      sync.Mutex
	flows   map[string]*Flow
	touched map[string]time.Time // 最后一次访问
	placed  int64
	now     func() time.Time
}

// NewStore 创建结算流程存储
func NewStore() *Store {
	return &Store{
		flows:   make(map[string]*Flow),
		touched: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Get 当前流程副本
func (s *Store) Get(sessionID string) (*Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, false
	}
	s.touched[sessionID] = s.now()
	return f.Clone(), true
}

// Begin 同一账户已有流程时原样返回,否则用create创建
// 会话中的流程属于其他账户时被新流程替换;create返回错误时(如购物车为空)不做任何修改
func (s *Store) Begin(sessionID, owner string, create func() (*Flow, error)) (*Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.flows[sessionID]; ok && f.Owner == owner {
		s.touched[sessionID] = s.now()
		return f.Clone(), nil
	}
	f, err := create()
	if err != nil {
		return nil, err
	}
	s.flows[sessionID] = f.Clone()
	s.touched[sessionID] = s.now()
	return f, nil
}

// Update 在副本上执行fn,成功后提交
func (s *Store) Update(sessionID string, fn func(f *Flow) error) (*Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrCheckoutNotActive
	}
	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if cur.Step != StepConfirmation && next.Step == StepConfirmation {
		s.placed++
	}
	s.flows[sessionID] = next
	s.touched[sessionID] = s.now()
	return next.Clone(), nil
}

// Delete 丢弃流程(包括其中的订单)
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.flows, sessionID)
	delete(s.touched, sessionID)
}

// EvictIdle 丢弃超过maxIdle未访问的流程,返回丢弃数量
func (s *Store) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, at := range s.touched {
		if at.Before(cutoff) {
			delete(s.flows, id)
			delete(s.touched, id)
			n++
		}
	}
	return n
}

// Len 当前保存的流程数量
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.flows)
}

// OrdersPlaced 进程启动以来的下单数
func (s *Store) OrdersPlaced() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.placed
}
