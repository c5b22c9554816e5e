package cart

import (
	"sync"
	"time"
)

// Store 按会话隔离的购物车存储
// 并发设计:
// 1. 一把互斥锁串行化所有变更,同一会话的并发请求不会产生重复行
// 2. 读操作返回深拷贝,不会读到一半的状态
// 3. 记录每个会话最后一次变更的时间,EvictIdle清理长期无人操作的购物车
type Store struct {
	mu    sync.Mutex
	carts map[string]*cart
	now   func() time.Time
}

// NewStore 创建购物车存储
func NewStore() *Store {
	return &Store{carts: make(map[string]*cart), now: time.Now}
}

// Dispatch 执行命令并返回变更后的快照
func (s *Store) Dispatch(sessionID string, cmd Command) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = newCart()
		s.carts[sessionID] = c
	}
	cmd.apply(c)
	c.touched = s.now()

	// 空购物车不占内存
	if len(c.order) == 0 {
		delete(s.carts, sessionID)
	}
	return c.snapshot()
}

// Take 原子地取出整个购物车:返回取出前的内容,购物车变为空
// 读和清空在同一把锁内完成,不会与并发的加购交错
func (s *Store) Take(sessionID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return Cart{Items: []LineItem{}}
	}
	delete(s.carts, sessionID)
	return c.snapshot()
}

// Snapshot 当前购物车副本,不存在时返回空购物车
func (s *Store) Snapshot(sessionID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		return c.snapshot()
	}
	return Cart{Items: []LineItem{}}
}

// Subtotal 小计(分)
func (s *Store) Subtotal(sessionID string) int64 {
	return s.Snapshot(sessionID).Subtotal()
}

// ItemCount 商品件数
func (s *Store) ItemCount(sessionID string) int {
	return s.Snapshot(sessionID).ItemCount()
}

// EvictIdle 删除超过maxIdle未变更的购物车,返回删除数量
func (s *Store) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, c := range s.carts {
		if c.touched.Before(cutoff) {
			delete(s.carts, id)
			n++
		}
	}
	return n
}

// Len 当前保存的购物车数量
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.carts)
}
