package wishlist

import (
	"slices"
	"sync"
	"time"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// Entry 收藏项,只表达"是否收藏",没有数量
type Entry struct {
	BookID string
	Book   book.Book // 收藏时的图书快照
}

// Store 按会话隔离的收藏夹
// 收藏项按加入顺序保存;同一本书最多出现一次
type Store struct {
	mu      sync.RWMutex
	lists   map[string][]Entry
	touched map[string]time.Time // 最后一次变更
	now     func() time.Time
}

// NewStore 创建收藏夹存储
func NewStore() *Store {
	return &Store{
		lists:   make(map[string][]Entry),
		touched: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Toggle 不在收藏夹则加入,已在则移除;返回操作后是否在收藏夹中
// 连续两次Toggle恢复原状态
func (s *Store) Toggle(sessionID string, b book.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[sessionID]
	if i := indexOf(list, b.ID); i >= 0 {
		s.set(sessionID, slices.Delete(list, i, i+1))
		return false
	}
	s.set(sessionID, append(list, Entry{BookID: b.ID, Book: b.Clone()}))
	return true
}

// Contains 是否已收藏
func (s *Store) Contains(sessionID, bookID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return indexOf(s.lists[sessionID], bookID) >= 0
}

// Remove 移除收藏,不存在时返回false
func (s *Store) Remove(sessionID, bookID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[sessionID]
	i := indexOf(list, bookID)
	if i < 0 {
		return false
	}
	s.set(sessionID, slices.Delete(list, i, i+1))
	return true
}

// Items 收藏列表副本
func (s *Store) Items(sessionID string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[sessionID]
	out := make([]Entry, len(list))
	for i, e := range list {
		out[i] = Entry{BookID: e.BookID, Book: e.Book.Clone()}
	}
	return out
}

// EvictIdle 删除超过maxIdle未变更的收藏夹,返回删除数量
func (s *Store) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, at := range s.touched {
		if at.Before(cutoff) {
			delete(s.lists, id)
			delete(s.touched, id)
			n++
		}
	}
	return n
}

// Len 当前保存的收藏夹数量
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lists)
}

func (s *Store) set(sessionID string, list []Entry) {
	if len(list) == 0 {
		delete(s.lists, sessionID)
		delete(s.touched, sessionID)
		return
	}
	s.lists[sessionID] = list
	s.touched[sessionID] = s.now()
}

func indexOf(list []Entry, bookID string) int {
	return slices.IndexFunc(list, func(e Entry) bool { return e.BookID == bookID })
}
