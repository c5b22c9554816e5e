package review

import (
	"math"
	"slices"
	"sync"
)

// Store 评论存储,按图书ID分组,组内保持插入顺序
// 存储本身不做校验,校验由用例层(application/review)负责
type Store struct {
	mu      sync.RWMutex
	reviews map[string][]Review
}

// NewStore 创建评论存储
func NewStore() *Store {
	return &Store{reviews: make(map[string][]Review)}
}

// Add 追加评论
func (s *Store) Add(bookID string, r Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.BookID = bookID
	s.reviews[bookID] = append(s.reviews[bookID], r)
}

// List 某本书的评论,没有时返回空切片(不是NotFound)
func (s *Store) List(bookID string) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.reviews[bookID])
	if out == nil {
		out = []Review{}
	}
	return out
}

// Summary 评论数与平均分(保留一位小数)
func (s *Store) Summary(bookID string) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.reviews[bookID]
	if len(list) == 0 {
		return Summary{}
	}
	total := 0
	for _, r := range list {
		total += r.Rating
	}
	avg := float64(total) / float64(len(list))
	return Summary{Count: len(list), AverageRating: math.Round(avg*10) / 10}
}
