package review

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review 图书评论(只追加,不修改不删除)
type Review struct {
	ID        string
	BookID    string
	UserID    string
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// NewReview 创建评论(工厂方法),调用方需先调用Validate
func NewReview(bookID, userID, userName string, rating int, comment string, now time.Time) Review {
	return Review{
		ID:        uuid.NewString(),
		BookID:    bookID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: now,
	}
}

// Validate 评论输入校验
// 业务规则:评分1-5,评论去除首尾空白后不能为空
func Validate(rating int, comment string) error {
	fields := make(map[string]string)
	if rating < MinRating || rating > MaxRating {
		fields["rating"] = "Rating must be between 1 and 5"
	}
	if strings.TrimSpace(comment) == "" {
		fields["comment"] = "Comment is required"
	}
	if len(fields) > 0 {
		return ErrInvalidReview.WithFields(fields)
	}
	return nil
}

// Summary 评论统计
type Summary struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}
