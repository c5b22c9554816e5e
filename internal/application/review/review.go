package review

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/review"
)

// ReviewView 评论DTO
type ReviewView struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ListReviewsResponse 评论列表,附带统计
type ListReviewsResponse struct {
	List    []ReviewView   `json:"list"`
	Summary review.Summary `json:"summary"`
}

// AddReviewRequest 发表评论请求
type AddReviewRequest struct {
	BookID   string
	UserID   string
	UserName string
	Rating   int
	Comment  string
}

// ReviewUseCase 评论用例
// 设计说明:
// 1. domain/review.Store不做校验,这里是校验边界
// 2. 图书必须存在(NotFound),评分1-5,评论非空(ValidationError)
type ReviewUseCase struct {
	catalog *book.Catalog
	store   *review.Store
	logger  *zap.Logger
	now     func() time.Time
}

// NewReviewUseCase 创建评论用例
func NewReviewUseCase(catalog *book.Catalog, store *review.Store, logger *zap.Logger) *ReviewUseCase {
	return &ReviewUseCase{catalog: catalog, store: store, logger: logger, now: time.Now}
}

// List 按发表顺序返回,没有评论时返回空列表
func (uc *ReviewUseCase) List(ctx context.Context, bookID string) (*ListReviewsResponse, error) {
	if _, err := uc.catalog.ByID(bookID); err != nil {
		return nil, err
	}

	reviews := uc.store.List(bookID)
	list := make([]ReviewView, len(reviews))
	for i, r := range reviews {
		list[i] = toView(r)
	}
	return &ListReviewsResponse{List: list, Summary: uc.store.Summary(bookID)}, nil
}

// Add 发表评论
func (uc *ReviewUseCase) Add(ctx context.Context, req AddReviewRequest) (*ReviewView, error) {
	if _, err := uc.catalog.ByID(req.BookID); err != nil {
		return nil, err
	}
	if err := review.Validate(req.Rating, req.Comment); err != nil {
		return nil, err
	}

	r := review.NewReview(req.BookID, req.UserID, req.UserName, req.Rating, req.Comment, uc.now())
	uc.store.Add(req.BookID, r)

	uc.logger.Info("review added",
		zap.String("book_id", req.BookID),
		zap.String("user_id", req.UserID),
		zap.Int("rating", req.Rating),
	)
	view := toView(r)
	return &view, nil
}

func toView(r review.Review) ReviewView {
	return ReviewView{
		ID:        r.ID,
		BookID:    r.BookID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
