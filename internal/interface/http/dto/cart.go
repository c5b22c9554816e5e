package dto

// AddToCartRequest HTTP加入购物车请求
type AddToCartRequest struct {
	BookID   string `json:"book_id" binding:"required" example:"1"`
	Quantity int    `json:"quantity" example:"1"` // 省略时为1
}

// UpdateCartItemRequest HTTP修改数量请求,数量<=0时删除该行
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" example:"2"`
}
