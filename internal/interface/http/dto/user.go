package dto

// LoginRequest HTTP登录请求
// 空字段由领域服务校验,统一返回"Please fill in all fields"
type LoginRequest struct {
	Email    string `json:"email" example:"test@test.com"`
	Password string `json:"password" example:"123456789"`
}

// RefreshRequest HTTP刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest HTTP更新资料请求,空字段不修改
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"max=100" example:"Test User"`
	Phone string `json:"phone" binding:"max=30" example:"555-0100"`
}
