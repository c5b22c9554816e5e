package user

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/user"
)

// ProfileUseCase 账户资料用例
type ProfileUseCase struct {
	userService user.Service
}

// NewProfileUseCase 创建资料用例
func NewProfileUseCase(userService user.Service) *ProfileUseCase {
	return &ProfileUseCase{userService: userService}
}

// Get 读取资料
func (uc *ProfileUseCase) Get(ctx context.Context, email string) (*UserInfo, error) {
	u, err := uc.userService.Profile(ctx, email)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(u)
	return &info, nil
}

// UpdateProfileRequest 更新资料请求,空字段不修改
type UpdateProfileRequest struct {
	Name  string
	Phone string
}

// Update 更新资料
func (uc *ProfileUseCase) Update(ctx context.Context, email string, req UpdateProfileRequest) (*UserInfo, error) {
	u, err := uc.userService.UpdateProfile(ctx, email, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(u)
	return &info, nil
}
