package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithFields_DoesNotMutateShared(t *testing.T) {
	base := New(ErrCodeInvalidParams, "Missing required fields")

	derived := base.WithFields(map[string]string{"city": "required"})

	if base.Fields != nil {
		t.Fatalf("预定义错误被修改: %v", base.Fields)
	}
	if derived.Fields["city"] != "required" {
		t.Errorf("字段提示丢失: %v", derived.Fields)
	}
	if !errors.Is(derived, base) {
		t.Error("派生错误应该能匹配原始错误")
	}
}

func TestGetAppError(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", ErrInvalidCredentials)
	if got := GetAppError(wrapped); got.Code != ErrCodeInvalidCredentials {
		t.Errorf("期望错误码%d, 实际%d", ErrCodeInvalidCredentials, got.Code)
	}

	plain := errors.New("boom")
	got := GetAppError(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("普通错误应包装为内部错误, 实际%d", got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("包装后应保留原始错误")
	}
}

func TestIs_DifferentCodes(t *testing.T) {
	if errors.Is(ErrUnauthorized, ErrForbidden) {
		t.Error("不同错误码不应相等")
	}
}

func TestWithCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := ErrRedisError.WithCause(cause)

	if !errors.Is(err, ErrRedisError) {
		t.Error("应能匹配预定义错误")
	}
	if !errors.Is(err, cause) {
		t.Error("应能匹配内部错误")
	}
	if ErrRedisError.Err != nil {
		t.Error("不应修改共享的预定义错误")
	}
}
