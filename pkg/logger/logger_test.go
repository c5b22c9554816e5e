package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Defaults(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("创建Logger失败: %v", err)
	}
	if !l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("默认级别应为info")
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("默认级别不应输出debug")
	}
}

func TestNew_JSONDebug(t *testing.T) {
	l, err := New(Options{Level: "debug", Format: "json", Output: "stderr", EnableCaller: true})
	if err != nil {
		t.Fatalf("创建Logger失败: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug级别未生效")
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New(Options{Level: "verbose"}); err == nil {
		t.Error("非法级别应返回错误")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("非法格式应返回错误")
	}
}
