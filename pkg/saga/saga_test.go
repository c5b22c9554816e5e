package saga

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func recordStep(log *[]string, name string) func(context.Context) error {
	return func(context.Context) error {
		*log = append(*log, name)
		return nil
	}
}

func failStep(log *[]string, name string, err error) func(context.Context) error {
	return func(context.Context) error {
		*log = append(*log, name)
		return err
	}
}

func TestSaga_Execute_Success(t *testing.T) {
	var log []string

	s := New("place-order", 5*time.Second)
	s.AddStep("snapshot-cart", recordStep(&log, "snapshot"), nil)
	s.AddStep("take-cart", recordStep(&log, "take"), recordStep(&log, "return"))
	s.AddStep("confirm", recordStep(&log, "confirm"), nil)

	if err := s.Execute(context.Background()); err != nil {
		t.Fatalf("Saga执行失败: %v", err)
	}

	want := []string{"snapshot", "take", "confirm"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("执行顺序错误: 期望%v，实际%v", want, log)
	}
}

func TestSaga_Execute_FailureCompensatesInReverse(t *testing.T) {
	var log []string
	errConfirm := errors.New("flow is not at summary")

	s := New("place-order", 5*time.Second)
	s.AddStep("reserve", recordStep(&log, "reserve"), recordStep(&log, "release"))
	s.AddStep("take-cart", recordStep(&log, "take"), recordStep(&log, "return"))
	s.AddStep("confirm", failStep(&log, "confirm", errConfirm), recordStep(&log, "never"))

	err := s.Execute(context.Background())
	if !errors.Is(err, errConfirm) {
		t.Fatalf("期望包装原始错误，实际%v", err)
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != "confirm" || stepErr.Index != 2 {
		t.Errorf("StepError信息错误: %+v", stepErr)
	}

	// 失败步骤本身不补偿，已完成步骤逆序补偿
	want := []string{"reserve", "take", "confirm", "return", "release"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("补偿顺序错误: 期望%v，实际%v", want, log)
	}
}

func TestSaga_Execute_CompensationFailureContinues(t *testing.T) {
	var log []string

	s := New("place-order", 0)
	s.AddStep("a", recordStep(&log, "a"), recordStep(&log, "undo-a"))
	s.AddStep("b", recordStep(&log, "b"), failStep(&log, "undo-b", errors.New("boom")))
	s.AddStep("c", failStep(&log, "c", errors.New("fail")), nil)

	if err := s.Execute(context.Background()); err == nil {
		t.Fatal("期望返回错误")
	}

	want := []string{"a", "b", "c", "undo-b", "undo-a"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("补偿失败后应继续执行: 期望%v，实际%v", want, log)
	}
}

func TestSaga_Execute_CancelledContext(t *testing.T) {
	var log []string
	ctx, cancel := context.WithCancel(context.Background())

	s := New("place-order", time.Second)
	s.AddStep("a", func(context.Context) error {
		log = append(log, "a")
		cancel()
		return nil
	}, recordStep(&log, "undo-a"))
	s.AddStep("b", recordStep(&log, "b"), nil)

	err := s.Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("期望context.Canceled，实际%v", err)
	}

	want := []string{"a", "undo-a"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("取消后应补偿且不再执行后续步骤: 期望%v，实际%v", want, log)
	}
}

func TestSaga_Execute_CompensateGetsLiveContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var compensateErr error

	s := New("place-order", 0)
	s.AddStep("a", func(context.Context) error { return nil }, func(c context.Context) error {
		compensateErr = c.Err()
		return nil
	})
	s.AddStep("b", func(context.Context) error {
		cancel()
		return errors.New("fail")
	}, nil)

	_ = s.Execute(ctx)
	if compensateErr != nil {
		t.Errorf("补偿Context不应被取消: %v", compensateErr)
	}
}

func TestSaga_NilActionAndCompensate(t *testing.T) {
	s := New("noop", 0)
	s.AddStep("empty", nil, nil)

	if err := s.Execute(context.Background()); err != nil {
		t.Errorf("nil Action应视为成功: %v", err)
	}
}
