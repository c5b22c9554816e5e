// Package saga 按顺序执行一组步骤，任一步骤失败时逆序执行已完成步骤的补偿
//
// 下单流程用它保证"取出购物车"与"确认订单"要么都生效，要么取出的商品被加回购物车。
// 每个补偿最多执行一次，失败时记录日志后继续，不重试。
package saga

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/pkg/metrics"
)

// Step Saga中的一个步骤，Action和Compensate都可以为nil
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError 某个步骤的Action失败
type StepError struct {
	Index int
	Step  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("saga step[%d:%s] failed: %v", e.Index, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Saga 一次事务，不可复用
type Saga struct {
	name     string
	steps    []Step
	executed []Step
	timeout  time.Duration
	logger   *zap.Logger
}

// Option Saga选项
type Option func(*Saga)

// WithLogger 设置日志，补偿失败时记录
func WithLogger(logger *zap.Logger) Option {
	return func(s *Saga) {
		s.logger = logger
	}
}

// New 创建Saga
//
// 示例：
//
//	s := saga.New("place-order", 5*time.Second, saga.WithLogger(logger))
//	s.AddStep("take-cart", takeCart, returnItems)
//	s.AddStep("confirm", confirm, nil)
//	err := s.Execute(ctx)
func New(name string, timeout time.Duration, opts ...Option) *Saga {
	s := &Saga{
		name:    name,
		timeout: timeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	metrics.InitMetrics()
	return s
}

// AddStep 追加步骤：按添加顺序执行，按逆序补偿
func (s *Saga) AddStep(name string, action, compensate func(ctx context.Context) error) *Saga {
	s.steps = append(s.steps, Step{
		Name:       name,
		Action:     action,
		Compensate: compensate,
	})
	return s
}

// Execute 执行所有步骤
//
// 某步失败或整体超时时，逆序补偿已完成的步骤，返回*StepError（超时时包装ctx.Err()）。
// 补偿使用独立的Context，不受原Context取消的影响。
func (s *Saga) Execute(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	for i, step := range s.steps {
		err := ctx.Err()
		if err == nil && step.Action != nil {
			err = step.Action(ctx)
		}
		if err != nil {
			s.compensate(context.WithoutCancel(ctx))
			metrics.IncCounterVec(metrics.SagaExecutionsTotal, map[string]string{"result": "failure"})
			return &StepError{Index: i, Step: step.Name, Err: err}
		}
		s.executed = append(s.executed, step)
	}

	metrics.IncCounterVec(metrics.SagaExecutionsTotal, map[string]string{"result": "success"})
	return nil
}

// compensate 逆序补偿，单个补偿失败时继续执行其余补偿
func (s *Saga) compensate(ctx context.Context) {
	for i := len(s.executed) - 1; i >= 0; i-- {
		step := s.executed[i]
		if step.Compensate == nil {
			continue
		}

		metrics.IncCounter(metrics.SagaCompensationsTotal)
		if err := step.Compensate(ctx); err != nil {
			s.logger.Error("saga compensation failed",
				zap.String("saga", s.name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("saga step compensated",
			zap.String("saga", s.name),
			zap.String("step", step.Name),
		)
	}
	s.executed = nil
}
