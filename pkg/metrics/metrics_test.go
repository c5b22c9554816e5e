package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// 指标注册在全局Registry，测试之间互相可见，所以只比较增量

func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	first := OrdersPlacedTotal
	InitMetrics()

	if OrdersPlacedTotal != first {
		t.Error("重复初始化不应重新注册指标")
	}
	if HTTPRequestsTotal == nil || CartMutationsTotal == nil || CircuitBreakerState == nil {
		t.Error("指标未初始化")
	}
}

func TestCounterVec(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"op": "add"}
	before := getCounterVecValue(t, CartMutationsTotal, labels)

	IncCounterVec(CartMutationsTotal, labels)
	IncCounterVec(CartMutationsTotal, labels)
	IncCounterVec(CartMutationsTotal, map[string]string{"op": "remove"})

	if got := getCounterVecValue(t, CartMutationsTotal, labels) - before; got != 2 {
		t.Errorf("CounterVec增量错误: expected=2, got=%f", got)
	}
}

func TestCounter(t *testing.T) {
	InitMetrics()
	before := getCounterValue(t, OrdersPlacedTotal)

	IncCounter(OrdersPlacedTotal)

	if got := getCounterValue(t, OrdersPlacedTotal) - before; got != 1 {
		t.Errorf("Counter增量错误: expected=1, got=%f", got)
	}
}

func TestGauge(t *testing.T) {
	InitMetrics()
	SetGauge(HTTPRequestsInProgress, 0)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	if v := getGaugeValue(t, HTTPRequestsInProgress); v != 1 {
		t.Errorf("Gauge值错误: expected=1, got=%f", v)
	}
}

func TestGaugeVec(t *testing.T) {
	InitMetrics()
	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "token-blacklist"}, 1)

	if v := getGaugeVecValue(t, CircuitBreakerState, map[string]string{"name": "token-blacklist"}); v != 1 {
		t.Errorf("GaugeVec值错误: expected=1, got=%f", v)
	}
}

func TestHistogram(t *testing.T) {
	InitMetrics()
	before := getHistogramCount(t, OrderValue)

	ObserveHistogram(OrderValue, 59.40)
	ObserveHistogram(OrderValue, 12.5)

	if got := getHistogramCount(t, OrderValue) - before; got != 2 {
		t.Errorf("Histogram观测次数错误: expected=2, got=%d", got)
	}
}

func TestHistogramVec(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"method": "GET", "path": "/api/v1/books"}
	before := getHistogramVecCount(t, HTTPRequestDuration, labels)

	ObserveHistogramVec(HTTPRequestDuration, labels, 0.003)

	if got := getHistogramVecCount(t, HTTPRequestDuration, labels) - before; got != 1 {
		t.Errorf("HistogramVec观测次数错误: expected=1, got=%d", got)
	}
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("读取Counter值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	return getCounterValue(t, counterVec.With(labels))
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

func getGaugeVecValue(t *testing.T, gaugeVec *prometheus.GaugeVec, labels map[string]string) float64 {
	return getGaugeValue(t, gaugeVec.With(labels))
}

func getHistogramCount(t *testing.T, histogram prometheus.Histogram) uint64 {
	var metric dto.Metric
	if err := histogram.Write(&metric); err != nil {
		t.Fatalf("读取Histogram值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}

func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	return getHistogramCount(t, histogramVec.With(labels).(prometheus.Histogram))
}
