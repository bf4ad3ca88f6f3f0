package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PolicyMetrics 钱包策略相关的业务指标
type PolicyMetrics struct {
	RequestsTotal        *prometheus.CounterVec
	KeyVerdictsTotal     *prometheus.CounterVec
	InternalPlaceholders prometheus.Histogram
}

// Policy 全局实例，Init 之前为 nil
var Policy *PolicyMetrics

// NewPolicyMetrics 创建并在 reg 上注册业务指标
func NewPolicyMetrics(reg prometheus.Registerer) *PolicyMetrics {
	factory := promauto.With(reg)
	return &PolicyMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "policy_ownership_requests_total",
			Help: "The total number of ownership counting requests",
		}, []string{"status"}),
		KeyVerdictsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "policy_key_verdicts_total",
			Help: "Per-key ownership verdicts",
		}, []string{"status"}),
		InternalPlaceholders: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "policy_internal_placeholders",
			Help:    "Number of internal placeholder occurrences per policy",
			Buckets: prometheus.LinearBuckets(0, 1, 8),
		}),
	}
}

// InitPolicyMetrics 初始化全局业务指标
func InitPolicyMetrics(reg prometheus.Registerer) {
	Policy = NewPolicyMetrics(reg)
}

// ObserveRequest 记录一次计数请求的结果
func (m *PolicyMetrics) ObserveRequest(status string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(status).Inc()
}

// ObserveVerdict 记录单个密钥的判定
func (m *PolicyMetrics) ObserveVerdict(status string) {
	if m == nil {
		return
	}
	m.KeyVerdictsTotal.WithLabelValues(status).Inc()
}

// ObserveInternal 记录一个策略中内部占位符的数量
func (m *PolicyMetrics) ObserveInternal(count uint) {
	if m == nil {
		return
	}
	m.InternalPlaceholders.Observe(float64(count))
}
