/*
 * @module service/monitoring/metrics
 * @description Prometheus指标定义与上报，覆盖分析次数、耗时、规则加载和历史长度
 * @architecture 监控层 - 指标经 /metrics 端点暴露
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 业务调用 -> 指标上报 -> Prometheus抓取
 * @rules 指标上报不阻塞业务流程
 * @dependencies github.com/prometheus/client_golang
 * @refs service/review/analyzer.go, main.go
 */

package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandreview_analyses_total",
		Help: "按风险等级统计的分析总次数",
	}, []string{"risk_level"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brandreview_analysis_duration_seconds",
		Help:    "单次分析耗时分布",
		Buckets: prometheus.DefBuckets,
	})

	ruleReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandreview_rule_reloads_total",
		Help: "按结果统计的规则集加载次数",
	}, []string{"status"})

	historySize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brandreview_history_size",
		Help: "当前内存中的分析历史条数",
	})
)

// ObserveAnalysis 上报一次分析的风险等级与耗时
func ObserveAnalysis(riskLevel string, duration time.Duration) {
	analysesTotal.WithLabelValues(riskLevel).Inc()
	analysisDuration.Observe(duration.Seconds())
}

// RecordRuleReload 上报一次规则集加载结果
func RecordRuleReload(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ruleReloadsTotal.WithLabelValues(status).Inc()
}

// SetHistorySize 上报当前历史条数
func SetHistorySize(size int) {
	historySize.Set(float64(size))
}
