/*
 * @module service/review/analyzer
 * @description 分析编排服务，串联规则评估、审批判定和改写标注，维护最近分析与有界历史
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 内容校验 -> 规则评估 -> 审批判定 -> 改写标注 -> 统计汇总 -> 历史入队
 * @rules 历史记录最多50条且新记录插入队首; 最近分析为单槽覆盖; 归档与事件发布为尽力而为
 * @dependencies service/models, service/rules, service/monitoring
 * @refs api/controllers/review_controller.go
 */

package review

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"brandreview-service/service/models"
	"brandreview-service/service/monitoring"
	"brandreview-service/service/rules"
)

// maxHistoryEntries 历史记录条数上限
const maxHistoryEntries = 50

// Archiver 分析记录归档接口, 由存储层实现
type Archiver interface {
	SaveAnalysis(analysis *models.Analysis) error
}

// EventSink 分析完成事件发布接口, 由事件层实现
type EventSink interface {
	PublishAnalysisCompleted(analysis *models.Analysis)
}

// ReviewService 品牌审查编排服务
// 最近分析槽与历史列表为服务实例私有状态, 仅经由 Analyze/Import/ClearHistory 变更
type ReviewService struct {
	mu        sync.RWMutex
	evaluator *Evaluator
	last      *models.Analysis
	history   []models.HistoryEntry
	archiver  Archiver
	events    EventSink
}

// NewReviewService 创建品牌审查编排服务
// archiver 和 events 可为 nil, 此时跳过归档与事件发布
func NewReviewService(repo *rules.Repository, archiver Archiver, events EventSink) *ReviewService {
	return &ReviewService{
		evaluator: NewEvaluator(repo),
		history:   []models.HistoryEntry{},
		archiver:  archiver,
		events:    events,
	}
}

// Analyze 执行一次完整的品牌审查分析
func (s *ReviewService) Analyze(content, businessUnit, country, assetType, contentType string) (*models.Analysis, error) {
	if isBlank(content) {
		return nil, ErrEmptyContent
	}

	start := time.Now()

	evaluation, err := s.evaluator.Evaluate(content, businessUnit, country, assetType, contentType)
	if err != nil {
		return nil, err
	}

	approval := ResolveApproval(evaluation.Scores.Total, evaluation.Issues)
	rewrite := GenerateRewrite(content, evaluation.Issues)

	analysis := &models.Analysis{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Parameters: models.AnalysisParameters{
			BusinessUnit: businessUnit,
			Country:      country,
			AssetType:    assetType,
			ContentType:  contentType,
		},
		OriginalContent:  content,
		Scores:           evaluation.Scores,
		Penalties:        evaluation.Penalties,
		Issues:           evaluation.Issues,
		Approval:         approval,
		SuggestedRewrite: rewrite,
		Statistics:       calculateStatistics(evaluation.Issues),
	}

	s.mu.Lock()
	s.last = analysis
	s.pushHistory(analysis)
	historySize := len(s.history)
	s.mu.Unlock()

	monitoring.ObserveAnalysis(approval.RiskLevel, time.Since(start))
	monitoring.SetHistorySize(historySize)

	if s.archiver != nil {
		if err := s.archiver.SaveAnalysis(analysis); err != nil {
			slog.Warn("分析记录归档失败", "error", err)
		}
	}
	if s.events != nil {
		s.events.PublishAnalysisCompleted(analysis)
	}

	return analysis, nil
}

// GetLast 返回最近一次分析, 无分析时返回 nil
func (s *ReviewService) GetLast() *models.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// GetHistory 返回历史记录副本, 新记录在前
func (s *ReviewService) GetHistory() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]models.HistoryEntry, len(s.history))
	copy(history, s.history)
	return history
}

// ClearHistory 清空历史记录
func (s *ReviewService) ClearHistory() {
	s.mu.Lock()
	s.history = []models.HistoryEntry{}
	s.mu.Unlock()

	monitoring.SetHistorySize(0)
}

// Compare 对比两次分析
// 问题差集按标识(无ID时退化为短语)双向计算
func (s *ReviewService) Compare(a, b *models.Analysis) *models.Comparison {
	return &models.Comparison{
		ScoreDifference: models.ScoreDifference{
			Total:    b.Scores.Total - a.Scores.Total,
			Internal: b.Scores.Internal - a.Scores.Internal,
			External: b.Scores.External - a.Scores.External,
			Asset:    b.Scores.Asset - a.Scores.Asset,
		},
		IssueCountDifference: len(b.Issues) - len(a.Issues),
		NewIssues:            diffIssues(a.Issues, b.Issues),
		ResolvedIssues:       diffIssues(b.Issues, a.Issues),
	}
}

// Export 导出分析快照为规范JSON编码(两空格缩进)
// analysis 为 nil 时导出最近一次分析
func (s *ReviewService) Export(analysis *models.Analysis) ([]byte, error) {
	if analysis == nil {
		analysis = s.GetLast()
	}
	if analysis == nil {
		return nil, ErrNoAnalysis
	}
	return json.MarshalIndent(analysis, "", "  ")
}

// Import 解析分析快照编码并安装为最近分析
func (s *ReviewService) Import(data []byte) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, &FormatError{Err: err}
	}

	s.mu.Lock()
	s.last = &analysis
	s.mu.Unlock()

	return &analysis, nil
}

// pushHistory 将精简条目插入历史队首并截断到上限, 调用方需持有写锁
func (s *ReviewService) pushHistory(analysis *models.Analysis) {
	entry := models.HistoryEntry{
		Timestamp:  analysis.Timestamp,
		Parameters: analysis.Parameters,
		Scores:     analysis.Scores,
		IssueCount: len(analysis.Issues),
		Approval:   analysis.Approval,
	}

	s.history = append([]models.HistoryEntry{entry}, s.history...)
	if len(s.history) > maxHistoryEntries {
		s.history = s.history[:maxHistoryEntries]
	}
}

// calculateStatistics 按严重级别与区域统计问题数量
// 仅统计已定义的严重级别, 未识别的级别不计入 bySeverity
func calculateStatistics(issues []models.Issue) models.Statistics {
	stats := models.Statistics{
		TotalIssues: len(issues),
		BySeverity: map[models.Severity]int{
			models.SeverityCritical: 0,
			models.SeverityWarning:  0,
			models.SeverityInfo:     0,
		},
		ByArea: map[string]int{},
	}

	for _, issue := range issues {
		if issue.Severity.IsValid() {
			stats.BySeverity[issue.Severity]++
		}

		area := issue.Area
		if area == "" {
			area = "Other"
		}
		stats.ByArea[area]++
	}

	return stats
}

// diffIssues 返回 next 中存在而 prev 中不存在的问题
func diffIssues(prev, next []models.Issue) []models.Issue {
	seen := make(map[string]bool, len(prev))
	for _, issue := range prev {
		seen[issue.Key()] = true
	}

	diff := []models.Issue{}
	for _, issue := range next {
		if !seen[issue.Key()] {
			diff = append(diff, issue)
		}
	}
	return diff
}

// isBlank 判断内容是否为空或仅含空白字符
func isBlank(content string) bool {
	for _, r := range content {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
