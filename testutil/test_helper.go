/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 测试环境初始化 -> 测试数据创建 -> 测试执行 -> 清理资源
 * @rules 提供可重用的测试工具，确保测试环境的一致性
 * @dependencies gorm, sqlite, testify, time
 * @refs service/models
 */

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brandreview-service/service/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB 测试数据库配置
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 创建测试数据库
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	// 自动迁移所有模型
	err = db.AutoMigrate(
		&models.AnalysisRecord{},
		&models.RuleSetAudit{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &TestDB{DB: db}
}

// CleanDB 清理数据库
func (tdb *TestDB) CleanDB() {
	// 清空所有表的数据
	tables := []string{
		"analysis_records",
		"rule_set_audits",
	}

	for _, table := range tables {
		tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// Close 关闭数据库连接
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// TestDataFactory 测试数据工厂
type TestDataFactory struct {
	DB *gorm.DB
}

// NewTestDataFactory 创建测试数据工厂
func NewTestDataFactory(db *gorm.DB) *TestDataFactory {
	return &TestDataFactory{DB: db}
}

// AnalysisOption 分析快照选项函数类型
type AnalysisOption func(*models.Analysis)

// NewAnalysis 构造测试分析快照, 不落库
func (f *TestDataFactory) NewAnalysis(opts ...AnalysisOption) *models.Analysis {
	analysis := &models.Analysis{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Parameters: models.AnalysisParameters{
			BusinessUnit: "hydraulics",
			Country:      "US",
			AssetType:    "slide",
			ContentType:  "internal",
		},
		OriginalContent: "We deliver precision hydraulic solutions.",
		Scores: models.Scores{
			Internal: 100,
			External: 100,
			Asset:    100,
			Total:    100,
		},
		Issues: []models.Issue{},
		Approval: models.Approval{
			Approver:   "BU owner / brand",
			RiskLevel:  "green",
			RiskLabel:  "Green – aligned with brand, light review",
			TotalScore: 100,
		},
		SuggestedRewrite: "We deliver precision hydraulic solutions.",
		Statistics: models.Statistics{
			TotalIssues: 0,
			BySeverity: map[models.Severity]int{
				models.SeverityCritical: 0,
				models.SeverityWarning:  0,
				models.SeverityInfo:     0,
			},
			ByArea: map[string]int{},
		},
	}

	// 应用选项
	for _, opt := range opts {
		opt(analysis)
	}

	return analysis
}

// WithIssues 设置分析快照的问题列表
func WithIssues(issues ...models.Issue) AnalysisOption {
	return func(a *models.Analysis) {
		a.Issues = issues
		a.Statistics.TotalIssues = len(issues)
	}
}

// WithScores 设置分析快照的得分
func WithScores(internal, external, asset, total int) AnalysisOption {
	return func(a *models.Analysis) {
		a.Scores = models.Scores{
			Internal: internal,
			External: external,
			Asset:    asset,
			Total:    total,
		}
	}
}

// CreateAnalysisRecord 创建测试分析归档记录
func (f *TestDataFactory) CreateAnalysisRecord(riskLevel string) *models.AnalysisRecord {
	record := &models.AnalysisRecord{
		Timestamp:       time.Now().UTC(),
		BusinessUnit:    "hydraulics",
		Country:         "US",
		AssetType:       "slide",
		ContentType:     "internal",
		OriginalContent: "Test content",
		InternalScore:   80,
		ExternalScore:   80,
		AssetScore:      100,
		TotalScore:      87,
		IssueCount:      1,
		RiskLevel:       riskLevel,
		Approver:        "BU owner / brand",
		Detail:          models.JSONB{},
	}

	if err := f.DB.Create(record).Error; err != nil {
		panic(fmt.Sprintf("failed to create test analysis record: %v", err))
	}

	return record
}

// HTTPTestHelper HTTP测试辅助工具
type HTTPTestHelper struct{}

// NewHTTPTestHelper 创建HTTP测试辅助工具
func NewHTTPTestHelper() *HTTPTestHelper {
	return &HTTPTestHelper{}
}

// CreateJSONRequest 创建JSON请求
func (h *HTTPTestHelper) CreateJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// DecodeJSONResponse 解析JSON响应体
func (h *HTTPTestHelper) DecodeJSONResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
