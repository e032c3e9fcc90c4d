/*
 * @module service/storage/analysis_store_test
 * @description 分析记录存储单元测试
 * @architecture 测试层 - 基于内存SQLite的存储层测试
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 测试库初始化 -> 记录写入 -> 查询与删除验证
 * @rules 使用内存数据库保证测试隔离
 * @dependencies testing, testify, gorm, sqlite
 * @refs analysis_store.go
 */

package storage

import (
	"testing"
	"time"

	"brandreview-service/service/models"
	"brandreview-service/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*AnalysisStore, *testutil.TestDB) {
	t.Helper()
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	return NewAnalysisStore(tdb.DB), tdb
}

func sampleAnalysis(riskLevel string) *models.Analysis {
	return &models.Analysis{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Parameters: models.AnalysisParameters{
			BusinessUnit: "hydraulics",
			Country:      "DE",
			AssetType:    "slide",
			ContentType:  "internal",
		},
		OriginalContent: "Our world-class offer.",
		Scores:          models.Scores{Internal: 95, External: 100, Asset: 100, Total: 98},
		Issues: []models.Issue{
			{ID: "bt-1", Area: models.AreaLabelInternal, Phrase: "world-class", Penalty: 5, Severity: models.SeverityWarning, Message: "m"},
		},
		Approval: models.Approval{
			Approver:   "BU owner / brand",
			RiskLevel:  riskLevel,
			RiskLabel:  "Green – aligned with brand, light review",
			TotalScore: 98,
		},
		SuggestedRewrite: "Our world-class [→ s] offer.",
	}
}

func TestSaveAnalysisAndGetRecords(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.SaveAnalysis(sampleAnalysis("green")))
	require.NoError(t, store.SaveAnalysis(sampleAnalysis("red")))

	records, total, err := store.GetRecords(1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, records, 2)

	record := records[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "hydraulics", record.BusinessUnit)
	assert.Equal(t, 98, record.TotalScore)
	assert.Equal(t, 1, record.IssueCount)
	// 完整快照落在Detail字段
	assert.Equal(t, "Our world-class offer.", record.Detail["originalContent"])
}

func TestGetRecordsFilterByRiskLevel(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.SaveAnalysis(sampleAnalysis("green")))
	require.NoError(t, store.SaveAnalysis(sampleAnalysis("red")))
	require.NoError(t, store.SaveAnalysis(sampleAnalysis("red")))

	records, total, err := store.GetRecords(1, 10, "red")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, record := range records {
		assert.Equal(t, "red", record.RiskLevel)
	}
}

func TestGetRecordsPagination(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveAnalysis(sampleAnalysis("green")))
	}

	records, total, err := store.GetRecords(2, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, records, 2)
}

func TestGetRecordByID(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveAnalysis(sampleAnalysis("green")))

	records, _, err := store.GetRecords(1, 1, "")
	require.NoError(t, err)
	require.Len(t, records, 1)

	record, err := store.GetRecordByID(records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, records[0].ID, record.ID)

	_, err = store.GetRecordByID("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRecord(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveAnalysis(sampleAnalysis("green")))

	records, _, err := store.GetRecords(1, 1, "")
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, store.DeleteRecord(records[0].ID))

	_, total, err := store.GetRecords(1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	assert.ErrorIs(t, store.DeleteRecord(records[0].ID), gorm.ErrRecordNotFound)
}

func TestRuleSetAudits(t *testing.T) {
	store, _ := newTestStore(t)

	ruleSet := &models.RuleSet{
		Version:     "1.0.0",
		LastUpdated: "2025-11-25",
		BrandTone: []models.Rule{
			{ID: "bt-1", Phrase: "world-class", Penalty: 5, Severity: models.SeverityWarning, Message: "m"},
		},
	}

	require.NoError(t, store.SaveRuleSetAudit(ruleSet, "embedded"))

	audits, err := store.GetRuleSetAudits(10)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, "1.0.0", audits[0].Version)
	assert.Equal(t, "embedded", audits[0].Source)
	assert.Equal(t, 1, audits[0].RuleCount)
	assert.Contains(t, []string(audits[0].Categories), "brandTone")
}
