/*
 * @module service/rules/repository_test
 * @description 规则仓库单元测试
 * @architecture 测试层 - 覆盖多种规则源与失败保持语义
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 规则源准备 -> 加载 -> 快照与状态验证
 * @rules 确保加载失败时已加载规则集保持不变
 * @dependencies testing, testify, net/http/httptest
 * @refs repository.go
 */

package rules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"brandreview-service/service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalRuleSet() *models.RuleSet {
	return &models.RuleSet{
		Version:     "2.0.0",
		LastUpdated: "2026-01-01",
		BrandTone: []models.Rule{
			{ID: "bt-x", Phrase: "Buzzword", Penalty: 5, Severity: models.SeverityWarning, Message: "m"},
		},
	}
}

func TestLoadFromObject(t *testing.T) {
	repo := NewRepository(nil)

	require.NoError(t, repo.Load(context.Background(), minimalRuleSet()))

	snapshot, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", snapshot.Version)
	// 短语在加载时统一小写
	assert.Equal(t, "buzzword", snapshot.BrandTone[0].Phrase)
}

func TestLoadClonesCallerObject(t *testing.T) {
	repo := NewRepository(nil)
	src := minimalRuleSet()

	require.NoError(t, repo.Load(context.Background(), src))

	// 调用方修改原对象不影响已加载的规则集
	src.BrandTone[0].Phrase = "mutated"
	snapshot, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "buzzword", snapshot.BrandTone[0].Phrase)
}

func TestLoadFromBytes(t *testing.T) {
	repo := NewRepository(nil)
	data, err := json.Marshal(minimalRuleSet())
	require.NoError(t, err)

	require.NoError(t, repo.Load(context.Background(), data))

	status := repo.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, "bytes", status.Source)
}

func TestLoadFromFile(t *testing.T) {
	repo := NewRepository(nil)
	data, err := json.Marshal(minimalRuleSet())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, repo.Load(context.Background(), path))

	status := repo.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, path, status.Source)
}

func TestLoadFromURL(t *testing.T) {
	data, err := json.Marshal(minimalRuleSet())
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	defer server.Close()

	repo := NewRepository(nil)
	require.NoError(t, repo.Load(context.Background(), server.URL))

	snapshot, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", snapshot.Version)
}

func TestLoadFromURLServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewRepository(nil)
	err := repo.Load(context.Background(), server.URL)

	var loadErr *RuleLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadFailureKeepsCurrentRuleSet(t *testing.T) {
	repo := NewRepository(nil)
	require.NoError(t, repo.LoadDefault())

	testCases := []struct {
		name   string
		source interface{}
	}{
		{name: "规则文档非JSON", source: []byte("not json")},
		{name: "缺少version字段", source: mustMarshal(&models.RuleSet{LastUpdated: "2026-01-01"})},
		{name: "负扣分视为文档错误", source: mustMarshal(&models.RuleSet{
			Version:   "bad",
			BrandTone: []models.Rule{{ID: "b", Phrase: "x", Penalty: -5, Message: "m"}},
		})},
		{name: "不支持的源类型", source: 42},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.Load(context.Background(), tc.source)
			require.Error(t, err)

			snapshot, snapErr := repo.Snapshot()
			require.NoError(t, snapErr)
			assert.Equal(t, "1.0.0", snapshot.Version)
		})
	}
}

func TestLoadNormalizesUnknownSeverity(t *testing.T) {
	repo := NewRepository(nil)
	rs := &models.RuleSet{
		Version: "3.0.0",
		BrandTone: []models.Rule{
			{ID: "b", Phrase: "x", Penalty: 5, Severity: "blocker", Message: "m"},
		},
	}

	require.NoError(t, repo.Load(context.Background(), rs))

	snapshot, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, models.SeverityInfo, snapshot.BrandTone[0].Severity)
}

func TestSnapshotBeforeLoad(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.Snapshot()
	assert.ErrorIs(t, err, ErrNotLoaded)

	status := repo.Status()
	assert.False(t, status.Loaded)
}

func TestLoadDefault(t *testing.T) {
	repo := NewRepository(nil)
	require.NoError(t, repo.LoadDefault())

	status := repo.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, "embedded", status.Source)
	assert.Equal(t, "1.0.0", status.Version)
	assert.Greater(t, status.RuleCount, 10)
}

func mustMarshal(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
