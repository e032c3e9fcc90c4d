/*
 * @module service/review/evaluator_test
 * @description 规则评估器单元测试
 * @architecture 测试层 - 基于内置规则集的纯逻辑测试
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 规则集加载 -> 文本评估 -> 评分与问题验证
 * @rules 确保评分计算、问题顺序和匹配语义的确定性
 * @dependencies testing, testify
 * @refs evaluator.go
 */

package review

import (
	"context"
	"testing"

	"brandreview-service/service/models"
	"brandreview-service/service/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepository 创建已加载内置规则集的规则仓库
func newTestRepository(t *testing.T) *rules.Repository {
	t.Helper()
	repo := rules.NewRepository(nil)
	require.NoError(t, repo.LoadDefault())
	return repo
}

func TestEvaluateCleanContent(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))

	result, err := evaluator.Evaluate(
		"Our hydraulic valves provide precise pressure control.",
		"hydraulics", "US", "doc", "internal",
	)

	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, models.Scores{Internal: 100, External: 100, Asset: 100, Total: 100}, result.Scores)
}

func TestEvaluateMixedViolations(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))

	// 命中: bt-1(5) bt-3(10) lc-2(25) 与业务单元缺失(5)计入internal,
	// su-3(20)与cu-de-1(20)计入external, 资产桶无命中
	content := "Our world-class climate neutral motor is super cheap and delivers zero emissions."
	result, err := evaluator.Evaluate(content, "hydraulics", "DE", "slide", "internal")

	require.NoError(t, err)
	assert.Equal(t, 55, result.Scores.Internal)
	assert.Equal(t, 60, result.Scores.External)
	assert.Equal(t, 100, result.Scores.Asset)
	assert.Equal(t, 72, result.Scores.Total)

	assert.Equal(t, 45, result.Penalties.Internal)
	assert.Equal(t, 40, result.Penalties.External)
	assert.Equal(t, 0, result.Penalties.Asset)

	// 问题顺序由分类应用顺序决定
	ids := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		ids = append(ids, issue.ID)
	}
	assert.Equal(t, []string{"bt-1", "bt-3", "lc-2", "su-3", "cu-de-1", "bu-hydraulics"}, ids)
}

func TestEvaluateSubstringMatching(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))

	// 匹配为字面量子串包含, 不做词边界处理
	result, err := evaluator.Evaluate(
		"Try our super cheapest hydraulic plan.",
		"hydraulics", "US", "doc", "internal",
	)

	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "bt-3", result.Issues[0].ID)
	assert.Equal(t, "super cheap", result.Issues[0].Phrase)
}

func TestEvaluateCaseInsensitive(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))

	result, err := evaluator.Evaluate(
		"This is a WORLD-CLASS hydraulic system.",
		"hydraulics", "US", "doc", "internal",
	)

	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "bt-1", result.Issues[0].ID)
}

func TestEvaluateBusinessUnitAlignment(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))

	testCases := []struct {
		name         string
		content      string
		businessUnit string
		wantIssue    bool
	}{
		{
			name:         "必备词命中一个即通过",
			content:      "Our pump range improves uptime.",
			businessUnit: "pumping",
			wantIssue:    false,
		},
		{
			name:         "必备词全部缺失时扣分",
			content:      "Our product range improves uptime.",
			businessUnit: "pumping",
			wantIssue:    true,
		},
		{
			name:         "未知业务单元跳过检查",
			content:      "Our product range improves uptime.",
			businessUnit: "unknown-bu",
			wantIssue:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := evaluator.Evaluate(tc.content, tc.businessUnit, "US", "doc", "internal")
			require.NoError(t, err)

			if tc.wantIssue {
				require.Len(t, result.Issues, 1)
				assert.Equal(t, models.AreaLabelBUAlignment, result.Issues[0].Area)
				assert.Empty(t, result.Issues[0].Phrase)
				assert.Equal(t, 95, result.Scores.Internal)
			} else {
				assert.Empty(t, result.Issues)
			}
		})
	}
}

func TestEvaluateDisclaimerCheck(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))

	testCases := []struct {
		name      string
		content   string
		wantIssue bool
	}{
		{
			name:      "缺少免责声明时扣分",
			content:   "Our pump offer saves 12% energy.",
			wantIssue: true,
		},
		{
			name:      "包含免责关键词时通过",
			content:   "Our pump offer saves 12% energy. This is not legally binding.",
			wantIssue: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := evaluator.Evaluate(tc.content, "pumping", "US", "doc", "customer-proposal")
			require.NoError(t, err)

			if tc.wantIssue {
				require.Len(t, result.Issues, 1)
				assert.Equal(t, models.AreaLabelCompliance, result.Issues[0].Area)
				assert.Equal(t, 90, result.Scores.External)
			} else {
				assert.Empty(t, result.Issues)
				assert.Equal(t, 100, result.Scores.External)
			}
		})
	}
}

func TestEvaluateUnknownContextValues(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))

	// 未知的上下文取值不报错, 仅跳过对应检查
	result, err := evaluator.Evaluate(
		"Our hydraulic valves provide precise pressure control.",
		"unknown", "XX", "unknown", "unknown",
	)

	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 100, result.Scores.Total)
}

func TestEvaluateScoreFloorsAtZero(t *testing.T) {
	repo := rules.NewRepository(nil)
	require.NoError(t, repo.Load(context.Background(), &models.RuleSet{
		Version: "test",
		BrandTone: []models.Rule{
			{ID: "x-1", Phrase: "bad phrase", Penalty: 150, Severity: models.SeverityCritical, Message: "m"},
		},
	}))

	evaluator := NewEvaluator(repo)
	result, err := evaluator.Evaluate("this bad phrase appears", "u", "U", "a", "c")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Scores.Internal)
	assert.Equal(t, 67, result.Scores.Total)
}

func TestEvaluateDeterministic(t *testing.T) {
	evaluator := NewEvaluator(newTestRepository(t))
	content := "A world-class eco-friendly giveaway with tiny logo."

	first, err := evaluator.Evaluate(content, "sensors", "DK", "slide", "internal")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := evaluator.Evaluate(content, "sensors", "DK", "slide", "internal")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluateWithoutLoadedRules(t *testing.T) {
	evaluator := NewEvaluator(rules.NewRepository(nil))

	_, err := evaluator.Evaluate("any content", "u", "U", "a", "c")
	assert.ErrorIs(t, err, rules.ErrNotLoaded)
}
