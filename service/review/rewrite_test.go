/*
 * @module service/review/rewrite_test
 * @description 改写标注器单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 原文与问题列表 -> 标注生成 -> 标记位置和原文保留验证
 * @rules 确保大小写保留、多处命中和字面量匹配语义
 * @dependencies testing, testify
 * @refs rewrite.go
 */

package review

import (
	"testing"

	"brandreview-service/service/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRewriteInsertsMarker(t *testing.T) {
	issues := []models.Issue{
		{Phrase: "world-class", Suggestion: "Describe the specific advantage instead."},
	}

	rewrite := GenerateRewrite("Our world-class pumps.", issues)
	assert.Equal(t, "Our world-class [→ Describe the specific advantage instead.] pumps.", rewrite)
}

func TestGenerateRewritePreservesOriginalCasing(t *testing.T) {
	issues := []models.Issue{
		{Phrase: "world-class", Suggestion: "tone it down"},
	}

	rewrite := GenerateRewrite("WORLD-CLASS performance, World-Class service.", issues)
	assert.Equal(t, "WORLD-CLASS [→ tone it down] performance, World-Class [→ tone it down] service.", rewrite)
}

func TestGenerateRewriteMultipleIssues(t *testing.T) {
	issues := []models.Issue{
		{Phrase: "world-class", Suggestion: "s1"},
		{Phrase: "super cheap", Suggestion: "s2"},
	}

	rewrite := GenerateRewrite("A world-class yet super cheap offer.", issues)
	assert.Equal(t, "A world-class [→ s1] yet super cheap [→ s2] offer.", rewrite)
}

func TestGenerateRewriteLiteralMetacharacters(t *testing.T) {
	// 短语为字面量, 正则元字符不做解释
	issues := []models.Issue{
		{Phrase: "100% safe", Suggestion: "cite the standard"},
	}

	rewrite := GenerateRewrite("It is 100% safe. Also 1000 safes.", issues)
	assert.Equal(t, "It is 100% safe [→ cite the standard]. Also 1000 safes.", rewrite)
}

func TestGenerateRewriteSkipsIssuesWithoutPhrase(t *testing.T) {
	issues := []models.Issue{
		{Phrase: "", Suggestion: "mention pressure or valves"},
	}

	original := "Our product range improves uptime."
	assert.Equal(t, original, GenerateRewrite(original, issues))
}

func TestGenerateRewriteNoMatches(t *testing.T) {
	issues := []models.Issue{
		{Phrase: "giveaway", Suggestion: "s"},
	}

	original := "Technical whitepaper on valve sizing."
	assert.Equal(t, original, GenerateRewrite(original, issues))
}

func TestGenerateRewriteNoIssues(t *testing.T) {
	original := "Calm, specific engineering copy."
	assert.Equal(t, original, GenerateRewrite(original, nil))
}
