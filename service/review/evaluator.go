/*
 * @module service/review/evaluator
 * @description 品牌规则评估器，将文本与上下文参数应用到各规则分类并产出评分与问题列表
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 文本小写化 -> 按固定顺序应用规则分类 -> 累计扣分 -> 计算评分
 * @rules 匹配为字面量子串包含, 不做分词和正则; 相同输入和规则集必须产出完全一致的结果
 * @dependencies service/models, service/rules
 * @refs service/review/analyzer.go
 */

package review

import (
	"math"
	"strings"

	"brandreview-service/service/models"
	"brandreview-service/service/rules"
)

// bucket 评分桶
type bucket int

const (
	bucketInternal bucket = iota
	bucketExternal
	bucketAsset
)

// label 评分桶的展示标签
func (b bucket) label() string {
	switch b {
	case bucketInternal:
		return models.AreaLabelInternal
	case bucketExternal:
		return models.AreaLabelExternal
	case bucketAsset:
		return models.AreaLabelAsset
	}
	return ""
}

// Evaluator 品牌规则评估器
type Evaluator struct {
	repo *rules.Repository
}

// NewEvaluator 创建评估器实例
func NewEvaluator(repo *rules.Repository) *Evaluator {
	return &Evaluator{repo: repo}
}

// Evaluate 评估文本
// 分类应用顺序固定: brandTone -> legalClaims -> sustainability -> technical ->
// cultural -> businessUnits -> assetTypes -> contentTypeRules,
// 问题列表顺序由该顺序决定。未知的业务单元/国家/资产类型/内容类型静默跳过对应检查。
func (e *Evaluator) Evaluate(text, businessUnit, country, assetType, contentType string) (*models.EvaluationResult, error) {
	ruleSet, err := e.repo.Snapshot()
	if err != nil {
		return nil, err
	}

	lowerText := strings.ToLower(text)
	issues := []models.Issue{}
	var penalties models.Penalties

	// 品牌语气 / 法律声明 / 技术表述计入 internal, 可持续性计入 external
	penalties.Internal += matchRules(ruleSet.BrandTone, lowerText, bucketInternal, &issues)
	penalties.Internal += matchRules(ruleSet.LegalClaims, lowerText, bucketInternal, &issues)
	penalties.External += matchRules(ruleSet.Sustainability, lowerText, bucketExternal, &issues)
	penalties.Internal += matchRules(ruleSet.Technical, lowerText, bucketInternal, &issues)

	// 国家文化规则, 未配置的国家视为空规则序列
	penalties.External += matchRules(ruleSet.Cultural[country], lowerText, bucketExternal, &issues)

	// 业务单元对齐: 必备词一个都未出现才扣分, 该问题不携带短语
	if buRule, ok := ruleSet.BusinessUnits[businessUnit]; ok {
		if !containsAny(lowerText, buRule.Required) {
			penalties.Internal += buRule.Penalty
			issues = append(issues, models.Issue{
				ID:         buRule.ID,
				Area:       models.AreaLabelBUAlignment,
				Phrase:     "",
				Penalty:    buRule.Penalty,
				Severity:   buRule.Severity,
				Message:    buRule.Message,
				Suggestion: buRule.Suggestion,
			})
		}
	}

	// 资产类型规则计入 asset
	penalties.Asset += matchRules(ruleSet.AssetTypes[assetType], lowerText, bucketAsset, &issues)

	// 内容类型免责声明检查
	if ctRule, ok := ruleSet.ContentTypeRules[contentType]; ok && ctRule.RequiresDisclaimer {
		if !containsAny(lowerText, ctRule.DisclaimerKeywords) {
			penalties.External += ctRule.Penalty
			issues = append(issues, models.Issue{
				Area:       models.AreaLabelCompliance,
				Phrase:     "",
				Penalty:    ctRule.Penalty,
				Severity:   ctRule.Severity,
				Message:    ctRule.Message,
				Suggestion: ctRule.Suggestion,
			})
		}
	}

	return &models.EvaluationResult{
		Scores:    computeScores(penalties),
		Issues:    issues,
		Penalties: penalties,
	}, nil
}

// matchRules 将一组短语规则应用到文本, 返回该组的扣分增量并追加问题
func matchRules(list []models.Rule, lowerText string, b bucket, issues *[]models.Issue) int {
	penalty := 0
	for _, rule := range list {
		if !strings.Contains(lowerText, rule.Phrase) {
			continue
		}
		penalty += rule.Penalty
		*issues = append(*issues, models.Issue{
			ID:         rule.ID,
			Area:       b.label(),
			Phrase:     rule.Phrase,
			Penalty:    rule.Penalty,
			Severity:   rule.Severity,
			Message:    rule.Message,
			Suggestion: rule.Suggestion,
		})
	}
	return penalty
}

// containsAny 判断文本是否包含任一关键词
func containsAny(lowerText string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lowerText, term) {
			return true
		}
	}
	return false
}

// computeScores 由累计扣分计算评分
// 每个桶 max(0, 100-扣分), 总分为三桶均值四舍五入
func computeScores(p models.Penalties) models.Scores {
	internal := clampScore(100 - p.Internal)
	external := clampScore(100 - p.External)
	asset := clampScore(100 - p.Asset)
	total := int(math.Round(float64(internal+external+asset) / 3.0))

	return models.Scores{
		Internal: internal,
		External: external,
		Asset:    asset,
		Total:    total,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
