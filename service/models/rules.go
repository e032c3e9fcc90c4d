/*
 * @module service/models/rules
 * @description 品牌规则模型定义，包括规则、规则分类和完整规则集
 * @architecture 分层架构 - 数据模型层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 规则集加载 -> 规则评估 -> 问题生成
 * @rules 规则集加载后只读，规则短语必须为小写字面量
 * @refs service/rules, service/review
 */

package models

// Severity 规则严重级别
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// IsValid 判断是否为已定义的严重级别
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Rule 单条短语规则
// Phrase 为小写字面量子串，命中即从对应评分桶扣除 Penalty 分
type Rule struct {
	ID         string   `json:"id"`
	Phrase     string   `json:"phrase"`
	Penalty    int      `json:"penalty"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// BusinessUnitRule 业务单元对齐规则
// Required 中任一词出现即视为通过，全部缺失才扣分
type BusinessUnitRule struct {
	ID         string   `json:"id"`
	Required   []string `json:"required"`
	Penalty    int      `json:"penalty"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// ContentTypeRule 内容类型规则（免责声明检查）
type ContentTypeRule struct {
	RequiresDisclaimer bool     `json:"requiresDisclaimer"`
	DisclaimerKeywords []string `json:"disclaimerKeywords"`
	Penalty            int      `json:"penalty"`
	Severity           Severity `json:"severity"`
	Message            string   `json:"message"`
	Suggestion         string   `json:"suggestion,omitempty"`
}

// RuleSet 完整的品牌规则集
// 字段名与规则文档格式保持一致，加载后整体只读
type RuleSet struct {
	Version          string                      `json:"version"`
	LastUpdated      string                      `json:"lastUpdated"`
	BrandTone        []Rule                      `json:"brandTone"`
	LegalClaims      []Rule                      `json:"legalClaims"`
	Sustainability   []Rule                      `json:"sustainability"`
	Technical        []Rule                      `json:"technical"`
	Cultural         map[string][]Rule           `json:"cultural"`
	BusinessUnits    map[string]BusinessUnitRule `json:"businessUnits"`
	AssetTypes       map[string][]Rule           `json:"assetTypes"`
	ContentTypeRules map[string]ContentTypeRule  `json:"contentTypeRules"`
}

// RuleCount 统计规则集中的短语规则总数
func (rs *RuleSet) RuleCount() int {
	count := len(rs.BrandTone) + len(rs.LegalClaims) + len(rs.Sustainability) + len(rs.Technical)
	for _, rules := range rs.Cultural {
		count += len(rules)
	}
	for _, rules := range rs.AssetTypes {
		count += len(rules)
	}
	return count
}

// CategoryNames 返回规则集中包含规则的分类名称列表
func (rs *RuleSet) CategoryNames() []string {
	names := []string{}
	if len(rs.BrandTone) > 0 {
		names = append(names, "brandTone")
	}
	if len(rs.LegalClaims) > 0 {
		names = append(names, "legalClaims")
	}
	if len(rs.Sustainability) > 0 {
		names = append(names, "sustainability")
	}
	if len(rs.Technical) > 0 {
		names = append(names, "technical")
	}
	if len(rs.Cultural) > 0 {
		names = append(names, "cultural")
	}
	if len(rs.BusinessUnits) > 0 {
		names = append(names, "businessUnits")
	}
	if len(rs.AssetTypes) > 0 {
		names = append(names, "assetTypes")
	}
	if len(rs.ContentTypeRules) > 0 {
		names = append(names, "contentTypeRules")
	}
	return names
}
