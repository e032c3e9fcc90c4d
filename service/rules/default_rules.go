/*
 * @module service/rules/default_rules
 * @description 内置默认品牌规则集，保证离线环境下服务可用
 * @architecture 分层架构 - 规则存储层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 服务启动 -> 未配置远程规则源时加载内置规则集
 * @rules 内置规则集与规则文档格式(data/rules.json)保持一致
 * @refs service/rules/repository.go
 */

package rules

import "brandreview-service/service/models"

// DefaultRuleSet 返回内置默认规则集的独立副本
func DefaultRuleSet() *models.RuleSet {
	return &models.RuleSet{
		Version:     "1.0.0",
		LastUpdated: "2025-11-25",
		BrandTone: []models.Rule{
			{
				ID:         "bt-1",
				Phrase:     "world-class",
				Penalty:    5,
				Severity:   models.SeverityWarning,
				Message:    `Brand tone avoids vague superlatives like "world-class".`,
				Suggestion: "Describe the specific advantage (efficiency, uptime, lifetime) instead.",
			},
			{
				ID:         "bt-2",
				Phrase:     "game-changing",
				Penalty:    5,
				Severity:   models.SeverityWarning,
				Message:    `Hype language like "game-changing" does not fit a calm, engineering-led tone.`,
				Suggestion: `Use calm language such as "significant improvement in energy efficiency".`,
			},
			{
				ID:         "bt-3",
				Phrase:     "super cheap",
				Penalty:    10,
				Severity:   models.SeverityWarning,
				Message:    `For B2B industrial machinery, "super cheap" undermines quality perception.`,
				Suggestion: `Prefer "lower total cost of ownership" or "cost-efficient operation".`,
			},
		},
		LegalClaims: []models.Rule{
			{
				ID:         "lc-1",
				Phrase:     "100% safe",
				Penalty:    20,
				Severity:   models.SeverityCritical,
				Message:    "Absolute safety claims conflict with regulatory best practice.",
				Suggestion: `Describe safety functions and standards (e.g. "designed according to ISO 13849-1").`,
			},
			{
				ID:         "lc-2",
				Phrase:     "zero emissions",
				Penalty:    25,
				Severity:   models.SeverityCritical,
				Message:    "Zero-emission claims need strong evidence and can be risky in EU markets.",
				Suggestion: `Use verifiable metrics, like "up to 18% lower CO₂e vs. previous series (2019 baseline)".`,
			},
		},
		Sustainability: []models.Rule{
			{
				ID:         "su-1",
				Phrase:     "eco-friendly",
				Penalty:    10,
				Severity:   models.SeverityWarning,
				Message:    `Generic "eco-friendly" wording without metrics can look like greenwashing.`,
				Suggestion: "Mention concrete indicators: energy savings, CO₂e reduction, recycled content.",
			},
			{
				ID:         "su-2",
				Phrase:     "green solution",
				Penalty:    10,
				Severity:   models.SeverityWarning,
				Message:    `Unqualified "green solution" is vague and off-brand.`,
				Suggestion: "Tie to a standard (ISO 14001, ISO 50001) or a numeric improvement.",
			},
			{
				ID:         "su-3",
				Phrase:     "climate neutral",
				Penalty:    20,
				Severity:   models.SeverityCritical,
				Message:    `"Climate neutral" should only be used with audited backing.`,
				Suggestion: "Describe the mechanism (renewable sourcing, efficiency gains) instead of using the claim directly.",
			},
		},
		Technical: []models.Rule{
			{
				ID:         "te-1",
				Phrase:     "around 10 kw",
				Penalty:    10,
				Severity:   models.SeverityWarning,
				Message:    `Vague power rating "around 10 kW" might be unclear for engineering and tenders.`,
				Suggestion: `Use a specific value or range (e.g. "9.5–10.2 kW at nominal load").`,
			},
			{
				ID:         "te-2",
				Phrase:     "old gateway",
				Penalty:    10,
				Severity:   models.SeverityWarning,
				Message:    `Referring to "old gateway" without naming platform or migration path is ambiguous.`,
				Suggestion: `Name the platform (e.g. "legacy OPC-UA gateway v1.2") and target replacement solution.`,
			},
		},
		Cultural: map[string][]models.Rule{
			"DK": {
				{
					ID:         "cu-dk-1",
					Phrase:     "hq decides everything",
					Penalty:    5,
					Severity:   models.SeverityInfo,
					Message:    "Nordic/Danish culture prefers low hierarchy and shared ownership.",
					Suggestion: "Frame as cross-BU or cross-functional collaboration instead.",
				},
			},
			"DE": {
				{
					ID:         "cu-de-1",
					Phrase:     "climate neutral motor",
					Penalty:    20,
					Severity:   models.SeverityCritical,
					Message:    `Germany is particularly strict on "climate neutral" claims without strong evidence.`,
					Suggestion: "Use an efficiency or CO₂e metric and refer to applicable standards.",
				},
			},
			"IN": {
				{
					ID:         "cu-in-1",
					Phrase:     "cheap labour",
					Penalty:    15,
					Severity:   models.SeverityCritical,
					Message:    `Term "cheap labour" is not aligned with respectful partnership positioning.`,
					Suggestion: "Focus on expertise, collaboration and long-term partnerships instead.",
				},
			},
			"US": {
				{
					ID:         "cu-us-1",
					Phrase:     "union-free workforce",
					Penalty:    10,
					Severity:   models.SeverityWarning,
					Message:    `Highlighting "union-free workforce" can be sensitive in the US.`,
					Suggestion: "Emphasise safety, training and productivity instead.",
				},
			},
		},
		BusinessUnits: map[string]models.BusinessUnitRule{
			"hydraulics": {
				ID:         "bu-hydraulics",
				Required:   []string{"hydraulic", "cylinder", "pressure", "valve"},
				Penalty:    5,
				Severity:   models.SeverityInfo,
				Message:    "Text does not reference typical hydraulics concepts.",
				Suggestion: "Mention pressure, flow, cylinders, or valves if relevant.",
			},
			"automation": {
				ID:         "bu-automation",
				Required:   []string{"plc", "controller", "fieldbus", "iot"},
				Penalty:    5,
				Severity:   models.SeverityInfo,
				Message:    "Text does not reference typical automation concepts.",
				Suggestion: "Mention PLC, controllers, protocols, or IIoT where relevant.",
			},
			"pumping": {
				ID:         "bu-pumping",
				Required:   []string{"pump", "flow", "m3/h", "efficiency"},
				Penalty:    5,
				Severity:   models.SeverityInfo,
				Message:    "Text does not reference typical pumping-system concepts.",
				Suggestion: "Mention pump type, flow rate, or efficiency if it is about that BU.",
			},
			"sensors": {
				ID:         "bu-sensors",
				Required:   []string{"sensor", "condition monitoring", "vibration", "data"},
				Penalty:    5,
				Severity:   models.SeverityInfo,
				Message:    "Text does not reference typical sensor / monitoring concepts.",
				Suggestion: "Mention sensors, data, or monitoring concepts if relevant.",
			},
		},
		AssetTypes: map[string][]models.Rule{
			"slide": {
				{
					ID:         "as-slide-1",
					Phrase:     "tiny logo",
					Penalty:    5,
					Severity:   models.SeverityWarning,
					Message:    `Slides should use the prescribed logo size; "tiny logo" suggests misuse.`,
					Suggestion: "Use standard logo size and clear space from the visual guideline.",
				},
				{
					ID:         "as-slide-2",
					Phrase:     "all caps headline",
					Penalty:    5,
					Severity:   models.SeverityWarning,
					Message:    "All-caps headlines are discouraged except for short labels.",
					Suggestion: "Use sentence case for main slide headlines.",
				},
			},
			"image": {
				{
					ID:         "as-image-1",
					Phrase:     "smokestack",
					Penalty:    15,
					Severity:   models.SeverityCritical,
					Message:    "Smokestacks conflict with the sustainability-first visual direction.",
					Suggestion: "Prefer visuals of clean plants, modern equipment or people in PPE.",
				},
				{
					ID:         "as-image-2",
					Phrase:     "coal plant",
					Penalty:    20,
					Severity:   models.SeverityCritical,
					Message:    "Coal plant imagery clashes with sustainability positioning.",
					Suggestion: "Show upgrade equipment, efficiency dashboards, or renewable-related visuals instead.",
				},
			},
			"social": {
				{
					ID:         "as-social-1",
					Phrase:     "click here now",
					Penalty:    5,
					Severity:   models.SeverityWarning,
					Message:    "Clickbait wording is off-brand.",
					Suggestion: `Use calm CTAs like "Learn more about the upgrade".`,
				},
				{
					ID:         "as-social-2",
					Phrase:     "giveaway",
					Penalty:    5,
					Severity:   models.SeverityWarning,
					Message:    "Consumer-style giveaways rarely fit an industrial B2B brand.",
					Suggestion: "Focus on knowledge-sharing formats (webinars, whitepapers) instead.",
				},
			},
			"email": {},
			"doc":   {},
		},
		ContentTypeRules: map[string]models.ContentTypeRule{
			"customer-proposal": {
				RequiresDisclaimer: true,
				DisclaimerKeywords: []string{"not legally binding", "figures are subject to change"},
				Penalty:            10,
				Severity:           models.SeverityWarning,
				Message:            "Customer proposals typically need a short disclaimer.",
				Suggestion:         `Add a line like: "This is not legally binding; figures are indicative and subject to change."`,
			},
			"esg-report": {
				RequiresDisclaimer: true,
				DisclaimerKeywords: []string{"not legally binding", "figures are subject to change"},
				Penalty:            10,
				Severity:           models.SeverityWarning,
				Message:            "ESG communications typically need a short disclaimer.",
				Suggestion:         `Add a line like: "This is not legally binding; figures are indicative and subject to change."`,
			},
		},
	}
}
