/*
 * @module service/review/approval
 * @description 审批路径判定，根据总分和问题内容映射风险等级与推荐审批人
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 总分分档 -> 按问题顺序细化审批人 -> 可持续性问题提前终止
 * @rules 分档下界含等号(85/70); 问题扫描中后出现的规则覆盖先出现的, 仅可持续性分支提前退出
 * @dependencies service/models
 * @refs service/review/analyzer.go
 */

package review

import (
	"strings"

	"brandreview-service/service/models"
)

// 风险分档与审批人常量
const (
	RiskLevelGreen  = "green"
	RiskLevelYellow = "yellow"
	RiskLevelRed    = "red"

	riskLabelGreen  = "Green – aligned with brand, light review"
	riskLabelYellow = "Yellow – partially aligned, 1–2 approvers"
	riskLabelRed    = "Red – misaligned, escalate"

	approverDefault        = "BU owner / brand"
	approverEscalation     = "Regulatory / Sustainability / Brand"
	approverRegulatory     = "Regulatory / legal"
	approverSustainability = "Sustainability lead"
	approverBrandOwner     = "Brand owner"
)

// ResolveApproval 判定审批路径
// 问题扫描必须按评估产出顺序执行: regulatory/legally 与 Asset fit 的命中
// 会被后续命中覆盖, greenwashing/sustainability 命中后立即定稿
func ResolveApproval(totalScore int, issues []models.Issue) models.Approval {
	approver := approverDefault
	riskLevel := RiskLevelGreen
	riskLabel := riskLabelGreen

	switch {
	case totalScore >= 85:
		riskLevel = RiskLevelGreen
		riskLabel = riskLabelGreen
	case totalScore >= 70:
		riskLevel = RiskLevelYellow
		riskLabel = riskLabelYellow
	default:
		riskLevel = RiskLevelRed
		riskLabel = riskLabelRed
		approver = approverEscalation
	}

	for _, issue := range issues {
		msg := strings.ToLower(issue.Message)
		if strings.Contains(msg, "regulatory") || strings.Contains(msg, "legally") {
			approver = approverRegulatory
		}
		if strings.Contains(msg, "greenwashing") || strings.Contains(msg, "sustainability") {
			approver = approverSustainability
			break
		}
		if strings.Contains(issue.Area, "Asset fit") {
			approver = approverBrandOwner
		}
	}

	return models.Approval{
		Approver:   approver,
		RiskLevel:  riskLevel,
		RiskLabel:  riskLabel,
		TotalScore: totalScore,
	}
}
