/*
 * @module service/review/approval_test
 * @description 审批路径判定单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 总分与问题列表 -> 审批判定 -> 风险等级和审批人验证
 * @rules 确保分档边界和问题扫描的覆盖/提前终止语义
 * @dependencies testing, testify
 * @refs approval.go
 */

package review

import (
	"testing"

	"brandreview-service/service/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveApprovalRiskBands(t *testing.T) {
	testCases := []struct {
		name         string
		totalScore   int
		wantLevel    string
		wantApprover string
	}{
		{
			name:         "满分为绿色",
			totalScore:   100,
			wantLevel:    RiskLevelGreen,
			wantApprover: "BU owner / brand",
		},
		{
			name:         "85分为绿色下界",
			totalScore:   85,
			wantLevel:    RiskLevelGreen,
			wantApprover: "BU owner / brand",
		},
		{
			name:         "84分落入黄色",
			totalScore:   84,
			wantLevel:    RiskLevelYellow,
			wantApprover: "BU owner / brand",
		},
		{
			name:         "70分为黄色下界",
			totalScore:   70,
			wantLevel:    RiskLevelYellow,
			wantApprover: "BU owner / brand",
		},
		{
			name:         "69分落入红色并升级审批人",
			totalScore:   69,
			wantLevel:    RiskLevelRed,
			wantApprover: "Regulatory / Sustainability / Brand",
		},
		{
			name:         "0分为红色",
			totalScore:   0,
			wantLevel:    RiskLevelRed,
			wantApprover: "Regulatory / Sustainability / Brand",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			approval := ResolveApproval(tc.totalScore, nil)

			assert.Equal(t, tc.wantLevel, approval.RiskLevel)
			assert.Equal(t, tc.wantApprover, approval.Approver)
			assert.Equal(t, tc.totalScore, approval.TotalScore)
		})
	}
}

func TestResolveApprovalRiskLabels(t *testing.T) {
	assert.Equal(t, "Green – aligned with brand, light review", ResolveApproval(90, nil).RiskLabel)
	assert.Equal(t, "Yellow – partially aligned, 1–2 approvers", ResolveApproval(75, nil).RiskLabel)
	assert.Equal(t, "Red – misaligned, escalate", ResolveApproval(50, nil).RiskLabel)
}

func TestResolveApprovalIssueScan(t *testing.T) {
	regulatoryIssue := models.Issue{Message: "Conflicts with regulatory best practice."}
	sustainabilityIssue := models.Issue{Message: "Can look like greenwashing."}
	assetIssue := models.Issue{Area: models.AreaLabelAsset, Message: "Logo misuse."}
	plainIssue := models.Issue{Message: "Vague wording."}

	testCases := []struct {
		name         string
		issues       []models.Issue
		wantApprover string
	}{
		{
			name:         "无关键词保持默认审批人",
			issues:       []models.Issue{plainIssue},
			wantApprover: "BU owner / brand",
		},
		{
			name:         "监管关键词指向法务",
			issues:       []models.Issue{regulatoryIssue},
			wantApprover: "Regulatory / legal",
		},
		{
			name:         "可持续性关键词指向可持续负责人",
			issues:       []models.Issue{sustainabilityIssue},
			wantApprover: "Sustainability lead",
		},
		{
			name:         "资产区域问题指向品牌负责人",
			issues:       []models.Issue{assetIssue},
			wantApprover: "Brand owner",
		},
		{
			name:         "可持续性命中后立即定稿",
			issues:       []models.Issue{sustainabilityIssue, regulatoryIssue, assetIssue},
			wantApprover: "Sustainability lead",
		},
		{
			name:         "监管命中可被后续资产问题覆盖",
			issues:       []models.Issue{regulatoryIssue, assetIssue},
			wantApprover: "Brand owner",
		},
		{
			name:         "资产命中可被后续监管问题覆盖",
			issues:       []models.Issue{assetIssue, regulatoryIssue},
			wantApprover: "Regulatory / legal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			approval := ResolveApproval(90, tc.issues)
			assert.Equal(t, tc.wantApprover, approval.Approver)
		})
	}
}

func TestResolveApprovalRedWithIssueOverride(t *testing.T) {
	// 红色分档先给升级审批人, 问题扫描仍可覆盖
	approval := ResolveApproval(40, []models.Issue{
		{Message: "This claim is not legally defensible."},
	})

	assert.Equal(t, RiskLevelRed, approval.RiskLevel)
	assert.Equal(t, "Regulatory / legal", approval.Approver)
}
