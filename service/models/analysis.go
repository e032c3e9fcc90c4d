/*
 * @module service/models/analysis
 * @description 品牌审查分析结果模型定义，包括问题、评分、审批路径和分析快照
 * @architecture 分层架构 - 数据模型层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 规则评估 -> 审批路径判定 -> 改写标注 -> 分析快照组装
 * @rules 分析快照创建后不可变更，历史记录最多保留50条
 * @refs service/review, api/controllers
 */

package models

// 评分桶的展示标签，问题的 Area 字段使用这些固定字符串
const (
	AreaLabelInternal = "Internal (tone / technical / BU / legal)"
	AreaLabelExternal = "External (market / culture / ESG)"
	AreaLabelAsset    = "Asset fit (presentation / image / social)"

	// 业务单元对齐与免责声明检查使用独立的标签
	AreaLabelBUAlignment = "Internal (BU alignment)"
	AreaLabelCompliance  = "External (compliance)"
)

// Issue 单个规则违规或合规缺口
// 每次评估重新生成，创建后不再修改
type Issue struct {
	ID         string   `json:"id,omitempty"`
	Area       string   `json:"area"`
	Phrase     string   `json:"phrase"`
	Penalty    int      `json:"penalty"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

// Key 返回问题的比较标识，无ID时退化为短语
func (i Issue) Key() string {
	if i.ID != "" {
		return i.ID
	}
	return i.Phrase
}

// Scores 三个评分桶与总分，均在 [0,100] 区间
type Scores struct {
	Internal int `json:"internal"`
	External int `json:"external"`
	Asset    int `json:"asset"`
	Total    int `json:"total"`
}

// Penalties 各评分桶的累计扣分
type Penalties struct {
	Internal int `json:"internal"`
	External int `json:"external"`
	Asset    int `json:"asset"`
}

// EvaluationResult 规则评估结果
type EvaluationResult struct {
	Scores    Scores    `json:"scores"`
	Issues    []Issue   `json:"issues"`
	Penalties Penalties `json:"penalties"`
}

// Approval 审批路径建议
type Approval struct {
	Approver   string `json:"approver"`
	RiskLevel  string `json:"riskLevel"`
	RiskLabel  string `json:"riskLabel"`
	TotalScore int    `json:"totalScore"`
}

// AnalysisParameters 分析的上下文参数
type AnalysisParameters struct {
	BusinessUnit string `json:"businessUnit"`
	Country      string `json:"country"`
	AssetType    string `json:"assetType"`
	ContentType  string `json:"contentType"`
}

// Statistics 按严重级别和区域统计的问题数量
type Statistics struct {
	TotalIssues int              `json:"totalIssues"`
	BySeverity  map[Severity]int `json:"bySeverity"`
	ByArea      map[string]int   `json:"byArea"`
}

// Analysis 一次完整分析的不可变快照
type Analysis struct {
	Timestamp        string             `json:"timestamp"`
	Parameters       AnalysisParameters `json:"parameters"`
	OriginalContent  string             `json:"originalContent"`
	Scores           Scores             `json:"scores"`
	Penalties        Penalties          `json:"penalties"`
	Issues           []Issue            `json:"issues"`
	Approval         Approval           `json:"approval"`
	SuggestedRewrite string             `json:"suggestedRewrite"`
	Statistics       Statistics         `json:"statistics"`
}

// HistoryEntry 历史记录中的精简分析条目
type HistoryEntry struct {
	Timestamp  string             `json:"timestamp"`
	Parameters AnalysisParameters `json:"parameters"`
	Scores     Scores             `json:"scores"`
	IssueCount int                `json:"issueCount"`
	Approval   Approval           `json:"approval"`
}

// ScoreDifference 两次分析的评分差值
type ScoreDifference struct {
	Total    int `json:"total"`
	Internal int `json:"internal"`
	External int `json:"external"`
	Asset    int `json:"asset"`
}

// Comparison 两次分析的对比结果
type Comparison struct {
	ScoreDifference      ScoreDifference `json:"scoreDifference"`
	IssueCountDifference int             `json:"issueCountDifference"`
	NewIssues            []Issue         `json:"newIssues"`
	ResolvedIssues       []Issue         `json:"resolvedIssues"`
}

// AnalyzeRequest 分析请求参数
type AnalyzeRequest struct {
	Content      string `json:"content"`
	BusinessUnit string `json:"businessUnit"`
	Country      string `json:"country"`
	AssetType    string `json:"assetType"`
	ContentType  string `json:"contentType"`
}

// CompareRequest 分析对比请求
type CompareRequest struct {
	A *Analysis `json:"a"`
	B *Analysis `json:"b"`
}

// ContentInspection 内容检视结果，由文件名与原始内容推断上下文
type ContentInspection struct {
	Name                string `json:"name"`
	Extension           string `json:"extension"`
	SizeBytes           int    `json:"sizeBytes"`
	InferredAssetType   string `json:"inferredAssetType,omitempty"`
	InferredContentType string `json:"inferredContentType"`
	Content             string `json:"content"`
}
