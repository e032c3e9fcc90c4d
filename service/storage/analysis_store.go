/*
 * @module service/storage/analysis_store
 * @description 分析记录与规则集审计的持久化存储，提供归档、分页查询和删除
 * @architecture 分层架构 - 存储层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 分析完成 -> 记录归档 -> 分页查询/删除
 * @rules 归档失败不影响分析主流程; 完整快照以jsonb形式落库
 * @dependencies service/models, gorm.io/gorm
 * @refs service/review/analyzer.go, api/controllers/review_controller.go
 */

package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"brandreview-service/service/models"

	"gorm.io/gorm"
)

// AnalysisStore 分析记录存储
type AnalysisStore struct {
	db *gorm.DB
}

// NewAnalysisStore 创建分析记录存储实例
func NewAnalysisStore(db *gorm.DB) *AnalysisStore {
	return &AnalysisStore{db: db}
}

// SaveAnalysis 将分析快照归档为记录
func (s *AnalysisStore) SaveAnalysis(analysis *models.Analysis) error {
	timestamp, err := time.Parse(time.RFC3339, analysis.Timestamp)
	if err != nil {
		timestamp = time.Now().UTC()
	}

	detail, err := toJSONB(analysis)
	if err != nil {
		return fmt.Errorf("序列化分析快照失败: %w", err)
	}

	record := &models.AnalysisRecord{
		Timestamp:       timestamp,
		BusinessUnit:    analysis.Parameters.BusinessUnit,
		Country:         analysis.Parameters.Country,
		AssetType:       analysis.Parameters.AssetType,
		ContentType:     analysis.Parameters.ContentType,
		OriginalContent: analysis.OriginalContent,
		InternalScore:   analysis.Scores.Internal,
		ExternalScore:   analysis.Scores.External,
		AssetScore:      analysis.Scores.Asset,
		TotalScore:      analysis.Scores.Total,
		IssueCount:      len(analysis.Issues),
		RiskLevel:       analysis.Approval.RiskLevel,
		Approver:        analysis.Approval.Approver,
		Detail:          detail,
	}

	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("写入分析记录失败: %w", err)
	}
	return nil
}

// GetRecords 分页查询分析记录, 按时间倒序
func (s *AnalysisStore) GetRecords(page, size int, riskLevel string) ([]models.AnalysisRecord, int64, error) {
	var records []models.AnalysisRecord
	var total int64

	query := s.db.Model(&models.AnalysisRecord{})
	if riskLevel != "" {
		query = query.Where("risk_level = ?", riskLevel)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计分析记录失败: %w", err)
	}

	offset := (page - 1) * size
	if err := query.Order("timestamp DESC").Offset(offset).Limit(size).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("查询分析记录失败: %w", err)
	}

	return records, total, nil
}

// GetRecordByID 按ID查询分析记录
func (s *AnalysisStore) GetRecordByID(id string) (*models.AnalysisRecord, error) {
	var record models.AnalysisRecord
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteRecord 删除分析记录
func (s *AnalysisStore) DeleteRecord(id string) error {
	result := s.db.Delete(&models.AnalysisRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("删除分析记录失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveRuleSetAudit 写入一条规则集加载审计
func (s *AnalysisStore) SaveRuleSetAudit(ruleSet *models.RuleSet, source string) error {
	audit := &models.RuleSetAudit{
		Version:     ruleSet.Version,
		LastUpdated: ruleSet.LastUpdated,
		Source:      source,
		RuleCount:   ruleSet.RuleCount(),
		Categories:  ruleSet.CategoryNames(),
		LoadedAt:    time.Now().UTC(),
	}

	if err := s.db.Create(audit).Error; err != nil {
		return fmt.Errorf("写入规则集审计失败: %w", err)
	}
	return nil
}

// GetRuleSetAudits 查询最近的规则集加载审计
func (s *AnalysisStore) GetRuleSetAudits(limit int) ([]models.RuleSetAudit, error) {
	var audits []models.RuleSetAudit
	if err := s.db.Order("loaded_at DESC").Limit(limit).Find(&audits).Error; err != nil {
		return nil, fmt.Errorf("查询规则集审计失败: %w", err)
	}
	return audits, nil
}

// toJSONB 将任意结构转换为JSONB
func toJSONB(v interface{}) (models.JSONB, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var result models.JSONB
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
