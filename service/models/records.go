/*
 * @module service/models/records
 * @description 持久化记录模型定义，包括分析记录归档和规则集加载审计
 * @architecture 分层架构 - 数据模型层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 分析完成 -> 记录归档 -> 查询/删除
 * @rules 记录为分析快照的服务端归档，引擎内存状态不依赖数据库
 * @dependencies gorm.io/gorm, github.com/google/uuid, github.com/lib/pq
 * @refs service/storage
 */

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AnalysisRecord 分析记录归档模型
type AnalysisRecord struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	Timestamp       time.Time `gorm:"not null;index" json:"timestamp"`
	BusinessUnit    string    `gorm:"size:100" json:"business_unit"`
	Country         string    `gorm:"size:10" json:"country"`
	AssetType       string    `gorm:"size:50" json:"asset_type"`
	ContentType     string    `gorm:"size:50" json:"content_type"`
	OriginalContent string    `gorm:"type:text" json:"original_content"`
	InternalScore   int       `gorm:"not null" json:"internal_score"`
	ExternalScore   int       `gorm:"not null" json:"external_score"`
	AssetScore      int       `gorm:"not null" json:"asset_score"`
	TotalScore      int       `gorm:"not null;index" json:"total_score"`
	IssueCount      int       `gorm:"not null" json:"issue_count"`
	RiskLevel       string    `gorm:"size:20;index" json:"risk_level"`
	Approver        string    `gorm:"size:100" json:"approver"`
	Detail          JSONB     `gorm:"type:jsonb" json:"detail"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate 创建前钩子
func (a *AnalysisRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// RuleSetAudit 规则集加载审计模型
// 每次成功加载规则集时写入一条记录
type RuleSetAudit struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Version     string         `gorm:"size:50;not null" json:"version"`
	LastUpdated string         `gorm:"size:50" json:"last_updated"`
	Source      string         `gorm:"size:500" json:"source"` // embedded / file / url / inline
	RuleCount   int            `gorm:"not null" json:"rule_count"`
	Categories  pq.StringArray `gorm:"type:text[]" json:"categories"`
	LoadedAt    time.Time      `gorm:"not null" json:"loaded_at"`
}

// BeforeCreate 创建前钩子
func (r *RuleSetAudit) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
