/*
 * @module service/database/migrate
 * @description 数据库迁移模块，负责创建和更新数据库表结构
 * @architecture 数据访问层 - 迁移管理
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 应用启动时执行数据库迁移
 * @rules 确保数据库结构与模型定义保持一致
 * @dependencies brandreview-service/service/models, gorm.io/gorm
 * @refs service/init.go
 */

package database

import (
	"log/slog"

	"brandreview-service/service/models"

	"gorm.io/gorm"
)

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate(db *gorm.DB) error {
	slog.Info("开始数据库迁移...")

	// 分析归档相关表
	if err := db.AutoMigrate(
		&models.AnalysisRecord{},
		&models.RuleSetAudit{},
	); err != nil {
		return err
	}

	slog.Info("数据库迁移完成")
	return nil
}
