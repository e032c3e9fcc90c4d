/*
 * @module service/init
 * @description 服务初始化模块，负责数据库连接、规则加载、事件通道等初始化工作
 * @architecture 分层架构 - 服务层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 应用启动时执行初始化流程: 数据库 -> 迁移 -> 规则仓库 -> 审查服务 -> 调度器
 * @rules 规则集加载失败时回退到内置默认规则, 确保服务始终可用
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres, gorm.io/driver/sqlite
 * @refs service/database/migrate.go, service/rules/repository.go
 */

package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"brandreview-service/service/content"
	"brandreview-service/service/database"
	"brandreview-service/service/event"
	"brandreview-service/service/monitoring"
	"brandreview-service/service/review"
	"brandreview-service/service/rules"
	"brandreview-service/service/scheduler"
	"brandreview-service/service/storage"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	DB                     *gorm.DB
	GlobalRuleRepository   *rules.Repository
	GlobalReviewService    *review.ReviewService
	GlobalAnalysisStore    *storage.AnalysisStore
	GlobalEventPublisher   *event.Publisher
	GlobalRulesScheduler   *scheduler.RulesRefreshScheduler
	GlobalContentExtractor *content.Extractor
)

func init() {
	initDatabase()
	runMigrations()
	initServices()
}

// initDatabase 初始化数据库连接
// 配置了 DATABASE_URL 或 DB_HOST 时使用 PostgreSQL, 否则使用本地 SQLite
func initDatabase() {
	var dialector gorm.Dialector

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else if os.Getenv("DB_HOST") != "" {
		host := getEnvWithDefault("DB_HOST", "localhost")
		port := getEnvWithDefault("DB_PORT", "5432")
		user := getEnvWithDefault("DB_USER", "postgres")
		password := getEnvWithDefault("DB_PASSWORD", "postgres")
		dbname := getEnvWithDefault("DB_NAME", "postgres")
		sslmode := getEnvWithDefault("DB_SSLMODE", "disable")
		schema := getEnvWithDefault("DB_SCHEMA", "public")

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			host, port, user, password, dbname, sslmode, schema)
		dialector = postgres.Open(dsn)
	} else {
		path := getEnvWithDefault("SQLITE_PATH", "brandreview.db")
		dialector = sqlite.Open(path)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	slog.Info("数据库连接成功")
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// runMigrations 运行数据库迁移
func runMigrations() {
	if err := database.AutoMigrate(DB); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
}

// initServices 初始化服务
func initServices() {
	GlobalAnalysisStore = storage.NewAnalysisStore(DB)
	GlobalEventPublisher = event.NewPublisherFromEnv()
	GlobalContentExtractor = content.NewExtractor()

	// 规则仓库: 配置了 RULES_URL 时远程加载, 失败或未配置时使用内置默认规则
	GlobalRuleRepository = rules.NewRepository(rules.NewRemoteCacheFromEnv())
	loadInitialRules()

	// 审查服务: 归档器与事件发布器均可缺省
	var events review.EventSink
	if GlobalEventPublisher != nil {
		events = GlobalEventPublisher
	}
	GlobalReviewService = review.NewReviewService(GlobalRuleRepository, GlobalAnalysisStore, events)

	// 规则定时刷新: 需要同时配置 RULES_URL 与 RULES_REFRESH_CRON
	rulesURL := os.Getenv("RULES_URL")
	if cronSpec := os.Getenv("RULES_REFRESH_CRON"); cronSpec != "" && rulesURL != "" {
		GlobalRulesScheduler = scheduler.NewRulesRefreshScheduler(GlobalRuleRepository, rulesURL, cronSpec)
		if err := GlobalRulesScheduler.Start(); err != nil {
			slog.Warn("规则定时刷新启动失败", "cron", cronSpec, "error", err)
			GlobalRulesScheduler = nil
		}
	}
}

// loadInitialRules 加载启动规则集并写入审计
func loadInitialRules() {
	rulesURL := os.Getenv("RULES_URL")

	if rulesURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := GlobalRuleRepository.Load(ctx, rulesURL)
		cancel()
		if err == nil {
			monitoring.RecordRuleReload(true)
			auditRuleLoad(rulesURL)
			return
		}
		monitoring.RecordRuleReload(false)
		slog.Warn("远程规则集加载失败, 回退到内置默认规则", "url", rulesURL, "error", err)
	}

	if err := GlobalRuleRepository.LoadDefault(); err != nil {
		log.Fatalf("内置默认规则加载失败: %v", err)
	}
	monitoring.RecordRuleReload(true)
	auditRuleLoad("embedded")
}

// auditRuleLoad 记录一条规则集加载审计, 失败仅告警
func auditRuleLoad(source string) {
	ruleSet, err := GlobalRuleRepository.Snapshot()
	if err != nil {
		return
	}
	if err := GlobalAnalysisStore.SaveRuleSetAudit(ruleSet, source); err != nil {
		slog.Warn("规则集审计写入失败", "source", source, "error", err)
	}
}
