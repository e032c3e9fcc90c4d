/*
 * @module service/scheduler/rules_refresh
 * @description 规则集定时刷新调度器，按Cron表达式从远程地址重新加载规则
 * @architecture 调度层 - 基于robfig/cron的周期任务
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 调度触发 -> 远程加载规则集 -> 成功则原子替换 -> 上报加载指标
 * @rules 加载失败保留当前规则集并记录失败指标, 不中断调度
 * @dependencies github.com/robfig/cron/v3, service/rules, service/monitoring
 * @refs service/init.go
 */

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"brandreview-service/service/monitoring"
	"brandreview-service/service/rules"

	"github.com/robfig/cron/v3"
)

// RulesRefreshScheduler 规则集定时刷新调度器
type RulesRefreshScheduler struct {
	cron     *cron.Cron
	repo     *rules.Repository
	rulesURL string
	spec     string
	entryID  cron.EntryID
}

// NewRulesRefreshScheduler 创建规则集刷新调度器
func NewRulesRefreshScheduler(repo *rules.Repository, rulesURL, spec string) *RulesRefreshScheduler {
	return &RulesRefreshScheduler{
		cron:     cron.New(),
		repo:     repo,
		rulesURL: rulesURL,
		spec:     spec,
	}
}

// Start 启动定时刷新
func (s *RulesRefreshScheduler) Start() error {
	entryID, err := s.cron.AddFunc(s.spec, s.refresh)
	if err != nil {
		return err
	}
	s.entryID = entryID

	s.cron.Start()
	slog.Info("规则集定时刷新已启动", "cron", s.spec, "url", s.rulesURL)
	return nil
}

// Stop 停止定时刷新, 等待进行中的任务完成
func (s *RulesRefreshScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("规则集定时刷新已停止")
}

// refresh 执行一次规则集远程加载
func (s *RulesRefreshScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.repo.Load(ctx, s.rulesURL); err != nil {
		monitoring.RecordRuleReload(false)
		slog.Warn("规则集定时刷新失败, 保留当前规则集", "url", s.rulesURL, "error", err)
		return
	}

	monitoring.RecordRuleReload(true)
	status := s.repo.Status()
	slog.Info("规则集定时刷新成功", "version", status.Version, "ruleCount", status.RuleCount)
}
