/*
 * @module api/controllers/rules_controller
 * @description 品牌规则控制器，提供规则集查询、状态查看、重新加载和审计查询接口
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow HTTP请求处理流程: 参数解析 -> 规则仓库调用 -> 统一响应
 * @rules 规则重载失败时保留当前规则集并返回错误详情
 * @dependencies brandreview-service/service, github.com/go-chi/render
 * @refs service/rules/repository.go
 */

package controllers

import (
	"log/slog"
	"net/http"
	"os"

	"brandreview-service/service"
	"brandreview-service/service/monitoring"

	"github.com/go-chi/render"
	"github.com/spf13/cast"
)

// RulesController 品牌规则控制器
type RulesController struct{}

// NewRulesController 创建品牌规则控制器实例
func NewRulesController() *RulesController {
	return &RulesController{}
}

// ReloadRequest 规则重载请求
type ReloadRequest struct {
	// Source 规则源: HTTP(S) URL或本地文件路径, 为空时使用 RULES_URL 环境变量
	Source string `json:"source"`
}

// GetRuleSet 获取当前规则集
// @Summary 获取当前规则集
// @Description 返回当前加载的完整规则集快照
// @Tags 品牌规则
// @Produce json
// @Success 200 {object} APIResponse{data=models.RuleSet} "获取成功"
// @Failure 404 {object} APIResponse "规则集未加载"
// @Router /review/rules [get]
func (c *RulesController) GetRuleSet(w http.ResponseWriter, r *http.Request) {
	ruleSet, err := service.GlobalRuleRepository.Snapshot()
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusNotFound,
			Msg:    "规则集未加载",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "获取规则集成功",
		Data:   ruleSet,
	})
}

// GetStatus 获取规则仓库状态
// @Summary 获取规则仓库状态
// @Description 返回规则集版本、来源、规则数量和加载时间
// @Tags 品牌规则
// @Produce json
// @Success 200 {object} APIResponse{data=rules.Status} "获取成功"
// @Router /review/rules/status [get]
func (c *RulesController) GetStatus(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "获取规则仓库状态成功",
		Data:   service.GlobalRuleRepository.Status(),
	})
}

// Reload 重新加载规则集
// @Summary 重新加载规则集
// @Description 从指定源重新加载规则集, 失败时保留当前规则集
// @Tags 品牌规则
// @Accept json
// @Produce json
// @Param request body ReloadRequest false "重载请求"
// @Success 200 {object} APIResponse{data=rules.Status} "重载成功"
// @Failure 400 {object} APIResponse "规则源缺失或规则文档无效"
// @Router /review/rules/reload [post]
func (c *RulesController) Reload(w http.ResponseWriter, r *http.Request) {
	var req ReloadRequest
	_ = render.DecodeJSON(r.Body, &req)

	source := req.Source
	if source == "" {
		source = os.Getenv("RULES_URL")
	}
	if source == "" {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "未指定规则源且未配置 RULES_URL",
		})
		return
	}

	if err := service.GlobalRuleRepository.Load(r.Context(), source); err != nil {
		monitoring.RecordRuleReload(false)
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "规则集加载失败: " + err.Error(),
		})
		return
	}

	monitoring.RecordRuleReload(true)
	if ruleSet, err := service.GlobalRuleRepository.Snapshot(); err == nil {
		// 审计写入失败不影响重载结果
		if err := service.GlobalAnalysisStore.SaveRuleSetAudit(ruleSet, source); err != nil {
			slog.Warn("规则集审计写入失败", "source", source, "error", err)
		}
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "规则集重载成功",
		Data:   service.GlobalRuleRepository.Status(),
	})
}

// GetAudits 查询规则集加载审计
// @Summary 获取规则集加载审计
// @Description 返回最近的规则集加载审计记录
// @Tags 品牌规则
// @Produce json
// @Param limit query int false "返回条数" default(20)
// @Success 200 {object} APIResponse{data=[]models.RuleSetAudit} "获取成功"
// @Failure 500 {object} APIResponse "服务器内部错误"
// @Router /review/rules/audits [get]
func (c *RulesController) GetAudits(w http.ResponseWriter, r *http.Request) {
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	audits, err := service.GlobalAnalysisStore.GetRuleSetAudits(limit)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "查询规则集审计失败",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "获取规则集审计成功",
		Data:   audits,
	})
}
