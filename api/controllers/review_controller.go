/*
 * @module api/controllers/review_controller
 * @description 品牌审查控制器，提供内容分析、历史查询、分析对比和快照导入导出接口
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow HTTP请求处理流程: 参数解析 -> 审查服务调用 -> 统一响应
 * @rules 上下文参数缺省时使用 unspecified, 空内容返回400
 * @dependencies brandreview-service/service, github.com/go-chi/render, github.com/spf13/cast
 * @refs service/review/analyzer.go
 */

package controllers

import (
	"errors"
	"io"
	"net/http"

	"brandreview-service/service"
	"brandreview-service/service/models"
	"brandreview-service/service/review"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// unspecifiedContext 上下文参数缺省值, 不命中任何定向规则
const unspecifiedContext = "unspecified"

// ReviewController 品牌审查控制器
type ReviewController struct {
	reviewService *review.ReviewService
}

// NewReviewController 创建品牌审查控制器实例
func NewReviewController() *ReviewController {
	return &ReviewController{
		reviewService: service.GlobalReviewService,
	}
}

// Analyze 执行内容分析
// @Summary 执行品牌审查分析
// @Description 对内容执行规则评估、审批判定和改写标注, 返回完整分析快照
// @Tags 品牌审查
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "分析请求"
// @Success 200 {object} APIResponse{data=models.Analysis} "分析成功"
// @Failure 400 {object} APIResponse "内容为空或参数格式错误"
// @Failure 500 {object} APIResponse "服务器内部错误"
// @Router /review/analyses [post]
func (c *ReviewController) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "请求参数格式错误",
		})
		return
	}

	analysis, err := c.reviewService.Analyze(
		req.Content,
		defaultIfEmpty(req.BusinessUnit),
		defaultIfEmpty(req.Country),
		defaultIfEmpty(req.AssetType),
		defaultIfEmpty(req.ContentType),
	)
	if err != nil {
		if errors.Is(err, review.ErrEmptyContent) {
			render.JSON(w, r, APIResponse{
				Status: http.StatusBadRequest,
				Msg:    "分析内容不能为空",
			})
			return
		}
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "分析执行失败",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "分析成功",
		Data:   analysis,
	})
}

// GetLast 获取最近一次分析
// @Summary 获取最近一次分析
// @Description 返回最近一次分析的完整快照
// @Tags 品牌审查
// @Produce json
// @Success 200 {object} APIResponse{data=models.Analysis} "获取成功"
// @Failure 404 {object} APIResponse "尚无分析"
// @Router /review/analyses/last [get]
func (c *ReviewController) GetLast(w http.ResponseWriter, r *http.Request) {
	analysis := c.reviewService.GetLast()
	if analysis == nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusNotFound,
			Msg:    "尚无分析记录",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "获取最近分析成功",
		Data:   analysis,
	})
}

// GetHistory 获取分析历史
// @Summary 获取分析历史
// @Description 返回最近的分析历史精简条目, 新记录在前, 最多50条
// @Tags 品牌审查
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.HistoryEntry} "获取成功"
// @Router /review/history [get]
func (c *ReviewController) GetHistory(w http.ResponseWriter, r *http.Request) {
	history := c.reviewService.GetHistory()

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "获取分析历史成功",
		Data:   history,
	})
}

// ClearHistory 清空分析历史
// @Summary 清空分析历史
// @Description 清空内存中的分析历史记录
// @Tags 品牌审查
// @Produce json
// @Success 200 {object} APIResponse "清空成功"
// @Router /review/history [delete]
func (c *ReviewController) ClearHistory(w http.ResponseWriter, r *http.Request) {
	c.reviewService.ClearHistory()

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "分析历史已清空",
	})
}

// Compare 对比两次分析
// @Summary 对比两次分析
// @Description 计算两次分析的得分差值与问题差集
// @Tags 品牌审查
// @Accept json
// @Produce json
// @Param request body models.CompareRequest true "对比请求, a为基准, b为对照"
// @Success 200 {object} APIResponse{data=models.Comparison} "对比成功"
// @Failure 400 {object} APIResponse "请求参数错误"
// @Router /review/compare [post]
func (c *ReviewController) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "请求参数格式错误",
		})
		return
	}
	if req.A == nil || req.B == nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "对比请求必须同时提供 a 和 b 两次分析",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "对比成功",
		Data:   c.reviewService.Compare(req.A, req.B),
	})
}

// Export 导出最近分析快照
// @Summary 导出最近分析快照
// @Description 将最近一次分析导出为规范JSON编码
// @Tags 品牌审查
// @Produce json
// @Success 200 {object} models.Analysis "导出成功"
// @Failure 404 {object} APIResponse "尚无分析"
// @Router /review/analyses/last/export [get]
func (c *ReviewController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := c.reviewService.Export(nil)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusNotFound,
			Msg:    "尚无分析记录可导出",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="analysis.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import 导入分析快照
// @Summary 导入分析快照
// @Description 解析分析快照编码并安装为最近分析
// @Tags 品牌审查
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=models.Analysis} "导入成功"
// @Failure 400 {object} APIResponse "快照编码格式错误"
// @Router /review/analyses/import [post]
func (c *ReviewController) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "读取请求体失败",
		})
		return
	}

	analysis, err := c.reviewService.Import(data)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "分析快照格式错误",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "导入成功",
		Data:   analysis,
	})
}

// GetRecords 分页查询归档的分析记录
// @Summary 获取归档分析记录列表
// @Description 分页获取数据库中的分析记录, 支持按风险等级筛选
// @Tags 分析归档
// @Produce json
// @Param page query int false "页码" default(1)
// @Param size query int false "每页数量" default(10)
// @Param risk_level query string false "风险等级" Enums(green,yellow,red)
// @Success 200 {object} PaginatedResponse{data=[]models.AnalysisRecord} "获取成功"
// @Failure 500 {object} APIResponse "服务器内部错误"
// @Router /review/records [get]
func (c *ReviewController) GetRecords(w http.ResponseWriter, r *http.Request) {
	page := cast.ToInt(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	size := cast.ToInt(r.URL.Query().Get("size"))
	if size <= 0 {
		size = 10
	}
	riskLevel := r.URL.Query().Get("risk_level")

	records, total, err := service.GlobalAnalysisStore.GetRecords(page, size, riskLevel)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "查询分析记录失败",
		})
		return
	}

	render.JSON(w, r, PaginatedResponse{
		Status: http.StatusOK,
		Msg:    "获取分析记录成功",
		Data:   records,
		Total:  total,
		Page:   page,
		Size:   size,
	})
}

// GetRecord 获取归档分析记录详情
// @Summary 获取归档分析记录详情
// @Description 根据记录ID获取归档的分析记录, 包含完整快照
// @Tags 分析归档
// @Produce json
// @Param id path string true "记录ID"
// @Success 200 {object} APIResponse{data=models.AnalysisRecord} "获取成功"
// @Failure 404 {object} APIResponse "记录不存在"
// @Router /review/records/{id} [get]
func (c *ReviewController) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := service.GlobalAnalysisStore.GetRecordByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.JSON(w, r, APIResponse{
				Status: http.StatusNotFound,
				Msg:    "分析记录不存在",
			})
			return
		}
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "查询分析记录失败",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "获取分析记录成功",
		Data:   record,
	})
}

// DeleteRecord 删除归档分析记录
// @Summary 删除归档分析记录
// @Description 根据记录ID删除归档的分析记录
// @Tags 分析归档
// @Produce json
// @Param id path string true "记录ID"
// @Success 200 {object} APIResponse "删除成功"
// @Failure 404 {object} APIResponse "记录不存在"
// @Router /review/records/{id} [delete]
func (c *ReviewController) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := service.GlobalAnalysisStore.DeleteRecord(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.JSON(w, r, APIResponse{
				Status: http.StatusNotFound,
				Msg:    "分析记录不存在",
			})
			return
		}
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "删除分析记录失败",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "分析记录已删除",
	})
}

// defaultIfEmpty 上下文参数缺省处理
func defaultIfEmpty(value string) string {
	if value == "" {
		return unspecifiedContext
	}
	return value
}
