/*
 * @module api/controllers/content_controller
 * @description 内容检视控制器，接收上传内容并返回编码规范化结果与推断的上下文类型
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 文件接收 -> 编码规范化 -> 类型推断 -> 返回检视结果
 * @rules 支持multipart文件上传与JSON两种形式, 单文件上限10MB
 * @dependencies brandreview-service/service, github.com/go-chi/render
 * @refs service/content/extractor.go
 */

package controllers

import (
	"io"
	"net/http"
	"strings"

	"brandreview-service/service"

	"github.com/go-chi/render"
)

// maxUploadBytes 上传内容大小上限
const maxUploadBytes = 10 << 20

// ContentController 内容检视控制器
type ContentController struct{}

// NewContentController 创建内容检视控制器实例
func NewContentController() *ContentController {
	return &ContentController{}
}

// InspectRequest JSON形式的内容检视请求
type InspectRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Inspect 检视上传内容
// @Summary 检视上传内容
// @Description 规范化内容编码并由文件名推断资产类型与内容类型, 结果可直接作为分析请求参数
// @Tags 内容检视
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "内容文件"
// @Param request body InspectRequest false "JSON形式的检视请求"
// @Success 200 {object} APIResponse{data=models.ContentInspection} "检视成功"
// @Failure 400 {object} APIResponse "内容缺失或编码无法识别"
// @Router /review/content/inspect [post]
func (c *ContentController) Inspect(w http.ResponseWriter, r *http.Request) {
	filename, raw, ok := readUpload(w, r)
	if !ok {
		return
	}

	inspection, err := service.GlobalContentExtractor.Inspect(filename, raw)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "内容编码无法识别",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "内容检视成功",
		Data:   inspection,
	})
}

// readUpload 从multipart或JSON请求体中读取文件名与原始内容
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			render.JSON(w, r, APIResponse{
				Status: http.StatusBadRequest,
				Msg:    "解析上传文件失败",
			})
			return "", nil, false
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			render.JSON(w, r, APIResponse{
				Status: http.StatusBadRequest,
				Msg:    "缺少 file 字段",
			})
			return "", nil, false
		}
		defer file.Close()

		raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			render.JSON(w, r, APIResponse{
				Status: http.StatusBadRequest,
				Msg:    "读取上传文件失败",
			})
			return "", nil, false
		}
		return header.Filename, raw, true
	}

	var req InspectRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Content == "" {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "请求缺少内容",
		})
		return "", nil, false
	}
	return req.Filename, []byte(req.Content), true
}
