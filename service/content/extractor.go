/*
 * @module service/content/extractor
 * @description 内容检视器，负责上传内容的编码规范化与资产/内容类型推断
 * @architecture 分层架构 - 内容预处理层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 文件名解析 -> 类型推断 -> 编码规范化 -> 返回检视结果
 * @rules 推断失败不报错, 资产类型未知时返回空值由调用方决定默认值
 * @dependencies service/models, golang.org/x/text
 * @refs api/controllers/content_controller.go
 */

package content

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"brandreview-service/service/models"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// utf8BOM UTF-8 字节序标记
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// 扩展名到资产类型的映射
var assetTypeByExtension = map[string]string{
	"ppt":  "slide",
	"pptx": "slide",
	"pdf":  "doc",
	"doc":  "doc",
	"docx": "doc",
	"jpg":  "image",
	"jpeg": "image",
	"png":  "image",
	"gif":  "image",
}

// Extractor 内容检视器
type Extractor struct{}

// NewExtractor 创建内容检视器实例
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Inspect 检视上传内容, 返回推断的上下文类型与规范化文本
func (e *Extractor) Inspect(filename string, raw []byte) (*models.ContentInspection, error) {
	normalized, err := e.Normalize(raw)
	if err != nil {
		return nil, err
	}

	return &models.ContentInspection{
		Name:                filename,
		Extension:           fileExtension(filename),
		SizeBytes:           len(raw),
		InferredAssetType:   e.InferAssetType(filename),
		InferredContentType: e.InferContentType(filename),
		Content:             normalized,
	}, nil
}

// Normalize 将原始字节规范化为UTF-8文本
// 非法UTF-8时尝试按GBK解码, 仍失败则返回错误
func (e *Extractor) Normalize(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("内容编码无法识别: %w", err)
	}
	return string(decoded), nil
}

// InferAssetType 由文件扩展名推断资产类型, 未知扩展名返回空
func (e *Extractor) InferAssetType(filename string) string {
	return assetTypeByExtension[fileExtension(filename)]
}

// InferContentType 由文件名推断内容类型
func (e *Extractor) InferContentType(filename string) string {
	lower := strings.ToLower(filename)

	switch {
	case strings.Contains(lower, "esg") || strings.Contains(lower, "sustain"):
		return "esg-report"
	case strings.Contains(lower, "proposal") || strings.Contains(lower, "offer") || strings.Contains(lower, "quote"):
		return "customer-proposal"
	case strings.Contains(lower, "datasheet") || strings.Contains(lower, "spec"):
		return "datasheet"
	}
	return "internal"
}

// fileExtension 提取小写文件扩展名
func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
