/*
 * @module service/content/extractor_test
 * @description 内容检视器单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 输入文件名与字节 -> 检视 -> 推断结果验证
 * @rules 确保编码规范化与类型推断的确定性
 * @dependencies testing, testify
 * @refs extractor.go
 */

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferAssetType(t *testing.T) {
	extractor := NewExtractor()

	testCases := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "PPT推断为slide", filename: "q3-review.pptx", want: "slide"},
		{name: "PDF推断为doc", filename: "Datasheet.PDF", want: "doc"},
		{name: "图片推断为image", filename: "plant.jpeg", want: "image"},
		{name: "未知扩展名返回空", filename: "notes.txt", want: ""},
		{name: "无扩展名返回空", filename: "README", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractor.InferAssetType(tc.filename))
		})
	}
}

func TestInferContentType(t *testing.T) {
	extractor := NewExtractor()

	testCases := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "ESG关键词", filename: "2026-ESG-summary.docx", want: "esg-report"},
		{name: "可持续关键词", filename: "sustainability_plan.pdf", want: "esg-report"},
		{name: "报价关键词", filename: "customer-quote-v2.docx", want: "customer-proposal"},
		{name: "提案关键词", filename: "Pump_Proposal.pptx", want: "customer-proposal"},
		{name: "规格书关键词", filename: "valve-spec.pdf", want: "datasheet"},
		{name: "缺省为internal", filename: "meeting-notes.md", want: "internal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractor.InferContentType(tc.filename))
		})
	}
}

func TestNormalize(t *testing.T) {
	extractor := NewExtractor()

	t.Run("UTF-8原样返回", func(t *testing.T) {
		text, err := extractor.Normalize([]byte("Hydraulic valves – precise control."))
		require.NoError(t, err)
		assert.Equal(t, "Hydraulic valves – precise control.", text)
	})

	t.Run("剥离BOM", func(t *testing.T) {
		text, err := extractor.Normalize([]byte{0xEF, 0xBB, 0xBF, 'a', 'b', 'c'})
		require.NoError(t, err)
		assert.Equal(t, "abc", text)
	})

	t.Run("GBK编码按GBK解码", func(t *testing.T) {
		// "阀门" 的GBK编码
		gbk := []byte{0xB7, 0xA7, 0xC3, 0xC5}
		text, err := extractor.Normalize(gbk)
		require.NoError(t, err)
		assert.Equal(t, "阀门", text)
	})
}

func TestInspect(t *testing.T) {
	extractor := NewExtractor()

	inspection, err := extractor.Inspect("ESG-pump-offer.pptx", []byte("Our pumps save energy."))
	require.NoError(t, err)

	assert.Equal(t, "ESG-pump-offer.pptx", inspection.Name)
	assert.Equal(t, "pptx", inspection.Extension)
	assert.Equal(t, len("Our pumps save energy."), inspection.SizeBytes)
	assert.Equal(t, "slide", inspection.InferredAssetType)
	assert.Equal(t, "esg-report", inspection.InferredContentType)
	assert.Equal(t, "Our pumps save energy.", inspection.Content)
}
