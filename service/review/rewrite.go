/*
 * @module service/review/rewrite
 * @description 改写标注器，在原文中为每个命中短语插入行内建议标记
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 按问题顺序逐个短语替换 -> 替换在已标注文本上累积进行
 * @rules 短语为字面量, 不做正则解释; 大小写不敏感匹配, 替换保留原文大小写
 * @dependencies service/models
 * @refs service/review/analyzer.go
 */

package review

import (
	"strings"

	"brandreview-service/service/models"
)

// GenerateRewrite 生成带行内建议标记的改写文本
// 问题按评估产出顺序应用; 替换在逐步标注的文本上累积进行,
// 因此后续短语理论上可能命中先前插入的建议文本, 该顺序相关行为需保持不变。
func GenerateRewrite(originalText string, issues []models.Issue) string {
	updated := originalText
	for _, issue := range issues {
		if issue.Phrase == "" {
			continue
		}
		marker := " [→ " + issue.Suggestion + "]"
		updated = annotatePhrase(updated, issue.Phrase, marker)
	}
	return updated
}

// annotatePhrase 对文本中每个大小写不敏感的短语命中插入标记
// 匹配基于小写视图定位, 插入时保留命中片段的原始大小写
// 小写视图采用逐字节ASCII折叠, 保证与原文的字节偏移一一对应
func annotatePhrase(text, phrase, marker string) string {
	lowerText := lowerASCII(text)
	lowerPhrase := lowerASCII(phrase)
	if lowerPhrase == "" {
		return text
	}

	var b strings.Builder
	offset := 0
	for {
		idx := strings.Index(lowerText[offset:], lowerPhrase)
		if idx < 0 {
			break
		}
		end := offset + idx + len(lowerPhrase)
		b.WriteString(text[offset:end])
		b.WriteString(marker)
		offset = end
	}
	b.WriteString(text[offset:])
	return b.String()
}

// lowerASCII 仅折叠ASCII大写字母, 字节长度保持不变
func lowerASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
