package review

import (
	"errors"
	"fmt"
)

// ErrEmptyContent 分析内容为空或仅含空白字符
var ErrEmptyContent = errors.New("分析内容不能为空")

// ErrNoAnalysis 尚无可导出的分析结果
var ErrNoAnalysis = errors.New("尚无可导出的分析结果")

// FormatError 分析快照反序列化失败错误
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("分析快照格式错误: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
