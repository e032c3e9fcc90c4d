package rules

import (
	"errors"
	"fmt"
)

// ErrNotLoaded 规则集尚未成功加载时的错误
var ErrNotLoaded = errors.New("规则集尚未加载, 请先调用 Load")

// RuleLoadError 规则集加载失败错误
// 加载失败不影响已加载的规则集
type RuleLoadError struct {
	Source string
	Err    error
}

func (e *RuleLoadError) Error() string {
	return fmt.Sprintf("规则集加载失败 (source=%s): %v", e.Source, e.Err)
}

func (e *RuleLoadError) Unwrap() error {
	return e.Err
}

func newLoadError(source string, err error) *RuleLoadError {
	return &RuleLoadError{Source: source, Err: err}
}
