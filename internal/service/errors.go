package service

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkoutNotFound 在指定训练不存在时返回
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrInvalidFormat 当导入文档无法解析或缺少顶层集合时返回，此时数据保持不变
	ErrInvalidFormat = errors.New("invalid import format")
)

// ValidationError 描述某个字段的输入形状不合法
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
