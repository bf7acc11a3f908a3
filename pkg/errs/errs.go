package errs

import (
	"errors"
	"fmt"
)

// Error 错误结构（包含可恢复标记）
// 可恢复错误只影响当前这条生成记录，Worker 跳过后继续循环；
// 不可恢复错误在启动阶段直接终止进程。
type Error struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
	DevDetails  string `json:"dev_details,omitempty"`
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return e.Message
}

// Recoverable 创建可恢复错误（参考数据未命中、单条插入失败等）
func Recoverable(message string) *Error {
	return &Error{
		Code:        400,
		Message:     message,
		Recoverable: true,
	}
}

// RecoverableWithDetails 创建可恢复错误（带详细信息）
func RecoverableWithDetails(message string, details string) *Error {
	return &Error{
		Code:        400,
		Message:     message,
		Recoverable: true,
		DevDetails:  details,
	}
}

// Fatal 创建不可恢复错误（配置缺失、参考数据池为空等）
func Fatal(message string) *Error {
	return &Error{
		Code:    500,
		Message: message,
	}
}

// Wrap 包装错误（未知错误默认按不可恢复处理）
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{
		Code:       500,
		Message:    err.Error(),
		DevDetails: fmt.Sprintf("%+v", err),
	}
}

// IsRecoverable 判断错误是否只影响单条记录
func IsRecoverable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Recoverable
	}
	return false
}
