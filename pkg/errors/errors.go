// Package errors 提供统一的错误定义
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess            ErrorCode = "0"
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeForbidden          ErrorCode = "1003"
	CodeNotFound           ErrorCode = "1004"
	CodeConflict           ErrorCode = "1005"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"

	// 资源错误 (3xxx)
	CodeStoreNotFound    ErrorCode = "3001"
	CodeCityNotFound     ErrorCode = "3002"
	CodeCategoryNotFound ErrorCode = "3003"
	CodeBannerNotFound   ErrorCode = "3004"
	CodeResourceNotFound ErrorCode = "3005"

	// 业务错误 (4xxx)
	CodeValidationFailed ErrorCode = "4001"
	CodeEmptySelection   ErrorCode = "4002"
	CodeUnknownCandidate ErrorCode = "4003"
	CodeInvalidMedia     ErrorCode = "4004"
	CodeNoBrowseCursor   ErrorCode = "4005"

	// 外部服务错误 (5xxx)
	CodeDatabaseError ErrorCode = "5001"
	CodeCacheError    ErrorCode = "5002"
	CodeStorageError  ErrorCode = "5003"
	CodeTelegramError ErrorCode = "5004"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码与消息比较，允许 errors.Is 将 WithDetail/WithError
// 的克隆匹配回预定义错误；同码不同消息的哨兵错误互不匹配
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithError 添加底层错误
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeValidationFailed, CodeEmptySelection, CodeUnknownCandidate, CodeInvalidMedia, CodeNoBrowseCursor:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeStoreNotFound, CodeCityNotFound, CodeCategoryNotFound, CodeBannerNotFound, CodeResourceNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误，消息文本即对外 API 的 detail 字段内容
var (
	ErrInvalidParam       = New(CodeInvalidParam, "invalid parameter")
	ErrForbidden          = New(CodeForbidden, "forbidden")
	ErrInternalError      = New(CodeInternalError, "internal server error")
	ErrServiceUnavailable = New(CodeServiceUnavailable, "service unavailable")

	ErrStoreNotFound           = New(CodeStoreNotFound, "Store not found")
	ErrStoresNotFound          = New(CodeStoreNotFound, "Stores not found")
	ErrStoresNotFoundByFilters = New(CodeStoreNotFound, "Stores not found by filters")
	ErrCityNotFound            = New(CodeCityNotFound, "City not found")
	ErrCitiesNotFound          = New(CodeCityNotFound, "Cities not found")
	ErrCategoryNotFound        = New(CodeCategoryNotFound, "Category not found")
	ErrCategoriesNotFound      = New(CodeCategoryNotFound, "Categories not found")
	ErrBannerNotFound          = New(CodeBannerNotFound, "Banner not found")
	ErrBannersNotFound         = New(CodeBannerNotFound, "Banners not found")
	ErrResourceNotFound        = New(CodeResourceNotFound, "Store resource not found")

	ErrValidationFailed = New(CodeValidationFailed, "validation failed")
	ErrEmptySelection   = New(CodeEmptySelection, "empty selection")
	ErrUnknownCandidate = New(CodeUnknownCandidate, "unknown candidate")
	ErrInvalidMedia     = New(CodeInvalidMedia, "Invalid media content type")
	ErrNoBrowseCursor   = New(CodeNoBrowseCursor, "browse cursor missing")

	ErrDatabaseError = New(CodeDatabaseError, "database error")
	ErrCacheError    = New(CodeCacheError, "cache error")
	ErrStorageError  = New(CodeStorageError, "storage error")
	ErrTelegramError = New(CodeTelegramError, "telegram error")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}
