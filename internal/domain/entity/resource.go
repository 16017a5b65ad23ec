package entity

import (
	"strings"

	apperrors "store-backoffice/pkg/errors"
)

// StoreResource 店铺附加资源链接
type StoreResource struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TargetURL string `json:"target_url"`
	StoreID   string `json:"store_id"`
}

const maxResourceURLLength = 512

// IsValidResourceURL 校验资源链接格式
func IsValidResourceURL(raw string) bool {
	if len(raw) == 0 || len(raw) > maxResourceURLLength {
		return false
	}
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// ParseResourceBatch 解析 "链接 | 标题" 格式的多行输入。
// 任意一行不合法则整批拒绝，ID 与 StoreID 由调用方在提交时填充。
func ParseResourceBatch(text string) ([]StoreResource, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	resources := make([]StoreResource, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			return nil, apperrors.ErrValidationFailed.WithDetail("resource line must be 'url | title'")
		}

		targetURL := strings.TrimSpace(parts[0])
		title := strings.TrimSpace(parts[1])

		if !IsValidResourceURL(targetURL) {
			return nil, apperrors.ErrValidationFailed.WithDetail("resource url must start with http(s) and fit 512 chars")
		}
		if title == "" {
			return nil, apperrors.ErrValidationFailed.WithDetail("resource title must not be empty")
		}

		resources = append(resources, StoreResource{
			Title:     title,
			TargetURL: targetURL,
		})
	}

	return resources, nil
}
