package wizard

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// 文本输入的长度上限
const (
	MaxTitleLength       = 64
	MaxDescriptionLength = 4096
	MaxURLLength         = 512
)

// ValidTitle 校验标题输入
func ValidTitle(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= MaxTitleLength
}

// ValidDescription 校验描述输入
func ValidDescription(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= MaxDescriptionLength
}

// ValidURL 校验链接输入
func ValidURL(s string) bool {
	if len(s) == 0 || utf8.RuneCountInString(s) > MaxURLLength {
		return false
	}
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ParsePriority 解析优先级输入，仅接受纯数字
func ParsePriority(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
