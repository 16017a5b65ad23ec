// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"github.com/gin-gonic/gin"
)

// DetailResponse 错误响应结构，正文只有 detail 字段
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Detail 返回 detail 错误响应
func Detail(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, DetailResponse{Detail: message})
}
