// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store-backoffice/internal/interfaces/http/dto"
	apperrors "store-backoffice/pkg/errors"
	"store-backoffice/pkg/logger"
)

// respondError 将应用错误翻译成 detail 响应
func respondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", err,
			"path", c.Request.URL.Path)
	}
	dto.Detail(c, appErr.HTTPStatus, appErr.Message)
}

// parsePagination 读取 page 与 page_size 查询参数
func parsePagination(c *gin.Context) (page, pageSize int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		dto.Detail(c, http.StatusBadRequest, "invalid page parameter")
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 {
		dto.Detail(c, http.StatusBadRequest, "invalid page_size parameter")
		return 0, 0, false
	}

	return page, pageSize, true
}
