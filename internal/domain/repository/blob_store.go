package repository

import (
	"context"
	"time"
)

// BlobStore 对象存储接口
type BlobStore interface {
	// Put 上传对象
	Put(ctx context.Context, objectName string, data []byte, contentType string) error
	// Remove 删除对象
	Remove(ctx context.Context, objectName string) error
	// PresignedURL 生成临时访问链接
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
