// Package minio 提供 MinIO 对象存储实现
package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"store-backoffice/internal/config"
	apperrors "store-backoffice/pkg/errors"
	"store-backoffice/pkg/metrics"
)

var tracer = otel.Tracer("minio")

// Client MinIO 客户端，实现 repository.BlobStore
type Client struct {
	api    *minio.Client
	bucket string
}

// NewClient 创建 MinIO 客户端并确保桶存在
func NewClient(cfg *config.MinioConfig) (*Client, error) {
	api, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	client := &Client{
		api:    api,
		bucket: cfg.Bucket,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Client) ensureBucket(ctx context.Context, region string) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Put 上传对象
func (c *Client) Put(ctx context.Context, objectName string, data []byte, contentType string) error {
	ctx, span := tracer.Start(ctx, "minio.Put",
		trace.WithAttributes(
			attribute.String("blob.object", objectName),
			attribute.Int("blob.size", len(data)),
		))
	defer span.End()

	_, err := c.api.PutObject(ctx, c.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		span.RecordError(err)
		metrics.BlobUploadsTotal.WithLabelValues("error").Inc()
		return apperrors.ErrStorageError.WithError(fmt.Errorf("failed to put object %s: %w", objectName, err))
	}

	metrics.BlobUploadsTotal.WithLabelValues("ok").Inc()
	metrics.BlobUploadBytes.Observe(float64(len(data)))
	return nil
}

// Remove 删除对象
func (c *Client) Remove(ctx context.Context, objectName string) error {
	ctx, span := tracer.Start(ctx, "minio.Remove",
		trace.WithAttributes(attribute.String("blob.object", objectName)))
	defer span.End()

	if err := c.api.RemoveObject(ctx, c.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		span.RecordError(err)
		return apperrors.ErrStorageError.WithError(fmt.Errorf("failed to remove object %s: %w", objectName, err))
	}
	return nil
}

// PresignedURL 生成临时访问链接
func (c *Client) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	ctx, span := tracer.Start(ctx, "minio.PresignedURL",
		trace.WithAttributes(attribute.String("blob.object", objectName)))
	defer span.End()

	u, err := c.api.PresignedGetObject(ctx, c.bucket, objectName, expiry, nil)
	if err != nil {
		span.RecordError(err)
		return "", apperrors.ErrStorageError.WithError(fmt.Errorf("failed to presign object %s: %w", objectName, err))
	}
	return u.String(), nil
}
