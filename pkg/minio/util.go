package minio

import (
	"strings"
	"time"

	"campaign-srv/config"
)

// timeNow is swappable for tests.
var timeNow = time.Now

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	return nil
}

func validateObjectName(bucketName, objectName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.HasPrefix(objectName, "/") {
		return NewInvalidInputError("object name cannot start with '/'")
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if err := validateObjectName(req.BucketName, req.ObjectName); err != nil {
		return err
	}
	if req.Reader == nil {
		return NewInvalidInputError("reader is required")
	}
	if req.Size <= 0 {
		return NewInvalidInputError("size must be positive")
	}
	if req.Size > MaxFileSizeBytes {
		return NewInvalidInputError("file size cannot exceed 5GB")
	}
	if req.ContentType == "" {
		return NewInvalidInputError("content type is required")
	}
	return nil
}

func validatePresignedURLRequest(req *PresignedURLRequest) error {
	if err := validateObjectName(req.BucketName, req.ObjectName); err != nil {
		return err
	}
	if req.Expiry <= 0 {
		req.Expiry = DefaultPresignedExpiry
	}
	if req.Expiry > MaxPresignedExpiry {
		return NewInvalidInputError("expiry cannot exceed 7 days")
	}
	return nil
}
