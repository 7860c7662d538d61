package awsprovider

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
)

// UploadReport stores a rendered report in S3.
func (p *AWSProvider) UploadReport(
	ctx context.Context,
	region, bucket, key string,
	body []byte,
	contentType string,
) error {
	if bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	_, err := p.GetS3Client(region).PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload report to s3://%s/%s: %w", bucket, key, err)
	}
	logger.Get().Infof("Uploaded report to s3://%s/%s", bucket, key)
	return nil
}
