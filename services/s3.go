package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Service mirrors generated reports to an S3 bucket and hands out
// presigned download URLs.
type S3Service struct {
	s3Client *s3.S3
	bucket   string
	region   string
}

// NewS3Service builds the service from AWS_* environment variables and
// errors when any of them is missing, so callers can treat S3 as optional.
func NewS3Service() (*S3Service, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	bucket := os.Getenv("AWS_S3_BUCKET")

	if accessKey == "" || secretKey == "" || region == "" || bucket == "" {
		return nil, fmt.Errorf("AWS credentials not configured")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &S3Service{
		s3Client: s3.New(sess),
		bucket:   bucket,
		region:   region,
	}, nil
}

// UploadFile uploads a local file to S3 under key and returns the object URL.
func (s *S3Service) UploadFile(filePath, key string) (string, error) {
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileContent),
		ContentType: aws.String(contentTypeByExt(filePath)),
	}

	if _, err := s.s3Client.PutObject(input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// GeneratePresignedURL generates a presigned URL for secure downloads that
// expires in one hour.
func (s *S3Service) GeneratePresignedURL(key string) (string, error) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(1 * time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}
	return url, nil
}

// DeleteFile deletes an object from S3.
func (s *S3Service) DeleteFile(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	if _, err := s.s3Client.DeleteObject(input); err != nil {
		return fmt.Errorf("failed to delete file from S3: %v", err)
	}
	return nil
}

func contentTypeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
