package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// heroImagePrefix is the bucket directory that holds home page hero images
const heroImagePrefix = "hero/"

// SpacesClient handles object storage operations against an S3-compatible
// Spaces bucket (hero images, university photos).
type SpacesClient struct {
	s3Client *s3.S3
	bucket   string
	endpoint string
	cdnURL   string
}

// SpacesConfig holds configuration for the Spaces client
type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	CDNURL    string
}

// NewSpacesClient creates a new Spaces client
func NewSpacesClient(config SpacesConfig) (*SpacesClient, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Spaces session: %w", err)
	}

	return &SpacesClient{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
		endpoint: config.Endpoint,
		cdnURL:   config.CDNURL,
	}, nil
}

// objectURL returns the public URL for a stored object
func (s *SpacesClient) objectURL(key string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", s.cdnURL, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key)
}

// KeyFromURL recovers the object key from one of this client's public URLs.
// Returns "" for URLs that do not point into this bucket, so stale or
// foreign image URLs are never deleted by mistake.
func (s *SpacesClient) KeyFromURL(url string) string {
	bases := []string{fmt.Sprintf("https://%s.%s/", s.bucket, s.endpoint)}
	if s.cdnURL != "" {
		bases = append(bases, s.cdnURL+"/")
	}
	for _, base := range bases {
		if strings.HasPrefix(url, base) {
			return strings.TrimPrefix(url, base)
		}
	}
	return ""
}

// ListHeroImages lists the public URLs of hero images, in key order.
// Directory placeholder objects and non-image files are skipped.
func (s *SpacesClient) ListHeroImages(ctx context.Context) ([]string, error) {
	result, err := s.s3Client.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(heroImagePrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list hero images: %w", err)
	}

	urls := make([]string, 0, len(result.Contents))
	for _, obj := range result.Contents {
		key := aws.StringValue(obj.Key)
		if key == "" || strings.HasSuffix(key, "/") {
			continue
		}
		if !isImageKey(key) {
			continue
		}
		urls = append(urls, s.objectURL(key))
	}
	return urls, nil
}

func isImageKey(key string) bool {
	lower := strings.ToLower(key)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp", ".gif"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// UploadImage uploads an image to the bucket and returns its public URL
func (s *SpacesClient) UploadImage(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        aws.ReadSeekCloser(data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return s.objectURL(key), nil
}

// DeleteImage deletes an image from the bucket
func (s *SpacesClient) DeleteImage(ctx context.Context, key string) error {
	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
