package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	wire "github.com/dmitrijs2005/portfolio/internal/models"
	sc "github.com/dmitrijs2005/portfolio/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// PresignExpiry bounds how long an upload URL stays valid.
const PresignExpiry = 15 * time.Minute

// UploadService hands out presigned PUT URLs for portfolio images.
type UploadService struct {
	config *sc.Config
}

func NewUploadService(config *sc.Config) *UploadService {
	return &UploadService{config: config}
}

// StorageKey places an upload under a dated prefix with a random name that
// keeps the original extension.
func StorageKey(fileName string, t time.Time) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("images/%d/%02d/%02d/%s%s", t.Year(), t.Month(), t.Day(), uuid.New(), ext)
}

func (s *UploadService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		// MinIO и локальные S3 не поддерживают virtual-host адресацию
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// Presign returns a PUT URL for one image and the URL it will be served
// from.
func (s *UploadService) Presign(ctx context.Context, req wire.UploadRequest) (wire.UploadTicket, error) {
	errs := make(wire.ValidationErrors)
	if strings.TrimSpace(req.FileName) == "" {
		errs.Add("fileName", "is required")
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		errs.Add("contentType", "must be an image type")
	}
	if err := errs.Err(); err != nil {
		return wire.UploadTicket{}, err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return wire.UploadTicket{}, err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(req.FileName, now().UTC())

	signed, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return wire.UploadTicket{}, fmt.Errorf("presign error: %w", err)
	}

	return wire.UploadTicket{
		UploadURL: signed.URL,
		PublicURL: s.config.PublicBaseURL() + "/" + key,
	}, nil
}
