package s3

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     cfg.AccessKeyID,
					SecretAccessKey: cfg.SecretAccessKey,
				}, nil
			},
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true // path-style для совместимости с S3-совместимыми сервисами
		o.Region = cfg.Region
	})

	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
	}, nil
}

// UploadPhoto загружает оригинал и миниатюру в S3 и возвращает ключ
// оригинала. Доступ к объектам только по подписанным ссылкам, поэтому
// храним ключ, а не публичный URL. Неудача с миниатюрой не фатальна.
func (s *S3Storage) UploadPhoto(ctx context.Context, feedID uuid.UUID, fileName string, data []byte, contentType string) (string, error) {
	ext := strings.ToLower(path.Ext(fileName))
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	originalKey := fmt.Sprintf("feeds/%s/originals/%s", feedID.String(), name)
	thumbKey := ThumbnailKey(originalKey)

	thumbBytes, err := s.createThumbnail(data)
	if err == nil {
		if err := s.uploadBytes(ctx, thumbBytes, thumbKey, "image/jpeg"); err != nil {
			log.Printf("failed to upload thumbnail: %v", err)
		}
	}

	if err := s.uploadBytes(ctx, data, originalKey, contentType); err != nil {
		return "", fmt.Errorf("failed to upload original: %w", err)
	}
	return originalKey, nil
}

// ThumbnailKey возвращает ключ миниатюры для ключа оригинала.
func ThumbnailKey(originalKey string) string {
	return strings.Replace(originalKey, "/originals/", "/thumbnails/", 1)
}

// createThumbnail создает миниатюру изображения
func (s *S3Storage) createThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Thumbnail(img, 300, 300, imaging.Lanczos)

	var buf bytes.Buffer
	err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85})
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

// uploadBytes загружает байты в S3
func (s *S3Storage) uploadBytes(ctx context.Context, data []byte, key, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// PresignGet выдает временную подписанную ссылку на скачивание объекта.
func (s *S3Storage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return req.URL, nil
}

// DeleteFile удаляет файл из S3
func (s *S3Storage) DeleteFile(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
