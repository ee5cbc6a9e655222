package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of *s3.Client used by s3MediaStorage.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

const sha256MetadataKey = "sha256"

type s3MediaStorage struct {
	client s3API
	bucket string
	prefix string
	logger *logger.Logger
}

// NewS3MediaStorage builds an S3 client from cfg. Static credentials are used
// when both keys are set; otherwise the default AWS credential chain applies.
func NewS3MediaStorage(ctx context.Context, cfg config.Media, logger *logger.Logger) (MediaStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	logger.Debug().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("creating s3 media storage")
	return newS3MediaStorage(client, cfg.Bucket, cfg.Prefix, logger), nil
}

func newS3MediaStorage(client s3API, bucket, prefix string, logger *logger.Logger) *s3MediaStorage {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &s3MediaStorage{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Save spools content to a temp file so that the upload body is seekable and
// its length and digest are known before the request is signed.
func (s *s3MediaStorage) Save(ctx context.Context, name, contentType string, content io.Reader) (models.StoredMedia, error) {
	log := logger.FromContext(ctx)

	spool, err := os.CreateTemp("", "rexora-upload-*")
	if err != nil {
		return models.StoredMedia{}, fmt.Errorf("error creating spool file: %w", err)
	}
	defer func() {
		spool.Close()
		os.Remove(spool.Name())
	}()

	hasher := sha256.New()
	size, err := io.Copy(spool, io.TeeReader(content, hasher))
	if err != nil {
		return models.StoredMedia{}, fmt.Errorf("error spooling media: %w", err)
	}
	if _, err = spool.Seek(0, io.SeekStart); err != nil {
		return models.StoredMedia{}, fmt.Errorf("error rewinding spool file: %w", err)
	}

	key := newMediaKey(name, contentType)
	digest := hex.EncodeToString(hasher.Sum(nil))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.prefix + key),
		Body:          spool,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		Metadata:      map[string]string{sha256MetadataKey: digest},
	})
	if err != nil {
		log.Err(err).Str("func", "s3MediaStorage.Save").Str("key", key).Msg("failed to put object")
		return models.StoredMedia{}, fmt.Errorf("error uploading media %s: %w", key, err)
	}

	return models.StoredMedia{
		Key:         key,
		ContentType: contentType,
		Size:        size,
		SHA256:      digest,
		ModifiedAt:  time.Now().UTC(),
	}, nil
}

func (s *s3MediaStorage) Open(ctx context.Context, key string) (MediaObject, error) {
	if err := checkMediaKey(key); err != nil {
		return MediaObject{}, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return MediaObject{}, ErrMediaNotFound
		}
		return MediaObject{}, fmt.Errorf("error downloading media %s: %w", key, err)
	}

	obj := MediaObject{
		StoredMedia: models.StoredMedia{
			Key:         key,
			ContentType: aws.ToString(out.ContentType),
			Size:        aws.ToInt64(out.ContentLength),
			SHA256:      out.Metadata[sha256MetadataKey],
			ModifiedAt:  aws.ToTime(out.LastModified),
		},
		Body: out.Body,
	}
	if obj.ContentType == "" {
		obj.ContentType = contentTypeFromKey(key)
	}

	return obj, nil
}

func (s *s3MediaStorage) Delete(ctx context.Context, key string) error {
	if err := checkMediaKey(key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3MediaStorage.Delete").Str("key", key).Msg("failed to delete object")
		return fmt.Errorf("error deleting media %s: %w", key, err)
	}
	return nil
}

func (s *s3MediaStorage) List(ctx context.Context) ([]models.StoredMedia, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	out := make([]models.StoredMedia, 0, 32)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing media: %w", err)
		}

		for _, obj := range page.Contents {
			key := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			if checkMediaKey(key) != nil {
				continue
			}
			out = append(out, models.StoredMedia{
				Key:         key,
				ContentType: contentTypeFromKey(key),
				Size:        aws.ToInt64(obj.Size),
				ModifiedAt:  aws.ToTime(obj.LastModified),
			})
		}
	}

	return out, nil
}
