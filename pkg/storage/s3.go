package storage

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/logging"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/utils"
)

// Client wraps the S3 API with the two operations this system needs: listing
// audio objects and fetching one object to a local file.
type Client struct {
	api *s3.Client
}

func New(awsCfg aws.Config) *Client {
	return &Client{api: s3.NewFromConfig(awsCfg)}
}

// ListAudioObjects lists the bucket (single default page) and filters the
// keys to recognized audio extensions, preserving response order.
func (c *Client) ListAudioObjects(ctx context.Context, bucket string) ([]string, error) {
	output, err := c.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, utils.WrapIfNotNil(err)
	}

	keys := make([]string, 0, len(output.Contents))
	for _, object := range output.Contents {
		key := aws.ToString(object.Key)
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}

	filtered := FilterAudioKeys(keys)
	logging.NewLogger(ctx).Debugf(
		"list_audio_objects bucket=%q total=%d audio=%d", bucket, len(keys), len(filtered),
	)
	return filtered, nil
}

// Download streams the object to dest, truncating any stale file at that
// path. A failed download makes no partial-file guarantee.
func (c *Client) Download(ctx context.Context, bucket, key, dest string) error {
	output, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return utils.WrapIfNotNil(err)
	}
	defer func() {
		_ = output.Body.Close()
	}()

	file, err := os.Create(dest)
	if err != nil {
		return utils.WrapIfNotNil(err)
	}

	_, copyErr := io.Copy(file, output.Body)
	closeErr := file.Close()
	if copyErr != nil {
		return utils.WrapIfNotNil(copyErr)
	}
	return utils.WrapIfNotNil(closeErr)
}
