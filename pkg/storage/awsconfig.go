package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	appconfig "github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/config"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/utils"
)

// LoadAWSConfig builds the shared AWS config from the application config.
// When both storage keys are present they are used as static credentials;
// otherwise resolution falls through to the SDK default chain, so missing
// credentials fail at the first remote call rather than at startup.
func LoadAWSConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	loadOpts := make([]func(*awsconfig.LoadOptions) error, 0, 2)

	region := strings.TrimSpace(cfg.StorageRegion)
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	accessKey := strings.TrimSpace(cfg.StorageAccessKey)
	secretKey := strings.TrimSpace(cfg.StorageSecretKey)
	if accessKey != "" || secretKey != "" {
		if accessKey == "" || secretKey == "" {
			return aws.Config{}, utils.WrapIfNotNil(
				errors.New("both STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required when using key-based auth"),
			)
		}

		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, utils.WrapIfNotNil(err)
	}
	return awsCfg, nil
}
