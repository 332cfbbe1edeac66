// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package bucket provides the object-storage adapter backing media uploads.

Clients never stream file bytes through this API: handlers hand out presigned
PUT URLs and the browser uploads directly to the bucket. The backend only
deals in keys and URLs.

Core Responsibilities:

  - Presign: Short-lived PUT URLs for publicly readable objects.
  - Cleanup: Best-effort batch deletion when owning rows are removed.

Works against AWS S3 and any S3-compatible store (a custom endpoint can be
configured for MinIO or R2 in development).
*/
package bucket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/nvarela/casavia/internal/platform/constants"
)

// Client wraps the S3 SDK with the bucket the application owns.
type Client struct {
	bucket   string
	s3Client *s3.Client
	presign  *s3.PresignClient
	logger   *slog.Logger
}

// Options configures the storage client.
type Options struct {
	Bucket string
	Region string
	// Endpoint overrides the AWS endpoint for S3-compatible stores.
	// Leave empty for real AWS S3.
	Endpoint string
}

// NewClient builds the S3 client from ambient AWS credentials.
//
// # Parameters
//   - ctx: Context for credential resolution.
//   - opts: Bucket name, region, and optional custom endpoint.
//   - logger: Structured logger for storage events.
func NewClient(ctx context.Context, opts Options, logger *slog.Logger) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("bucket: failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			// Path-style addressing is what MinIO and most compatible
			// stores expect.
			o.UsePathStyle = true
		}
	})

	return &Client{
		bucket:   opts.Bucket,
		s3Client: s3Client,
		presign:  s3.NewPresignClient(s3Client),
		logger:   logger,
	}, nil
}

// IssueUploadURL returns a presigned PUT URL for the given object key.
//
// The URL is valid for [constants.UploadURLTTL] and uploads a publicly
// readable object. The caller owns key construction; this layer never
// inspects or rewrites keys.
func (client *Client) IssueUploadURL(ctx context.Context, key string) (string, error) {
	request, err := client.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
		ACL:    types.ObjectCannedACLPublicRead,
	}, s3.WithPresignExpires(constants.UploadURLTTL))
	if err != nil {
		return "", fmt.Errorf("bucket: failed to presign upload for %q: %w", key, err)
	}

	return request.URL, nil
}

// DeleteObjects removes the given keys and returns the subset that was
// actually deleted.
//
// Deletion is best-effort per key: one failing key does not abort the
// remaining ones, and the error (if any) describes the first failure while
// the returned slice still reports what succeeded.
func (client *Client) DeleteObjects(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	identifiers := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		identifiers = append(identifiers, types.ObjectIdentifier{Key: aws.String(key)})
	}

	output, err := client.s3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(client.bucket),
		Delete: &types.Delete{
			Objects: identifiers,
			Quiet:   aws.Bool(false),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bucket: batch delete failed: %w", err)
	}

	deleted := make([]string, 0, len(output.Deleted))
	for _, object := range output.Deleted {
		if object.Key != nil {
			deleted = append(deleted, *object.Key)
		}
	}

	// Partial failures arrive as per-key errors on an otherwise
	// successful call.
	if len(output.Errors) > 0 {
		first := output.Errors[0]
		client.logger.Error("bucket_partial_delete",
			slog.Int("requested", len(keys)),
			slog.Int("deleted", len(deleted)),
			slog.String("first_failed_key", aws.ToString(first.Key)),
			slog.String("reason", aws.ToString(first.Message)),
		)
		return deleted, fmt.Errorf("bucket: %d of %d objects failed to delete", len(output.Errors), len(keys))
	}

	return deleted, nil
}
