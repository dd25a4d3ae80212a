// Package mirror uploads persisted meeting records to object storage. The
// mirror is strictly secondary: upload failures are reported to the caller
// for logging but never fail the pipeline.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/priyank-82/Meet-Minding/internal/history"
	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

// Uploader mirrors records into an S3 bucket using the same per-team layout
// as local storage: {prefix}/{teamkey}/{filename}.
type Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

// New resolves AWS credentials from the default chain and returns an
// uploader targeting the given bucket.
func New(ctx context.Context, region, bucket, prefix string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	if prefix == "" {
		prefix = "team_summaries"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Upload serializes the record and puts it under the team's namespaced key.
// The record must already be stamped by the history store, since its
// filename becomes part of the object key.
func (u *Uploader) Upload(ctx context.Context, teamID string, rec *meeting.Record) error {
	if rec.Filename == "" {
		return fmt.Errorf("record has no filename; save it first")
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s", u.prefix, history.TeamKey(teamID), rec.Filename)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	return nil
}
