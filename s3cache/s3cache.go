/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that stores and
 * retrieves data using Amazon S3. It descends from
 * github.com/sourcegraph/s3cache, ported to aws-sdk-go-v2.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const DefaultPrefix = "teetimes-httpcache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Client is the s3 client used for every request. Init builds one from
	// the default AWS configuration unless WithClient supplied it.
	Client *s3.Client

	bucket string
	prefix string
	gzip   bool
	logger *zap.Logger

	// The context to specify when initiating s3 requests
	ctx context.Context
}

type Option func(*Cache)

// WithGzip compresses entries on Set and decompresses them on Get. Object
// keys get a ".gz" suffix so compressed and plain entries never collide.
func WithGzip() Option {
	return func(c *Cache) { c.gzip = true }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPrefix sets the key prefix objects are stored under.
func WithPrefix(p string) Option {
	return func(c *Cache) { c.prefix = p }
}

func WithClient(client *s3.Client) Option {
	return func(c *Cache) { c.Client = client }
}

// New returns a Cache backed by the given bucket. Callers must invoke Init
// before use.
func New(ctx context.Context, bucket string, opts ...Option) *Cache {
	c := &Cache{
		ctx:    ctx,
		bucket: bucket,
		prefix: DefaultPrefix,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Init loads the default AWS configuration (environment, then shared config
// and credentials files) and checks that the bucket can be read and listed.
func (c *Cache) Init() error {
	if c.Client == nil {
		awsCfg, err := config.LoadDefaultConfig(c.ctx)
		if err != nil {
			return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
		}
		c.Client = s3.NewFromConfig(awsCfg)
	}

	if _, err := c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w", c.bucket, err)
	}
	if _, err := c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucket),
		Prefix:  aws.String(c.prefix),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w", c.bucket, err)
	}

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		if isMiss(err) {
			c.logger.Debug("s3cache.get: miss", zap.String("key", objKey))
		} else {
			c.logger.Warn("s3cache.get: failed to get object",
				zap.String("bucket", c.bucket), zap.String("key", objKey),
				zap.Error(err))
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := io.Reader(resp.Body)
	if c.gzip {
		gr, err := gzip.NewReader(rdr)
		if err != nil {
			c.logger.Warn("s3cache.get: failed to open compressed object",
				zap.String("key", objKey), zap.Error(err))
			return nil, false
		}
		defer gr.Close()
		rdr = gr
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logger.Warn("s3cache.get: failed to read object",
			zap.String("key", objKey), zap.Error(err))
		return nil, false
	}
	return data, true
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		body, err := compress(data)
		if err != nil {
			c.logger.Warn("s3cache.set: failed to gzip data",
				zap.String("key", objKey), zap.Error(err))
			return
		}
		input.Body = body
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logger.Warn("s3cache.set: put failed", zap.String("bucket", c.bucket),
			zap.String("key", objKey), zap.Error(err))
	}
}

func (c *Cache) Delete(key string) {
	objKey := c.objectKey(key)
	if _, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objKey),
	}); err != nil {
		c.logger.Warn("s3cache.delete: delete failed",
			zap.String("key", objKey), zap.Error(err))
	}
}

func (c *Cache) objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := fmt.Sprintf("%v/%v", c.prefix, hex.EncodeToString(sum[:]))
	if c.gzip {
		objKey += ".gz"
	}
	return objKey
}

func compress(data []byte) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return &buf, nil
}

// isMiss reports whether err only means the key is absent.
func isMiss(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey"
}
