// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"path/filepath"
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the test away from the developer's real AWS setup.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
}

func TestLoadAWSConfig_Overrides(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("eu-west-1"), WithoutRetries())
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	require.NotNil(t, cfg.Retryer)
	assert.Equal(t, 1, cfg.Retryer().MaxAttempts())
}

func TestLoadAWSConfig_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("AWS_REGION", "us-east-2")

	cfg, err := LoadAWSConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "us-east-2", cfg.Region)
}

func TestWithS3Endpoint(t *testing.T) {
	var o s3v2.Options
	WithS3Endpoint("http://localhost:9000")(&o)

	require.NotNil(t, o.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *o.BaseEndpoint)
	assert.True(t, o.UsePathStyle)
}
