package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"track-manager/core/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects       map[string]*s3.HeadObjectOutput
	puts          []*s3.PutObjectInput
	headBucketErr error
	created       *s3.CreateBucketInput
	listed        *s3.ListObjectsV2Input
}

func (f *fakeS3) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	out, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NotFound{}
	}
	return out, nil
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, params)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headBucketErr != nil {
		return nil, f.headBucketErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.created = params
	return &s3.CreateBucketOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.listed = params
	return &s3.ListObjectsV2Output{Contents: []types.Object{{Key: aws.String("tracks/a.wav")}}}, nil
}

type fakePresigner struct {
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	opts := s3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://s3.example.com/" + aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key) + "?sig=1"}, nil
}

func TestS3Store_Stat(t *testing.T) {
	modified := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	client := &fakeS3{objects: map[string]*s3.HeadObjectOutput{
		"tracks/a.wav": {ContentLength: aws.Int64(7), LastModified: aws.Time(modified), ContentType: aws.String("audio/wav")},
	}}
	store := storage.NewS3Store(client, &fakePresigner{}, "bucket", "eu-west-1")

	info, found, err := store.Stat(context.Background(), "tracks/a.wav")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(7), info.Size)
	assert.Equal(t, modified, info.LastModified)

	exists, err := store.Exists(context.Background(), "tracks/missing.wav")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestS3Store_Put(t *testing.T) {
	client := &fakeS3{}
	store := storage.NewS3Store(client, &fakePresigner{}, "bucket", "")

	err := store.Put(context.Background(), "tracks/a.wav", []byte("abc"), "audio/wav", map[string]string{"original-name": "a.wav"})
	require.NoError(t, err)
	require.Len(t, client.puts, 1)
	assert.Equal(t, "bucket", aws.ToString(client.puts[0].Bucket))
	assert.Equal(t, int64(3), aws.ToInt64(client.puts[0].ContentLength))
	assert.Equal(t, "a.wav", client.puts[0].Metadata["original-name"])
}

func TestS3Store_PresignGet(t *testing.T) {
	presigner := &fakePresigner{}
	store := storage.NewS3Store(&fakeS3{}, presigner, "bucket", "")

	u, err := store.PresignGet(context.Background(), "tracks/a.wav", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/bucket/tracks/a.wav?sig=1", u)
	assert.Equal(t, 15*time.Minute, presigner.expires)
}

func TestS3Store_Admin(t *testing.T) {
	t.Run("BucketMissing", func(t *testing.T) {
		client := &fakeS3{headBucketErr: &types.NotFound{}}
		store := storage.NewS3Store(client, &fakePresigner{}, "bucket", "eu-west-1")
		exists, err := store.BucketExists(context.Background())
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, store.CreateBucket(context.Background()))
		require.NotNil(t, client.created.CreateBucketConfiguration)
		assert.Equal(t, types.BucketLocationConstraint("eu-west-1"), client.created.CreateBucketConfiguration.LocationConstraint)
	})

	t.Run("BucketError", func(t *testing.T) {
		client := &fakeS3{headBucketErr: errors.New("forbidden")}
		store := storage.NewS3Store(client, &fakePresigner{}, "bucket", "us-east-1")
		_, err := store.BucketExists(context.Background())
		assert.Error(t, err)

		require.NoError(t, store.CreateBucket(context.Background()))
		assert.Nil(t, client.created.CreateBucketConfiguration)
	})

	t.Run("ListKeys", func(t *testing.T) {
		client := &fakeS3{}
		store := storage.NewS3Store(client, &fakePresigner{}, "bucket", "")
		keys, err := store.ListKeys(context.Background(), "tracks/", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"tracks/a.wav"}, keys)
		assert.Equal(t, int32(1), aws.ToInt32(client.listed.MaxKeys))
	})
}
