package upload

import (
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormaliseEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHost   string
		wantSecure bool
		wantErr    bool
	}{
		{name: "host and port", raw: "localhost:9000", wantHost: "localhost:9000"},
		{name: "ip and port", raw: "127.0.0.1:9000", wantHost: "127.0.0.1:9000"},
		{name: "http url", raw: "http://minio:9000", wantHost: "minio:9000"},
		{name: "https url", raw: "https://s3.example.com", wantHost: "s3.example.com", wantSecure: true},
		{name: "trailing slash", raw: "https://s3.example.com/", wantHost: "s3.example.com", wantSecure: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "unsupported scheme", raw: "ftp://minio:21", wantErr: true},
		{name: "path", raw: "http://minio:9000/bucket", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure, err := normaliseEndpoint(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEndpoint)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

func TestNewMinioStorage(t *testing.T) {
	s, err := NewMinioStorage(config.Minio{
		Endpoint:  "http://localhost:9000",
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "files",
	}, "upload")
	require.NoError(t, err)

	key := s.objectKey("20260102", "1-abc.png")
	assert.Equal(t, "upload/20260102/1-abc.png", key)
	assert.Equal(t, "http://localhost:9000/files/upload/20260102/1-abc.png", s.objectURL(key))
}

func TestNewMinioStorage_InvalidEndpoint(t *testing.T) {
	_, err := NewMinioStorage(config.Minio{Endpoint: "ftp://localhost"}, "upload")
	assert.ErrorIs(t, err, ErrInvalidEndpoint)
}
