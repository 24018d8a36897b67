package internal

import (
	"chat-kit/domain/attachment"
	"chat-kit/domain/mimetypes"
	"chat-kit/errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	for _, key := range []string{"LOG_LEVEL", "MAX_ATTACHMENT_SIZE", "ALLOWED_MEDIA_TYPES", "CONTENT_VERIFICATION", "CHUNK_SIZE_KB"} {
		t.Setenv(key, "")
		req.NoError(os.Unsetenv(key))
	}

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal(64, config.ChunkSizeKb)

	policy, err := config.Policy()
	req.NoError(err)
	req.Equal(attachment.DefaultPolicy(), policy)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MAX_ATTACHMENT_SIZE", "10MiB")
	t.Setenv("ALLOWED_MEDIA_TYPES", "application/pdf, Image/PNG ,")
	t.Setenv("CONTENT_VERIFICATION", "checksum")
	t.Setenv("CHUNK_SIZE_KB", "16")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("DEBUG", config.LogLevel)
	req.Equal(16, config.ChunkSizeKb)

	policy, err := config.Policy()
	req.NoError(err)
	req.Equal(uint64(10_485_760), policy.MaxBytes)
	req.Equal([]mimetypes.MIME{mimetypes.ApplicationPDF, mimetypes.ImagePNG}, policy.AllowedMediaTypes)
	req.Equal(attachment.VerifyChecksum, policy.Verification)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	req := require.New(t)
	t.Setenv("MAX_ATTACHMENT_SIZE", "")
	req.NoError(os.Unsetenv("MAX_ATTACHMENT_SIZE"))

	path := filepath.Join(t.TempDir(), ".env")
	req.NoError(os.WriteFile(path, []byte("MAX_ATTACHMENT_SIZE=1MiB\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("MAX_ATTACHMENT_SIZE") })

	config, err := LoadConfig(path)
	req.NoError(err)
	req.Equal("1MiB", config.MaxAttachmentSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	req.Error(err)
}

func TestLoadConfig_WorkingDirectoryDotEnv(t *testing.T) {
	tests := []struct {
		description string
		content     string
		wantErr     bool
	}{
		{"No .env file is fine", "", false},
		{"Well-formed .env file is loaded", "CHUNK_SIZE_KB=16\n", false},
		{"Malformed .env file is reported", "CHUNK_SIZE_KB=\"16\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			t.Setenv("CHUNK_SIZE_KB", "")
			req.NoError(os.Unsetenv("CHUNK_SIZE_KB"))
			t.Cleanup(func() { _ = os.Unsetenv("CHUNK_SIZE_KB") })

			dir := t.TempDir()
			if tt.content != "" {
				req.NoError(os.WriteFile(filepath.Join(dir, ".env"), []byte(tt.content), 0o600))
			}
			t.Chdir(dir)

			config, err := LoadConfig()
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			if tt.content != "" {
				req.Equal(16, config.ChunkSizeKb)
			}
		})
	}
}

func TestConfig_Policy_Errors(t *testing.T) {
	tests := []struct {
		description string
		config      Config
		want        error
	}{
		{"Unparsable size", Config{MaxAttachmentSize: "lots", ContentVerification: "sniff"}, nil},
		{"Zero size", Config{MaxAttachmentSize: "0", ContentVerification: "sniff"}, errors.ErrInvalidPolicy},
		{"Unknown verification", Config{MaxAttachmentSize: "1MiB", ContentVerification: "deep"}, errors.ErrInvalidPolicy},
		{"Malformed media type", Config{MaxAttachmentSize: "1MiB", ContentVerification: "none", AllowedMediaTypes: "pdf"}, errors.ErrInvalidPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			_, err := tt.config.Policy()
			req.Error(err)
			if tt.want != nil {
				req.ErrorIs(err, tt.want)
			}
		})
	}
}
