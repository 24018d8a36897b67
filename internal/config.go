package internal

import (
	"chat-kit/domain/attachment"
	"chat-kit/domain/mimetypes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	LogLevel            string `env:"LOG_LEVEL,default=INFO"`
	MaxAttachmentSize   string `env:"MAX_ATTACHMENT_SIZE,default=25MiB"`
	AllowedMediaTypes   string `env:"ALLOWED_MEDIA_TYPES"`
	ContentVerification string `env:"CONTENT_VERIFICATION,default=sniff"`
	ChunkSizeKb         int    `env:"CHUNK_SIZE_KB,default=64"`
}

// LoadConfig reads the given .env files, or ./.env when it exists, then the environment.
// Variables already set in the environment win over the files.
func LoadConfig(dotEnvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotEnvFiles...); err != nil {
		if len(dotEnvFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %v: %w", dotEnvFiles, err)
		}
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

// Policy builds the attachment policy. An empty ALLOWED_MEDIA_TYPES keeps the default list.
func (c Config) Policy() (attachment.Policy, error) {
	maxBytes, err := humanize.ParseBytes(c.MaxAttachmentSize)
	if err != nil {
		return attachment.Policy{}, fmt.Errorf("MAX_ATTACHMENT_SIZE %q: %w", c.MaxAttachmentSize, err)
	}
	verification, err := attachment.ParseVerification(c.ContentVerification)
	if err != nil {
		return attachment.Policy{}, fmt.Errorf("CONTENT_VERIFICATION: %w", err)
	}

	allowed := attachment.DefaultAllowedMediaTypes()
	if strings.TrimSpace(c.AllowedMediaTypes) != "" {
		parts := lo.Filter(strings.Split(c.AllowedMediaTypes, ","), func(item string, _ int) bool {
			return strings.TrimSpace(item) != ""
		})
		allowed = lo.Map(parts, func(item string, _ int) mimetypes.MIME {
			return mimetypes.MIME(strings.TrimSpace(item))
		})
	}

	policy, err := attachment.Policy{
		MaxBytes:          maxBytes,
		AllowedMediaTypes: allowed,
		Verification:      verification,
	}.Validate()
	if err != nil {
		return attachment.Policy{}, fmt.Errorf("attachment policy: %w", err)
	}
	return policy, nil
}
