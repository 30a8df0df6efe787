package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultLogLevel       = "info"
	DefaultTokenEnv       = "GITHUB_TOKEN"
	DefaultRequestTimeout = 30 * time.Second
	DefaultFallbackBranch = "main"
	DefaultListPageSize   = 100

	maxListPageSize = 100
)

type ClientConfig struct {
	Log    LogConfig    `mapstructure:"log"`
	GitHub GitHubConfig `mapstructure:"github"`
	Upload UploadConfig `mapstructure:"upload"`
	List   ListConfig   `mapstructure:"list"`
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn or error
}

type GitHubConfig struct {
	Host           string        `mapstructure:"host"`        // enterprise API base URL, empty for github.com
	UploadHost     string        `mapstructure:"upload_host"` // enterprise upload URL, defaults to host
	TokenEnv       string        `mapstructure:"token_env"`   // env var holding the access token
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // deadline of metadata calls, file writes are not bounded
}

type UploadConfig struct {
	FallbackBranch string `mapstructure:"fallback_branch"` // used when the default branch cannot be resolved
}

type ListConfig struct {
	PageSize int `mapstructure:"page_size"`
}

func (c ClientConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Log),
		validation.Field(&c.GitHub),
		validation.Field(&c.Upload),
		validation.Field(&c.List),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

func (g GitHubConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Host, is.URL),
		validation.Field(&g.UploadHost, is.URL),
		validation.Field(&g.TokenEnv, validation.Required),
		validation.Field(&g.RequestTimeout, validation.Required, validation.Min(time.Second)),
	)
}

func (u UploadConfig) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.FallbackBranch, validation.Required),
	)
}

func (l ListConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.PageSize, validation.Required, validation.Min(1), validation.Max(maxListPageSize)),
	)
}
