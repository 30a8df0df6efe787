package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// LoadClientConfig loads client configuration from the given file path. When the path is empty,
// repoctl.yaml is searched in the current directory and $HOME/.config/repoctl; a missing file
// leaves the defaults in place. Values can be overridden with REPOCTL_ prefixed env variables.
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	return LoadClientConfigFromFs(afero.NewOsFs(), filePath)
}

func LoadClientConfigFromFs(fs afero.Fs, filePath string) (*ClientConfig, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filePath != EmptyPath {
		if _, err := fs.Stat(filePath); err != nil {
			return nil, fmt.Errorf("error loading config file [%s]: %w", filePath, err)
		}
		v.SetConfigFile(filePath)
	} else {
		v.SetConfigName(DefaultFilename)
		v.SetConfigType(DefaultFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultFilename))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	conf := &ClientConfig{}
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(conf, decodeHook); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("github.host", "")
	v.SetDefault("github.upload_host", "")
	v.SetDefault("github.token_env", DefaultTokenEnv)
	v.SetDefault("github.request_timeout", DefaultRequestTimeout)
	v.SetDefault("upload.fallback_branch", DefaultFallbackBranch)
	v.SetDefault("list.page_size", DefaultListPageSize)
}
