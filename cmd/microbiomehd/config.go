// Config loading for the microbiomehd CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Iseultl/microbiomeHD/pkg/types"
)

// Config keys recognized in the optional config.yaml.
const (
	cfgKeyDataDir    = "data_dir"
	cfgKeyCleanDir   = "clean_dir"
	cfgKeyVocabulary = "vocabulary"
)

// toolConfig holds CLI-level settings. The vocabulary override lets new
// cohorts be classified without a code change.
type toolConfig struct {
	DataDir    string
	CleanDir   string
	Vocabulary types.Vocabulary
}

// loadConfig reads the config file when one was given and applies defaults
// otherwise. A missing --config flag is not an error; an unreadable file
// named by the flag is.
func loadConfig(path string) (toolConfig, error) {
	cfg := toolConfig{Vocabulary: types.DefaultVocabulary()}

	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.DataDir = v.GetString(cfgKeyDataDir)
	cfg.CleanDir = v.GetString(cfgKeyCleanDir)

	if v.IsSet(cfgKeyVocabulary) {
		var vocab types.Vocabulary
		if err := v.UnmarshalKey(cfgKeyVocabulary, &vocab); err != nil {
			return cfg, fmt.Errorf("parse vocabulary: %w", err)
		}
		if err := vocab.Validate(); err != nil {
			return cfg, fmt.Errorf("vocabulary: %w", err)
		}
		cfg.Vocabulary = vocab
	}
	return cfg, nil
}
