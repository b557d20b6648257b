package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

var store = newStore()

func newStore() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// Load reads KEY=VALUE pairs from a dotenv file. A missing file is not an error.
// Variables set in the process environment take precedence over file values.
func Load(path string) error {
	store.SetConfigFile(path)
	store.SetConfigType("env")
	if err := store.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return nil
}

func GetEnv(key, fallback string) string {
	if value := store.GetString(key); value != "" {
		return value
	}
	return fallback
}
