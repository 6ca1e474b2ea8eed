package testutil

import (
	"testing"

	"github.com/spf13/viper"
)

// ResetConfig resets viper now and again when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// SetViperValue sets a viper configuration value and restores the previous
// value when the test completes.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	wasSet := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if wasSet {
			viper.Set(key, oldValue)
		} else {
			// Viper cannot unset a key; nil is the closest equivalent.
			viper.Set(key, nil)
		}
	})
}

// SetupTranslationCache points the translation cache at a file inside env
// and returns its path.
func SetupTranslationCache(t *testing.T, env *TestEnv) string {
	t.Helper()

	path := env.Path("cache", "translations.db")
	env.WriteFileString("cache/.keep", "")
	SetViperValue(t, "translation.cache_file", path)
	return path
}
