// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// Config defines the configurations of script execution
type Config struct {
	Flags     []string `mapstructure:"flags"`
	Workers   int      `mapstructure:"workers"`
	CacheSize int      `mapstructure:"cache_size"`
}

// ScriptFlags parses the configured flag names.
func (c *Config) ScriptFlags() (ScriptFlags, error) {
	return ParseScriptFlags(c.Flags)
}

// NewValidator builds a validator from the configuration. A non-positive
// cache size disables the execution cache.
func (c *Config) NewValidator() (*Validator, error) {
	var cache *ExecCache
	if c.CacheSize > 0 {
		var err error
		if cache, err = NewExecCache(c.CacheSize); err != nil {
			return nil, err
		}
	}
	return NewValidator(c.Workers, cache), nil
}
