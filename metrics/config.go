// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics

// Config for metrics configuration
type Config struct {
	// Enable dumps the registry when a command finishes.
	Enable bool `mapstructure:"enable"`
}
