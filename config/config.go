// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BOXFoundation/paircommit/log"
	"github.com/BOXFoundation/paircommit/metrics"
	"github.com/BOXFoundation/paircommit/script"
)

////////////////////////////////////////////////////////////////
// build time variants

// Version number of the build
var Version string

// GitCommit id of source code
var GitCommit string

////////////////////////////////////////////////////////////////

// DefaultLogFile is the log file name used when a file hook names none.
const DefaultLogFile = "pcscript.log"

// Config is a configuration data structure for pcscript, which is read
// from config file or parsed from command line.
type Config struct {
	Workspace string         `mapstructure:"workspace"`
	Log       log.Config     `mapstructure:"log"`
	Script    script.Config  `mapstructure:"script"`
	Metrics   metrics.Config `mapstructure:"metrics"`
}

var format = `workspace: %s
log: %v
script: %+v
metrics: %+v`

func (c Config) String() string {
	return fmt.Sprintf(format, c.Workspace, c.Log.Level, c.Script, c.Metrics)
}

// Prepare makes sure all configurations are usable: the workspace is made
// absolute and created, and file log hooks get a path inside it.
func (c *Config) Prepare() error {
	ws, err := filepath.Abs(c.Workspace)
	if err != nil {
		return err
	}
	c.Workspace = ws // change to abs path
	if err := mkDirAll(c.Workspace); err != nil {
		return err
	}

	// check log file configuration
	for _, hook := range c.Log.Hooks {
		if hook.Name != "file" { // only check file logs
			continue
		}
		if hook.Options == nil {
			return fmt.Errorf("log hook %s has no options", hook.Name)
		}
		filename, ok := hook.Options["filename"]
		if !ok {
			logfile := filepath.Join(c.Workspace, "logs", DefaultLogFile)
			hook.Options["filename"] = logfile
			if err := mkDirAll(filepath.Dir(logfile)); err != nil {
				return err
			}
		} else if strV, ok := filename.(string); ok {
			if filepath.IsAbs(strV) { // abs dir
				if err := mkDirAll(filepath.Dir(strV)); err != nil {
					return err
				}
				continue
			}
			if strings.Contains(strV, "/") { // incorrect filename
				return fmt.Errorf("incorrect log filename %s", strV)
			}
			if len(strV) == 0 {
				strV = DefaultLogFile
			}
			logfile := filepath.Join(c.Workspace, "logs", strV)
			hook.Options["filename"] = logfile
			if err := mkDirAll(filepath.Dir(logfile)); err != nil {
				return err
			}
		}
	}

	// script flags must be known before anything runs
	if _, err := c.Script.ScriptFlags(); err != nil {
		return err
	}
	return nil
}

func mkDirAll(p string) error {
	return os.MkdirAll(p, 0700)
}
