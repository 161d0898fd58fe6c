// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"sync"

	mate "github.com/heralight/logrus_mate"
)

// Logger defines the log functions
type Logger interface {
	SetLogLevel(level string)
	LogLevel() string
	Debugf(f string, v ...interface{})
	Debug(v ...interface{})
	Infof(f string, v ...interface{})
	Info(v ...interface{})
	Warnf(f string, v ...interface{})
	Warn(v ...interface{})
	Errorf(f string, v ...interface{})
	Error(v ...interface{})
	Fatalf(f string, v ...interface{})
	Fatal(v ...interface{})
	Panicf(f string, v ...interface{})
	Panic(v ...interface{})
}

// Config is the configuration of the logrus logger, read from the "log"
// section of the config file.
type Config mate.LoggerConfig

var (
	mutex     sync.Mutex
	loggerMap = map[string]Logger{}
)

// Setup applies cfg to all loggers.
func Setup(cfg *Config) error {
	return logrusSetup(cfg)
}

// NewLogger returns the logger for tag, creating it on first use.
func NewLogger(tag string) Logger {
	mutex.Lock()
	defer mutex.Unlock()

	if logger, ok := loggerMap[tag]; ok {
		return logger
	}
	logger := logrusNewLogger(tag)
	loggerMap[tag] = logger
	return logger
}

// SetLogLevel sets all loggers log level
func SetLogLevel(newLevel string) (ok bool) {
	mutex.Lock()
	defer mutex.Unlock()

	ok = true
	for _, logger := range loggerMap {
		originLevel := logger.LogLevel()
		logger.SetLogLevel(newLevel)
		if currentLevel := logger.LogLevel(); currentLevel != newLevel {
			logger.Infof("Error setting log level from %s to %s", originLevel, newLevel)
			ok = false
		}
	}
	return
}
