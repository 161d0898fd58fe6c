// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// sourceHook adds the "source" field (dir/file.go:line) of the caller to
// every entry.
type sourceHook struct {
	skip int
}

func newSourceHook() logrus.Hook {
	return &sourceHook{skip: 5}
}

func (hook *sourceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *sourceHook) Fire(entry *logrus.Entry) error {
	file, line := findCaller(hook.skip)
	entry.Data["source"] = fmt.Sprintf("%s:%d", file, line)
	return nil
}

// findCaller walks up the stack past logrus and this package.
func findCaller(skip int) (string, int) {
	for i := 0; i < 10; i++ {
		file, line, ok := shortCaller(skip + i)
		if !ok {
			return "", 0
		}
		if !strings.Contains(file, "logrus") && !strings.HasPrefix(file, "log/") {
			return file, line
		}
	}
	return "", 0
}

// shortCaller trims the file path to its last two elements.
func shortCaller(skip int) (string, int, bool) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, false
	}
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= 2 {
				file = file[i+1:]
				break
			}
		}
	}
	return file, line, true
}
