// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"strings"

	"github.com/pkg/errors"
)

// ScriptFlags is a bitmask defining additional operations or tests that
// will be done when executing a script.
type ScriptFlags uint32

const (
	// ScriptVerifyPairCommit activates OP_PAIRCOMMIT. Without it the opcode
	// is an upgradable NOP.
	ScriptVerifyPairCommit ScriptFlags = 1 << iota

	// ScriptDiscourageUpgradableNops makes any upgradable NOP, including an
	// inactive OP_PAIRCOMMIT, fail the script.
	ScriptDiscourageUpgradableNops

	// ScriptVerifyCleanStack requires exactly one element on the stack
	// after execution.
	ScriptVerifyCleanStack
)

// Flag sets.
const (
	ScriptNoFlags       ScriptFlags = 0
	StandardVerifyFlags             = ScriptVerifyPairCommit |
		ScriptDiscourageUpgradableNops |
		ScriptVerifyCleanStack
)

var flagNames = []struct {
	flag ScriptFlags
	name string
}{
	{ScriptVerifyPairCommit, "PAIRCOMMIT"},
	{ScriptDiscourageUpgradableNops, "DISCOURAGE_UPGRADABLE_NOPS"},
	{ScriptVerifyCleanStack, "CLEANSTACK"},
}

func (f ScriptFlags) has(flag ScriptFlags) bool {
	return f&flag == flag
}

// String returns the comma separated flag names, or NONE.
func (f ScriptFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, ",")
}

// ParseScriptFlags converts flag names into a ScriptFlags mask. Names are
// case-insensitive, may be comma separated, and NONE or empty names are
// ignored.
func ParseScriptFlags(names []string) (ScriptFlags, error) {
	var flags ScriptFlags
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			name = strings.ToUpper(strings.TrimSpace(name))
			if name == "" || name == "NONE" {
				continue
			}
			flag, ok := flagByName(name)
			if !ok {
				return 0, errors.Wrapf(ErrUnknownFlag, "%q", name)
			}
			flags |= flag
		}
	}
	return flags, nil
}

func flagByName(name string) (ScriptFlags, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return 0, false
}
