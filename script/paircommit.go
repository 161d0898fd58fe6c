// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/BOXFoundation/paircommit/crypto"
)

// opPairCommit executes OP_PAIRCOMMIT.
//
//	before: ... x1 x2
//	after:  ... PairCommitHash(x1, x2)
//
// Without ScriptVerifyPairCommit the opcode is an upgradable NOP. On error
// the stack is left untouched.
func opPairCommit(stack *Stack, flags ScriptFlags) error {
	if !flags.has(ScriptVerifyPairCommit) {
		return opUpgradableNop(flags)
	}
	if stack.size() < 2 {
		return ErrInvalidStackOperation
	}
	x2 := stack.pop()
	x1 := stack.pop()
	digest := crypto.PairCommitHash(x1, x2)
	stack.push(Operand(digest[:]))
	metricsPairCommitMeter.Mark(1)
	return nil
}
