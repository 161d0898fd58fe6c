// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"testing"

	"github.com/BOXFoundation/paircommit/crypto"
	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

const helloWorldCommit = "7cf78130d13d08b2c6c6b2d92ef1f2dd721ad709aa81371253a6f1b644966f26"

func stackOf(items ...[]byte) *Stack {
	s := newStack()
	for _, item := range items {
		s.push(item)
	}
	return s
}

func TestOpPairCommit(t *testing.T) {
	s := stackOf([]byte("Hello "), []byte("World!"))
	ensure.Nil(t, opPairCommit(s, ScriptVerifyPairCommit))
	ensure.DeepEqual(t, s.size(), 1)
	ensure.DeepEqual(t, hex.EncodeToString(s.topN(1)), helloWorldCommit)
}

func TestOpPairCommitOrder(t *testing.T) {
	// x2 is the top element
	s := stackOf([]byte("World!"), []byte("Hello "))
	ensure.Nil(t, opPairCommit(s, ScriptVerifyPairCommit))
	ensure.DeepEqual(t, hex.EncodeToString(s.topN(1)),
		"95e419b9a23cfbadfdaf67f62a690246c1063646a81b6ac6d7491dd4ef830cca")
}

func TestOpPairCommitKeepsLowerElements(t *testing.T) {
	s := stackOf([]byte{0xaa}, []byte{0xbb}, []byte{0x01}, []byte{0x02})
	ensure.Nil(t, opPairCommit(s, ScriptVerifyPairCommit))
	digest := crypto.PairCommitHash([]byte{0x01}, []byte{0x02})
	ensure.DeepEqual(t, s.elements(), [][]byte{{0xaa}, {0xbb}, digest[:]})
}

func TestOpPairCommitUnderflow(t *testing.T) {
	tests := []struct {
		name  string
		stack *Stack
	}{
		{"empty", stackOf()},
		{"one element", stackOf([]byte("lonely"))},
		{"one empty element", stackOf([]byte{})},
	}
	for _, tc := range tests {
		before := tc.stack.elements()
		err := opPairCommit(tc.stack, ScriptVerifyPairCommit|ScriptDiscourageUpgradableNops)
		ensure.DeepEqual(t, errors.Cause(err), ErrInvalidStackOperation)
		// stack untouched
		ensure.DeepEqual(t, tc.stack.elements(), before)
	}
}

func TestOpPairCommitInactive(t *testing.T) {
	s := stackOf([]byte("Hello "), []byte("World!"))
	ensure.Nil(t, opPairCommit(s, ScriptNoFlags))
	ensure.DeepEqual(t, s.elements(), [][]byte{[]byte("Hello "), []byte("World!")})

	// underflow is not checked while inactive
	ensure.Nil(t, opPairCommit(stackOf(), ScriptNoFlags))

	err := opPairCommit(s, ScriptDiscourageUpgradableNops)
	ensure.DeepEqual(t, errors.Cause(err), ErrDiscourageUpgradableNOPs)
	ensure.DeepEqual(t, s.size(), 2)
}

func TestOpPairCommitLargeOperands(t *testing.T) {
	big := make([]byte, MaxScriptElementSize)
	for i := range big {
		big[i] = 0x42
	}
	s := stackOf([]byte{}, big)
	ensure.Nil(t, opPairCommit(s, ScriptVerifyPairCommit))
	ensure.DeepEqual(t, hex.EncodeToString(s.topN(1)),
		"c1fd9753bea9af000af880514971d47e0dac74fb4ce0805c008a2dce4fc769b1")
}

func TestPairCommitScripts(t *testing.T) {
	var digest crypto.HashType
	ensure.Nil(t, digest.SetString(helloWorldCommit))
	lock := PairCommitLockScript(digest)
	ensure.True(t, lock.IsPairCommitLock())
	ensure.DeepEqual(t, lock.Disasm(), "OP_PAIRCOMMIT "+helloWorldCommit+" OP_EQUAL")

	unlock := PairCommitUnlockScript([]byte("Hello "), []byte("World!"))
	ensure.True(t, unlock.IsPushOnly())
	ensure.False(t, unlock.IsPairCommitLock())

	flags := ScriptVerifyPairCommit | ScriptVerifyCleanStack
	ensure.Nil(t, Validate(unlock, lock, flags))

	wrong := PairCommitUnlockScript([]byte("World!"), []byte("Hello "))
	ensure.DeepEqual(t, errors.Cause(Validate(wrong, lock, flags)), ErrFinalTopStackEleFalse)

	// an inactive opcode leaves both operands in place and EQUAL sees World!
	ensure.DeepEqual(t, errors.Cause(Validate(unlock, lock, ScriptNoFlags)), ErrFinalTopStackEleFalse)
	ensure.DeepEqual(t, errors.Cause(Validate(unlock, lock, ScriptDiscourageUpgradableNops)),
		ErrDiscourageUpgradableNOPs)
}

func BenchmarkOpPairCommit(b *testing.B) {
	x1, x2 := make([]byte, 32), make([]byte, 32)
	s := newStack()
	for i := 0; i < b.N; i++ {
		s.push(x1)
		s.push(x2)
		if err := opPairCommit(s, ScriptVerifyPairCommit); err != nil {
			b.Fatal(err)
		}
		s.pop()
	}
}
