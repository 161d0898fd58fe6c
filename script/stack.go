// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// Operand represents stack operand when interpretting script
type Operand []byte

var (
	operandFalse = Operand([]byte{0})
	operandTrue  = Operand([]byte{1})
)

// bool interprets the operand as an unsigned big-endian integer; zero,
// including the empty operand, is false.
func (o Operand) bool() bool {
	return new(big.Int).SetBytes(o).Sign() != 0
}

// Stack is used when interpretting script
type Stack struct {
	stk []Operand
}

func (s *Stack) size() int {
	return len(s.stk)
}

func (s *Stack) empty() bool {
	return len(s.stk) == 0
}

func (s *Stack) push(o Operand) {
	s.stk = append(s.stk, o)
}

func (s *Stack) pop() Operand {
	stackLen := len(s.stk)
	if stackLen == 0 {
		return nil
	}

	o := s.stk[stackLen-1]
	s.stk = s.stk[:stackLen-1]
	return o
}

// topN returns the top n-th element, n starts from 1.
func (s *Stack) topN(n int) Operand {
	stackLen := len(s.stk)
	if n <= 0 || n > stackLen {
		return nil
	}
	return s.stk[stackLen-n]
}

// validateTop succeeds if top stack item is true
func (s *Stack) validateTop() error {
	if s.empty() {
		return ErrFinalStackEmpty
	}
	if !s.topN(1).bool() {
		return ErrFinalTopStackEleFalse
	}
	return nil
}

// elements returns copies of the stack items, bottom first.
func (s *Stack) elements() [][]byte {
	items := make([][]byte, len(s.stk))
	for i, o := range s.stk {
		items[i] = append([]byte{}, o...)
	}
	return items
}

// String renders the stack bottom first, one hex item per slot.
func (s *Stack) String() string {
	items := make([]string, len(s.stk))
	for i, o := range s.stk {
		items[i] = "[" + hex.EncodeToString(o) + "]"
	}
	return strings.Join(items, " ")
}

// NewStack creates a clean stack
func newStack() *Stack {
	stk := make([]Operand, 0)
	return &Stack{stk}
}
