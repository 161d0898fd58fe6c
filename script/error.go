// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/pkg/errors"
)

// error
var (

	// script.go
	ErrScriptBound             = errors.New("Program counter out of script bound")
	ErrNoEnoughDataOPPUSHDATA1 = errors.New("OP_PUSHDATA1 has not enough data")
	ErrNoEnoughDataOPPUSHDATA2 = errors.New("OP_PUSHDATA2 has not enough data")
	ErrNoEnoughDataOPPUSHDATA4 = errors.New("OP_PUSHDATA4 has not enough data")
	ErrInvalidAsm              = errors.New("Invalid script assembly")

	// engine.go
	ErrScriptTooBig              = errors.New("Script size exceeds limit")
	ErrElementTooBig             = errors.New("Element size exceeds limit")
	ErrStackOverflow             = errors.New("Stack size exceeds limit")
	ErrInvalidStackOperation     = errors.New("Invalid stack operation")
	ErrBadOpcode                 = errors.New("Bad opcode")
	ErrScriptVerify              = errors.New("Verification failure")
	ErrScriptEqualVerify         = errors.New("Equality verification failure")
	ErrScriptSignatureVerifyFail = errors.New("Signature verification failure")
	ErrOpReturn                  = errors.New("Encounter OP_RETURN")
	ErrDiscourageUpgradableNOPs  = errors.New("Upgradable NOP executed")

	// stack.go
	ErrFinalStackEmpty       = errors.New("Final stack empty")
	ErrFinalTopStackEleFalse = errors.New("Final top stack element false")
	ErrCleanStack            = errors.New("Stack must contain exactly one element after execution")

	// flags.go
	ErrUnknownFlag = errors.New("Unknown script flag")

	// vectors.go
	ErrVectorMismatch = errors.New("Vector mismatch")
)

var errorNames = map[error]string{
	ErrScriptBound:               "BAD_OPCODE",
	ErrNoEnoughDataOPPUSHDATA1:   "BAD_OPCODE",
	ErrNoEnoughDataOPPUSHDATA2:   "BAD_OPCODE",
	ErrNoEnoughDataOPPUSHDATA4:   "BAD_OPCODE",
	ErrBadOpcode:                 "BAD_OPCODE",
	ErrScriptTooBig:              "SCRIPT_SIZE",
	ErrElementTooBig:             "PUSH_SIZE",
	ErrStackOverflow:             "STACK_SIZE",
	ErrInvalidStackOperation:     "INVALID_STACK_OPERATION",
	ErrScriptVerify:              "VERIFY",
	ErrScriptEqualVerify:         "EQUALVERIFY",
	ErrScriptSignatureVerifyFail: "CHECKSIGVERIFY",
	ErrOpReturn:                  "OP_RETURN",
	ErrDiscourageUpgradableNOPs:  "DISCOURAGE_UPGRADABLE_NOPS",
	ErrFinalStackEmpty:           "EMPTY_STACK",
	ErrFinalTopStackEleFalse:     "EVAL_FALSE",
	ErrCleanStack:                "CLEANSTACK",
}

// ErrorName returns the short name used by test vectors for an execution
// result: OK for nil, UNKNOWN_ERROR for errors not raised by script
// execution.
func ErrorName(err error) string {
	if err == nil {
		return "OK"
	}
	if name, ok := errorNames[errors.Cause(err)]; ok {
		return name
	}
	return "UNKNOWN_ERROR"
}
