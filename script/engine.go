// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"math/big"
	"time"

	"github.com/BOXFoundation/paircommit/crypto"
	"github.com/BOXFoundation/paircommit/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

var logger = log.NewLogger("script") // logger

// Execution limits.
const (
	MaxScriptSize        = 10000
	MaxScriptElementSize = 520
	MaxStackSize         = 1000
)

// Engine executes a sequence of scripts against one shared stack. Each
// script is parsed on its own, so no push can span two scripts.
type Engine struct {
	scripts   []*Script
	scriptIdx int
	flags     ScriptFlags
	sigHash   []byte
	stack     *Stack
	pc        int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSigHash sets the message digest checked by OP_CHECKSIG.
func WithSigHash(sigHash []byte) EngineOption {
	return func(vm *Engine) {
		vm.sigHash = sigHash
	}
}

// NewEngine returns an engine ready to execute s under flags.
func NewEngine(s *Script, flags ScriptFlags, opts ...EngineOption) (*Engine, error) {
	return newEngine([]*Script{s}, flags, opts...)
}

func newEngine(scripts []*Script, flags ScriptFlags, opts ...EngineOption) (*Engine, error) {
	vm := &Engine{
		flags: flags,
		stack: newStack(),
	}
	for _, s := range scripts {
		if s == nil {
			s = NewScript()
		}
		if len(*s) > MaxScriptSize {
			return nil, errors.Wrapf(ErrScriptTooBig, "script size %d", len(*s))
		}
		vm.scripts = append(vm.scripts, s)
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm, nil
}

// Execute runs every script to completion in order. It succeeds if every
// opcode succeeds and the final stack passes the checks required by the
// flags.
func (vm *Engine) Execute() (err error) {
	defer func(start time.Time) {
		metricsEvalTimer.UpdateSince(start)
		metricsEvalCounter.Inc(1)
		if err != nil {
			metricsEvalFailCounter.Inc(1)
			vm.traceFailure(err)
		}
	}(time.Now())

	for ; vm.scriptIdx < len(vm.scripts); vm.scriptIdx, vm.pc = vm.scriptIdx+1, 0 {
		s := vm.scripts[vm.scriptIdx]
		for vm.pc < len(*s) {
			pc := vm.pc
			opCode, operand, newPc, err := s.parseNextOp(pc)
			if err != nil {
				return errors.Wrapf(err, "script %d: parse at offset %d", vm.scriptIdx, pc)
			}
			vm.pc = newPc

			if err := vm.execOp(opCode, operand); err != nil {
				return errors.Wrapf(err, "script %d: %s at offset %d", vm.scriptIdx, opCodeToName(opCode), pc)
			}
			if vm.stack.size() > MaxStackSize {
				return errors.Wrapf(ErrStackOverflow, "stack size %d", vm.stack.size())
			}
		}
	}

	return vm.checkFinalStack()
}

// Stack returns a copy of the current stack, bottom first.
func (vm *Engine) Stack() [][]byte {
	return vm.stack.elements()
}

func (vm *Engine) checkFinalStack() error {
	if err := vm.stack.validateTop(); err != nil {
		return err
	}
	if vm.flags.has(ScriptVerifyCleanStack) && vm.stack.size() != 1 {
		return errors.Wrapf(ErrCleanStack, "stack size %d", vm.stack.size())
	}
	return nil
}

func (vm *Engine) traceFailure(err error) {
	if logger.LogLevel() != "debug" {
		return
	}
	disasm := make([]string, len(vm.scripts))
	for i, s := range vm.scripts {
		disasm[i] = s.Disasm()
	}
	logger.Debugf("scripts %q failed at script %d pc %d under %s: %v\n%s",
		disasm, vm.scriptIdx, vm.pc, vm.flags, err, spew.Sdump(vm.Stack()))
}

// Execute an operation
func (vm *Engine) execOp(opCode OpCode, pushData Operand) error {
	stack := vm.stack

	// Push value
	if opCode <= OPPUSHDATA4 {
		if len(pushData) > MaxScriptElementSize {
			return errors.Wrapf(ErrElementTooBig, "element size %d", len(pushData))
		}
		stack.push(pushData)
		return nil
	} else if opCode >= OP1 && opCode <= OP16 {
		op := big.NewInt(int64(opCode) - int64(OP1) + 1)
		stack.push(Operand(op.Bytes()))
		return nil
	}

	switch opCode {
	case OPNOP, OPCODESEPARATOR:

	case OPNOP1, OPCHECKLOCKTIMEVERIFY, OPCHECKSEQUENCEVERIFY, OPNOP4, OPNOP5,
		OPNOP6, OPNOP7, OPNOP8, OPNOP9, OPNOP10:
		return opUpgradableNop(vm.flags)

	case OPPAIRCOMMIT:
		return opPairCommit(stack, vm.flags)

	case OPVERIFY:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		if !stack.pop().bool() {
			return ErrScriptVerify
		}

	case OPRETURN:
		return ErrOpReturn

	case OPDROP:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		stack.pop()

	case OPDUP:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		stack.push(stack.topN(1))

	case OPSWAP:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		op2 := stack.pop()
		op1 := stack.pop()
		stack.push(op2)
		stack.push(op1)

	case OPSIZE:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		size := big.NewInt(int64(len(stack.topN(1))))
		stack.push(Operand(size.Bytes()))

	case OPADD, OPSUB:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		op1, op2 := big.NewInt(0), big.NewInt(0)
		op1.SetBytes(stack.topN(2))
		op2.SetBytes(stack.topN(1))
		if opCode == OPADD {
			op1.Add(op1, op2)
		} else {
			// operands are unsigned
			if op1.Cmp(op2) < 0 {
				return ErrInvalidStackOperation
			}
			op1.Sub(op1, op2)
		}
		if len(op1.Bytes()) > MaxScriptElementSize {
			return errors.Wrapf(ErrElementTooBig, "result size %d", len(op1.Bytes()))
		}
		stack.pop()
		stack.pop()
		stack.push(op1.Bytes())

	case OPEQUAL, OPEQUALVERIFY:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		op1 := stack.topN(2)
		op2 := stack.topN(1)
		isEqual := bytes.Equal(op1, op2)
		stack.pop()
		stack.pop()
		if isEqual {
			stack.push(operandTrue)
		} else {
			stack.push(operandFalse)
		}
		if opCode == OPEQUALVERIFY {
			if isEqual {
				stack.pop()
			} else {
				return ErrScriptEqualVerify
			}
		}

	case OPRIPEMD160, OPSHA256, OPHASH160, OPHASH256:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		data := stack.pop()
		var digest []byte
		switch opCode {
		case OPRIPEMD160:
			digest = crypto.Ripemd160(data)
		case OPSHA256:
			digest = crypto.Sha256(data)
		case OPHASH160:
			digest = crypto.Hash160(data)
		default:
			hash := crypto.DoubleHashH(data)
			digest = hash[:]
		}
		stack.push(Operand(digest))

	case OPCHECKSIG, OPCHECKSIGVERIFY:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		signature := stack.topN(2)
		pubKey := stack.topN(1)

		isVerified := verifySig(signature, pubKey, vm.sigHash)

		stack.pop()
		stack.pop()
		if isVerified {
			stack.push(operandTrue)
		} else {
			stack.push(operandFalse)
		}
		if opCode == OPCHECKSIGVERIFY {
			if isVerified {
				stack.pop()
			} else {
				return ErrScriptSignatureVerifyFail
			}
		}

	default:
		return ErrBadOpcode
	}
	return nil
}

// opUpgradableNop does nothing unless upgradable NOPs are discouraged.
func opUpgradableNop(flags ScriptFlags) error {
	if flags.has(ScriptDiscourageUpgradableNops) {
		return ErrDiscourageUpgradableNOPs
	}
	return nil
}

// verify if signature over sigHash is right
func verifySig(sigStr []byte, publicKeyStr []byte, sigHash []byte) bool {
	if len(sigHash) != crypto.HashSize {
		logger.Debugf("No signature hash to check against")
		return false
	}
	sig, err := crypto.SigFromBytes(sigStr)
	if err != nil {
		logger.Debugf("Deserialize signature failed")
		return false
	}
	publicKey, err := crypto.PublicKeyFromBytes(publicKeyStr)
	if err != nil {
		logger.Debugf("Deserialize public key failed")
		return false
	}
	return sig.VerifySignature(publicKey, sigHash)
}

// Evaluate executes s under flags.
func (s *Script) Evaluate(flags ScriptFlags, opts ...EngineOption) error {
	vm, err := NewEngine(s, flags, opts...)
	if err != nil {
		return err
	}
	return vm.Execute()
}

// Validate verifies an unlocking script against a locking script. The
// unlocking script runs first and leaves its stack to the locking script;
// the two are never parsed as one program. A nil or empty scriptSig runs
// scriptPubKey alone.
func Validate(scriptSig, scriptPubKey *Script, flags ScriptFlags, opts ...EngineOption) error {
	vm, err := newEngine(validationScripts(scriptSig, scriptPubKey), flags, opts...)
	if err != nil {
		return err
	}
	return vm.Execute()
}

func validationScripts(scriptSig, scriptPubKey *Script) []*Script {
	if scriptSig == nil || len(*scriptSig) == 0 {
		return []*Script{scriptPubKey}
	}
	return []*Script{scriptSig, scriptPubKey}
}
