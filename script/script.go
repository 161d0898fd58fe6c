// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/BOXFoundation/paircommit/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

const (
	p2PKHScriptLen = 25
)

// PayToPubKeyHashScript creates a script to lock an output to the specified public key hash.
func PayToPubKeyHashScript(pubKeyHash []byte) *Script {
	return NewScript().AddOpCode(OPDUP).AddOpCode(OPHASH160).AddOperand(pubKeyHash).AddOpCode(OPEQUALVERIFY).AddOpCode(OPCHECKSIG)
}

// SignatureScript creates a script to unlock a p2pkh output.
func SignatureScript(sig *crypto.Signature, pubKey []byte) *Script {
	return NewScript().AddOperand(sig.Serialize()).AddOperand(pubKey)
}

// PairCommitLockScript locks to the commitment of a pair:
//
//	OP_PAIRCOMMIT <digest> OP_EQUAL
func PairCommitLockScript(digest crypto.HashType) *Script {
	return NewScript().AddOpCode(OPPAIRCOMMIT).AddOperand(digest[:]).AddOpCode(OPEQUAL)
}

// PairCommitUnlockScript reveals the pair that unlocks a PairCommitLockScript.
func PairCommitUnlockScript(x1, x2 []byte) *Script {
	return NewScript().AddOperand(x1).AddOperand(x2)
}

// Script represents scripts
type Script []byte

// NewScript returns an empty script
func NewScript() *Script {
	emptyBytes := make([]byte, 0, p2PKHScriptLen)
	return (*Script)(&emptyBytes)
}

// NewScriptFromBytes returns a script from byte slice
func NewScriptFromBytes(scriptBytes []byte) *Script {
	script := Script(scriptBytes)
	return &script
}

// NewScriptFromHex decodes a hex encoded script.
func NewScriptFromHex(str string) (*Script, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(str), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "decode script hex")
	}
	return NewScriptFromBytes(b), nil
}

// AddOpCode adds an opcode to the script
func (s *Script) AddOpCode(opCode OpCode) *Script {
	*s = append(*s, byte(opCode))
	return s
}

// AddOperand adds an operand to the script
func (s *Script) AddOperand(operand []byte) *Script {
	dataLen := len(operand)

	if dataLen < int(OPPUSHDATA1) {
		*s = append(*s, byte(dataLen))
	} else if dataLen <= 0xff {
		*s = append(*s, byte(OPPUSHDATA1), byte(dataLen))
	} else if dataLen <= 0xffff {
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		*s = append(*s, byte(OPPUSHDATA2))
		*s = append(*s, buf...)
	} else {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		*s = append(*s, byte(OPPUSHDATA4))
		*s = append(*s, buf...)
	}

	// Append the actual operand
	*s = append(*s, operand...)
	return s
}

// AddScript appends a script to the script
func (s *Script) AddScript(script *Script) *Script {
	*s = append(*s, (*script)...)
	return s
}

// Hex returns the hex encoding of the raw script.
func (s *Script) Hex() string {
	return hex.EncodeToString(*s)
}

// Get the next opcode & operand. Operand only applies to data push opcodes. Also return incremented pc.
func (s *Script) parseNextOp(pc int) (OpCode, Operand, int /* pc */, error) {
	script := *s
	scriptLen := len(script)
	if pc >= scriptLen {
		return 0, nil, pc, ErrScriptBound
	}

	opCode := OpCode(script[pc])
	pc++

	if opCode > OPPUSHDATA4 {
		return opCode, nil, pc, nil
	}

	var operandSize int
	if opCode < OPPUSHDATA1 {
		// opcode itself encodes operand size
		operandSize = int(opCode)
	} else if opCode == OPPUSHDATA1 {
		if scriptLen-pc < 1 {
			return opCode, nil, pc, ErrNoEnoughDataOPPUSHDATA1
		}
		operandSize = int(script[pc])
		pc++
	} else if opCode == OPPUSHDATA2 {
		if scriptLen-pc < 2 {
			return opCode, nil, pc, ErrNoEnoughDataOPPUSHDATA2
		}
		operandSize = int(binary.LittleEndian.Uint16(script[pc : pc+2]))
		pc += 2
	} else if opCode == OPPUSHDATA4 {
		if scriptLen-pc < 4 {
			return opCode, nil, pc, ErrNoEnoughDataOPPUSHDATA4
		}
		size := binary.LittleEndian.Uint32(script[pc : pc+4])
		pc += 4
		if uint64(size) > uint64(scriptLen-pc) {
			return opCode, nil, pc, ErrScriptBound
		}
		operandSize = int(size)
	}

	if scriptLen-pc < operandSize {
		return opCode, nil, pc, ErrScriptBound
	}
	// Read operand; never nil for push opcodes, so OP_0 yields an empty operand
	operand := Operand(script[pc : pc+operandSize : pc+operandSize])
	pc += operandSize
	return opCode, operand, pc, nil
}

// parses the entire script and returns operator/operand sequences.
// The returned result will contain the parsed script up to the failure point, with the last element being the error
func (s *Script) parse() []interface{} {
	var elements []interface{}

	for pc := 0; pc < len(*s); {
		opCode, operand, newPc, err := s.parseNextOp(pc)
		if err != nil {
			elements = append(elements, err)
			return elements
		}
		if opCode == OP0 {
			elements = append(elements, opCode)
		} else if operand != nil {
			elements = append(elements, operand)
		} else {
			elements = append(elements, opCode)
		}
		pc = newPc
	}

	return elements
}

// Disasm disassembles script in human readable format. If the script fails to parse, the returned string will
// contain the disassembled script up to the failure point, appended by the string '[Error: error info]'
func (s *Script) Disasm() string {
	var str []string

	elements := s.parse()
	for _, e := range elements {
		switch v := e.(type) {
		case Operand:
			str = append(str, hex.EncodeToString(v))
		case OpCode:
			str = append(str, opCodeToName(v))
		case error:
			str = append(str, "[Error: "+v.Error()+"]")
		default:
			return "Disasmbler encounters unexpected type"
		}
	}

	return strings.Join(str, " ")
}

// IsPushOnly returns true if the script only pushes data.
func (s *Script) IsPushOnly() bool {
	for _, e := range s.parse() {
		switch v := e.(type) {
		case error:
			return false
		case OpCode:
			if v > OP16 || v == OPRESERVED {
				return false
			}
		}
	}
	return true
}

// IsPayToPubKeyHash returns if the script is p2pkh
func (s *Script) IsPayToPubKeyHash() bool {
	if len(*s) != p2PKHScriptLen {
		return false
	}
	ss := *s
	return ss[0] == byte(OPDUP) && ss[1] == byte(OPHASH160) && ss[2] == ripemd160.Size &&
		ss[23] == byte(OPEQUALVERIFY) && ss[24] == byte(OPCHECKSIG)
}

// IsPairCommitLock returns if the script is a PairCommitLockScript.
func (s *Script) IsPairCommitLock() bool {
	ss := *s
	return len(ss) == 3+crypto.HashSize && ss[0] == byte(OPPAIRCOMMIT) &&
		ss[1] == crypto.HashSize && ss[len(ss)-1] == byte(OPEQUAL)
}

// ParseAsm assembles a script from its textual form. Tokens are separated
// by whitespace and may be:
//
//	an opcode name, with or without the OP_ prefix (ADD, OP_ADD, 1, OP_16)
//	hex data, pushed as a single element; a 0x prefix forces hex (0x10)
//	'quoted text', pushed as its bytes; quotes may enclose spaces
//
// Names win over hex, so 10 means OP_10 while 0x10 pushes the byte 0x10.
func ParseAsm(asm string) (*Script, error) {
	tokens, err := tokenizeAsm(asm)
	if err != nil {
		return nil, err
	}
	s := NewScript()
	for _, tok := range tokens {
		if tok.quoted {
			s.AddOperand([]byte(tok.text))
			continue
		}
		if !strings.HasPrefix(tok.text, "0x") {
			if op, ok := OpCodeByName(tok.text); ok {
				s.AddOpCode(op)
				continue
			}
		}
		data, err := hex.DecodeString(strings.TrimPrefix(tok.text, "0x"))
		if err != nil || len(data) == 0 {
			return nil, errors.Wrapf(ErrInvalidAsm, "token %q", tok.text)
		}
		s.AddOperand(data)
	}
	return s, nil
}

type asmToken struct {
	text   string
	quoted bool
}

func tokenizeAsm(asm string) ([]asmToken, error) {
	var tokens []asmToken
	for i := 0; i < len(asm); {
		switch c := asm[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\'':
			end := strings.IndexByte(asm[i+1:], '\'')
			if end < 0 {
				return nil, errors.Wrapf(ErrInvalidAsm, "unterminated quote at %d", i)
			}
			tokens = append(tokens, asmToken{text: asm[i+1 : i+1+end], quoted: true})
			i += end + 2
		default:
			j := i
			for j < len(asm) && !strings.ContainsRune(" \t\n\r'", rune(asm[j])) {
				j++
			}
			tokens = append(tokens, asmToken{text: asm[i:j]})
			i = j
		}
	}
	return tokens, nil
}
