// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"

	"github.com/BOXFoundation/paircommit/crypto"
	"github.com/pkg/errors"
)

// HashVector pins PairCommitHash for one pair. Operands and digest are hex.
type HashVector struct {
	X1      string `json:"x1"`
	X2      string `json:"x2"`
	Digest  string `json:"digest"`
	Comment string `json:"comment,omitempty"`
}

// Check recomputes the digest and compares it with the recorded one.
func (hv *HashVector) Check() error {
	x1, err := hex.DecodeString(hv.X1)
	if err != nil {
		return errors.Wrap(err, "x1")
	}
	x2, err := hex.DecodeString(hv.X2)
	if err != nil {
		return errors.Wrap(err, "x2")
	}
	var want crypto.HashType
	if err := want.SetString(hv.Digest); err != nil {
		return errors.Wrap(err, "digest")
	}
	if got := crypto.PairCommitHash(x1, x2); got != want {
		return errors.Wrapf(ErrVectorMismatch, "digest %s, want %s", got, want)
	}
	return nil
}

// ScriptVector is one script run and its expected outcome, named as by
// ErrorName.
type ScriptVector struct {
	ScriptSig string   `json:"script_sig,omitempty"`
	Script    string   `json:"script"`
	Flags     []string `json:"flags"`
	Expect    string   `json:"expect"`
	Comment   string   `json:"comment,omitempty"`
}

// Item assembles the vector into a ValidateItem.
func (sv *ScriptVector) Item() (*ValidateItem, error) {
	flags, err := ParseScriptFlags(sv.Flags)
	if err != nil {
		return nil, err
	}
	scriptPubKey, err := ParseAsm(sv.Script)
	if err != nil {
		return nil, err
	}
	var scriptSig *Script
	if sv.ScriptSig != "" {
		if scriptSig, err = ParseAsm(sv.ScriptSig); err != nil {
			return nil, err
		}
	}
	return &ValidateItem{ScriptSig: scriptSig, ScriptPubKey: scriptPubKey, Flags: flags}, nil
}

// Check compares an execution result with the expected outcome.
func (sv *ScriptVector) Check(result error) error {
	if got := ErrorName(result); got != sv.Expect {
		return errors.Wrapf(ErrVectorMismatch, "got %s (%v), want %s", got, result, sv.Expect)
	}
	return nil
}

// Run executes the vector on its own engine.
func (sv *ScriptVector) Run() error {
	item, err := sv.Item()
	if err != nil {
		return err
	}
	return sv.Check(Validate(item.ScriptSig, item.ScriptPubKey, item.Flags))
}

// Vectors is a file of hash and script vectors.
type Vectors struct {
	Hash   []*HashVector   `json:"hash"`
	Script []*ScriptVector `json:"script"`
}

// ParseVectors decodes a JSON vector file.
func ParseVectors(data []byte) (*Vectors, error) {
	vectors := new(Vectors)
	if err := json.Unmarshal(data, vectors); err != nil {
		return nil, errors.Wrap(err, "decode vectors")
	}
	return vectors, nil
}

// LoadVectors reads and decodes a JSON vector file.
func LoadVectors(path string) (*Vectors, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseVectors(data)
}

// VectorFailure describes one vector that did not behave as recorded.
type VectorFailure struct {
	Kind  string // "hash" or "script"
	Index int
	Err   error
}

// Run checks every vector, running the script vectors through v, and
// returns the ones that failed.
func (vs *Vectors) Run(v *Validator) []*VectorFailure {
	var failures []*VectorFailure
	for i, hv := range vs.Hash {
		if err := hv.Check(); err != nil {
			failures = append(failures, &VectorFailure{Kind: "hash", Index: i, Err: err})
		}
	}

	items := make([]*ValidateItem, 0, len(vs.Script))
	indexes := make([]int, 0, len(vs.Script))
	for i, sv := range vs.Script {
		item, err := sv.Item()
		if err != nil {
			failures = append(failures, &VectorFailure{Kind: "script", Index: i, Err: err})
			continue
		}
		items = append(items, item)
		indexes = append(indexes, i)
	}
	for j, result := range v.Run(items) {
		i := indexes[j]
		if err := vs.Script[i].Check(result); err != nil {
			failures = append(failures, &VectorFailure{Kind: "script", Index: i, Err: err})
		}
	}
	return failures
}
