// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/minio/sha256-simd"
)

// Domain tags. Each one separates a family of commitments from every other
// use of SHA256.
const (
	// PairCommitTagName tags the two-operand commitment of OP_PAIRCOMMIT.
	PairCommitTagName = "PairCommit"
)

// PairCommitTag is SHA256(PairCommitTagName). It is computed once and must
// never be modified.
var PairCommitTag = tagHash(PairCommitTagName)

func tagHash(name string) HashType {
	return HashType(sha256.Sum256([]byte(name)))
}

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || msgs...).
func TaggedHash(tag []byte, msgs ...[]byte) HashType {
	t := HashType(sha256.Sum256(tag))
	hasher := sha256.New()
	hasher.Write(t[:])
	hasher.Write(t[:])
	for _, msg := range msgs {
		hasher.Write(msg)
	}
	var hash HashType
	copy(hash[:], hasher.Sum(nil))
	return hash
}
