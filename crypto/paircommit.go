// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"bytes"

	"github.com/btcsuite/btcd/wire"
	"github.com/minio/sha256-simd"
)

// PairCommitHash commits to the ordered pair (x1, x2):
//
//	SHA256(tag || tag || CompactSize(len(x1)) || x1 || CompactSize(len(x2)) || x2)
//
// where tag is PairCommitTag. The result depends on operand order, and the
// length prefixes keep (x1, x2) pairs with the same concatenation apart.
func PairCommitHash(x1, x2 []byte) HashType {
	var buf bytes.Buffer
	buf.Grow(2*HashSize + pairOperandSize(x1) + pairOperandSize(x2))
	buf.Write(PairCommitTag[:])
	buf.Write(PairCommitTag[:])
	writePairOperand(&buf, x1)
	writePairOperand(&buf, x2)
	return HashType(sha256.Sum256(buf.Bytes()))
}

// writePairOperand appends the framing of one operand to the preimage.
// Changing the operand framing only touches this function and pairOperandSize.
func writePairOperand(buf *bytes.Buffer, operand []byte) {
	// writes to a bytes.Buffer cannot fail
	_ = wire.WriteVarBytes(buf, 0, operand)
}

func pairOperandSize(operand []byte) int {
	return wire.VarIntSerializeSize(uint64(len(operand))) + len(operand)
}
