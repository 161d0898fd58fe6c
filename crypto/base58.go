// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"
)

// Base58Check decoding errors.
var (
	ErrInvalidBase58Checksum     = errors.New("base58check: checksum mismatch")
	ErrInvalidBase58StringLength = errors.New("base58check: input shorter than its 4-byte checksum")
)

// Base58CheckEncode appends the 4-byte double-sha256 checksum of in and
// encodes the result in base58.
func Base58CheckEncode(in []byte) string {
	b := make([]byte, 0, len(in)+4)
	b = append(b, in...)
	cksum := Checksum(in)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// Checksum return input bytes checksum.
func Checksum(input []byte) (cksum [4]byte) {
	h := DoubleHashH(input)
	copy(cksum[:], h[:4])
	return
}

// Base58CheckDecode reverses Base58CheckEncode.
func Base58CheckDecode(in string) ([]byte, error) {
	rawBytes := base58.Decode(in)
	if len(rawBytes) < 5 {
		return nil, ErrInvalidBase58StringLength
	}
	var cksum [4]byte
	sep := len(rawBytes) - 4
	content := make([]byte, sep)
	copy(cksum[:], rawBytes[sep:])
	copy(content, rawBytes[:sep])
	if Checksum(content) != cksum {
		return nil, ErrInvalidBase58Checksum
	}
	return content, nil
}
