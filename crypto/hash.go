// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

const (
	// HashSize is length of digest
	HashSize = 32
)

// HashType is a 32-byte digest in its natural byte order, which is also the
// order it takes on a script stack.
type HashType [HashSize]byte

// String returns the hexadecimal encoding of the digest.
func (hash HashType) String() string {
	return hex.EncodeToString(hash[:])
}

// GetBytes returns a copy of the digest as a byte slice.
func (hash *HashType) GetBytes() []byte {
	b := make([]byte, HashSize)
	copy(b, hash[:])
	return b
}

// IsEqual returns true if target is the same as hash.
func (hash *HashType) IsEqual(target *HashType) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// SetBytes convert type []byte to HashType
func (hash *HashType) SetBytes(hashBytes []byte) error {
	if len(hashBytes) != HashSize {
		return fmt.Errorf("Incorrect hash length : %v", hashBytes)
	}
	copy(hash[:], hashBytes)
	return nil
}

// SetString decodes a hex string into hash.
func (hash *HashType) SetString(str string) error {
	hashBytes, err := hex.DecodeString(str)
	if err != nil {
		return err
	}
	return hash.SetBytes(hashBytes)
}

// Ripemd160 calculates the RIPEMD160 digest of buf
func Ripemd160(buf []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Sha256 calculates the sha256 digest of buf
func Sha256(buf []byte) []byte {
	digest := sha256.Sum256(buf)
	return digest[:]
}

// Sha256Multi calculates the sha256 digest of the concatenation of data.
func Sha256Multi(data ...[]byte) []byte {
	hasher := sha256.New()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// Hash160 calculates ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return Ripemd160(Sha256(buf))
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a hash.
func DoubleHashH(b []byte) HashType {
	first := sha256.Sum256(b)
	return HashType(sha256.Sum256(first[:]))
}
