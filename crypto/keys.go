// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// PrivateKey is a secp256k1 private key.
type PrivateKey btcec.PrivateKey

// PublicKey is a secp256k1 public key.
type PublicKey btcec.PublicKey

// NewKeyPair generates a random key pair.
func NewKeyPair() (*PrivateKey, *PublicKey, error) {
	btcecPrivKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, nil, err
	}
	privKey := (*PrivateKey)(btcecPrivKey)
	return privKey, privKey.PubKey(), nil
}

// KeyPairFromBytes restores a key pair from a 32-byte private key.
func KeyPairFromBytes(privKeyBytes []byte) (*PrivateKey, *PublicKey, error) {
	if len(privKeyBytes) != btcec.PrivKeyBytesLen {
		return nil, nil, fmt.Errorf("Private key must be be exactly %d bytes (%d)", btcec.PrivKeyBytesLen, len(privKeyBytes))
	}
	privKey, pubKey := btcec.PrivKeyFromBytes(privKeyBytes)
	return (*PrivateKey)(privKey), (*PublicKey)(pubKey), nil
}

// Serialize returns the 32-byte private key.
func (p *PrivateKey) Serialize() []byte {
	return (*btcec.PrivateKey)(p).Serialize()
}

// PubKey returns the public key of p.
func (p *PrivateKey) PubKey() *PublicKey {
	return (*PublicKey)((*btcec.PrivateKey)(p).PubKey())
}

// Erase zeroes the private key in memory.
func (p *PrivateKey) Erase() {
	(*btcec.PrivateKey)(p).Zero()
}

// PublicKeyFromBytes parses a compressed or uncompressed public key.
func PublicKeyFromBytes(pubKeyBytes []byte) (*PublicKey, error) {
	pubKey, err := btcec.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	return (*PublicKey)(pubKey), nil
}

// Serialize returns the 33-byte compressed encoding.
func (p *PublicKey) Serialize() []byte {
	return (*btcec.PublicKey)(p).SerializeCompressed()
}
