// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Signature is an ECDSA signature over secp256k1.
type Signature ecdsa.Signature

// Sign signs a 32-byte message hash.
func Sign(privKey *PrivateKey, messageHash []byte) (*Signature, error) {
	if len(messageHash) != HashSize {
		return nil, fmt.Errorf("hash must be be exactly %d bytes (%d)", HashSize, len(messageHash))
	}
	sig := ecdsa.Sign((*btcec.PrivateKey)(privKey), messageHash)
	return (*Signature)(sig), nil
}

// SigFromBytes parses a DER encoded signature.
func SigFromBytes(sigBytes []byte) (*Signature, error) {
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return nil, err
	}
	return (*Signature)(sig), nil
}

// Serialize returns the DER encoding of sig.
func (sig *Signature) Serialize() []byte {
	return (*ecdsa.Signature)(sig).Serialize()
}

// VerifySignature reports whether sig signs messageHash under pubKey.
func (sig *Signature) VerifySignature(pubKey *PublicKey, messageHash []byte) bool {
	return (*ecdsa.Signature)(sig).Verify(messageHash, (*btcec.PublicKey)(pubKey))
}
