// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestSignMessage(t *testing.T) {
	privKey, pubKey, err := NewKeyPair()
	ensure.Nil(t, err)

	messageHash := PairCommitHash([]byte("Hello "), []byte("World!"))
	sig, err := Sign(privKey, messageHash[:])
	ensure.Nil(t, err)
	ensure.True(t, sig.VerifySignature(pubKey, messageHash[:]))

	// DER round trip
	parsed, err := SigFromBytes(sig.Serialize())
	ensure.Nil(t, err)
	ensure.True(t, parsed.VerifySignature(pubKey, messageHash[:]))

	// another public key
	_, pubKey2, err := NewKeyPair()
	ensure.Nil(t, err)
	ensure.False(t, sig.VerifySignature(pubKey2, messageHash[:]))

	// another message
	other := PairCommitHash([]byte("World!"), []byte("Hello "))
	ensure.False(t, sig.VerifySignature(pubKey, other[:]))

	_, err = Sign(privKey, []byte("short"))
	ensure.NotNil(t, err)
}

func TestKeyPairFromBytes(t *testing.T) {
	privKey, pubKey, err := NewKeyPair()
	ensure.Nil(t, err)

	privKey2, pubKey2, err := KeyPairFromBytes(privKey.Serialize())
	ensure.Nil(t, err)
	ensure.DeepEqual(t, privKey2.Serialize(), privKey.Serialize())
	ensure.DeepEqual(t, pubKey2.Serialize(), pubKey.Serialize())

	parsed, err := PublicKeyFromBytes(pubKey.Serialize())
	ensure.Nil(t, err)
	ensure.DeepEqual(t, parsed.Serialize(), pubKey.Serialize())

	_, _, err = KeyPairFromBytes([]byte{1, 2, 3})
	ensure.NotNil(t, err)
	_, err = PublicKeyFromBytes([]byte{1, 2, 3})
	ensure.NotNil(t, err)

	privKey.Erase()
	ensure.DeepEqual(t, privKey.Serialize(), make([]byte, 32))
}
