// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"bytes"
	"encoding/binary"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/facebookgo/ensure"
)

const (
	helloWorldDigest = "7cf78130d13d08b2c6c6b2d92ef1f2dd721ad709aa81371253a6f1b644966f26"
	worldHelloDigest = "95e419b9a23cfbadfdaf67f62a690246c1063646a81b6ac6d7491dd4ef830cca"
	splitDigest      = "0fbe7fb7c3ad592c5e879517757ffc6a1eab8a94eb8794cd82eb0dfc74e4bfec"
)

func TestPairCommitTag(t *testing.T) {
	// SHA256("PairCommit")
	expect := []byte{
		0x08, 0x20, 0x7e, 0x7c, 0x41, 0xc4, 0x78, 0x33,
		0xaa, 0x39, 0x74, 0x77, 0xdf, 0x01, 0xc9, 0xde,
		0xb0, 0x26, 0xa8, 0xfe, 0x8d, 0x9b, 0xe5, 0xa9,
		0x8f, 0x4a, 0x36, 0x4f, 0x39, 0x19, 0x93, 0xc9,
	}
	ensure.DeepEqual(t, PairCommitTag[:], expect)
	ensure.DeepEqual(t, PairCommitTag[:], Sha256([]byte("PairCommit")))
}

func TestPairCommitHash(t *testing.T) {
	tests := []struct {
		name   string
		x1, x2 []byte
		want   string
	}{
		{"hello world", []byte("Hello "), []byte("World!"), helloWorldDigest},
		{"swapped", []byte("World!"), []byte("Hello "), worldHelloDigest},
		{"moved split point", []byte("Hello"), []byte(" World!"), splitDigest},
		{"both empty", []byte{}, []byte{}, "4a9eb31bc6573906336dd486295c1720aa513dbc7d866bc4367c0de08921829e"},
		{"nil operands", nil, nil, "4a9eb31bc6573906336dd486295c1720aa513dbc7d866bc4367c0de08921829e"},
		{"empty and max element", []byte{}, bytes.Repeat([]byte{0x42}, 520),
			"c1fd9753bea9af000af880514971d47e0dac74fb4ce0805c008a2dce4fc769b1"},
		{"3-byte length prefix", make([]byte, 253), []byte{0x01},
			"66f8b4c8aac29a4f3b3da6201ba135c23a507ff8ebbc18b81b647575dfe00164"},
		{"single bytes", []byte{0x01}, []byte{0x02}, "7b755eeb15ba472552dd012a322190deec809545e8db397c17604fe23cc13f02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PairCommitHash(tt.x1, tt.x2)
			ensure.DeepEqual(t, got.String(), tt.want)
		})
	}
}

// The digest must match a preimage assembled by hand.
func TestPairCommitHashManualPreimage(t *testing.T) {
	x1 := []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x20}
	x2 := []byte{0x57, 0x6f, 0x72, 0x6c, 0x64, 0x21}

	var preimage []byte
	preimage = append(preimage, PairCommitTag[:]...)
	preimage = append(preimage, PairCommitTag[:]...)
	preimage = append(preimage, 0x06)
	preimage = append(preimage, x1...)
	preimage = append(preimage, 0x06)
	preimage = append(preimage, x2...)

	got := PairCommitHash(x1, x2)
	ensure.DeepEqual(t, got[:], Sha256(preimage))
}

func TestPairCommitHashEmptyOperand(t *testing.T) {
	x2 := bytes.Repeat([]byte{0xab}, 520)

	var preimage []byte
	preimage = append(preimage, PairCommitTag[:]...)
	preimage = append(preimage, PairCommitTag[:]...)
	preimage = append(preimage, 0x00)
	preimage = append(preimage, 0xfd, 0x08, 0x02)
	preimage = append(preimage, x2...)

	got := PairCommitHash(nil, x2)
	ensure.DeepEqual(t, got[:], Sha256(preimage))
}

func TestPairCommitHashMatchesTaggedHash(t *testing.T) {
	pairs := [][2][]byte{
		{[]byte("Hello "), []byte("World!")},
		{nil, bytes.Repeat([]byte{1}, 300)},
		{bytes.Repeat([]byte{2}, 65535), []byte{3}},
		{bytes.Repeat([]byte{4}, 65536), nil},
	}
	for _, p := range pairs {
		var f1, f2 bytes.Buffer
		writePairOperand(&f1, p[0])
		writePairOperand(&f2, p[1])
		ensure.DeepEqual(t, f1.Len(), pairOperandSize(p[0]))
		ensure.DeepEqual(t, f2.Len(), pairOperandSize(p[1]))

		want := chainhash.TaggedHash([]byte(PairCommitTagName), f1.Bytes(), f2.Bytes())
		ensure.DeepEqual(t, PairCommitHash(p[0], p[1]), HashType(*want))
		ensure.DeepEqual(t, TaggedHash([]byte(PairCommitTagName), f1.Bytes(), f2.Bytes()), HashType(*want))
	}
}

func TestPairCommitHashRejectsFixedWidthLengths(t *testing.T) {
	// 4-byte little-endian lengths are not the framing in use
	x1, x2 := []byte("Hello "), []byte("World!")
	var buf bytes.Buffer
	buf.Write(PairCommitTag[:])
	buf.Write(PairCommitTag[:])
	for _, x := range [][]byte{x1, x2} {
		var l [4]byte
		binary.LittleEndian.PutUint32(l[:], uint32(len(x)))
		buf.Write(l[:])
		buf.Write(x)
	}
	var fixed HashType
	ensure.Nil(t, fixed.SetBytes(Sha256Multi(buf.Bytes())))
	ensure.DeepEqual(t, fixed.String(), "9e466d9676a7a4ff2228605ee287d2857f518716d4eb35717476633b9488600e")

	digest := PairCommitHash(x1, x2)
	ensure.False(t, digest.IsEqual(&fixed))
	ensure.DeepEqual(t, digest.String(), helloWorldDigest)
}

func TestWritePairOperand(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		prefix []byte
	}{
		{"empty", 0, []byte{0x00}},
		{"one byte prefix", 252, []byte{0xfc}},
		{"marker fd", 253, []byte{0xfd, 0xfd, 0x00}},
		{"max uint16", 0xffff, []byte{0xfd, 0xff, 0xff}},
		{"marker fe", 0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			operand := make([]byte, tt.size)
			writePairOperand(&buf, operand)
			ensure.DeepEqual(t, buf.Bytes()[:len(tt.prefix)], tt.prefix)
			ensure.DeepEqual(t, buf.Len(), len(tt.prefix)+tt.size)
		})
	}
}

func TestPairCommitHashProperties(t *testing.T) {
	x1, x2 := []byte("Hello "), []byte("World!")

	// determinism
	first := PairCommitHash(x1, x2)
	for i := 0; i < 10; i++ {
		ensure.DeepEqual(t, PairCommitHash(x1, x2), first)
	}

	// order matters
	ensure.NotDeepEqual(t, PairCommitHash(x2, x1), first)

	// same concatenation, different split
	ensure.NotDeepEqual(t, PairCommitHash([]byte("Hello"), []byte(" World!")), first)
	ensure.NotDeepEqual(t, PairCommitHash(append(x1, x2...), nil), first)
	ensure.NotDeepEqual(t, PairCommitHash(nil, append(x1, x2...)), first)

	// inputs are not modified
	ensure.DeepEqual(t, string(x1), "Hello ")
	ensure.DeepEqual(t, string(x2), "World!")
}

func TestPairCommitHashConcurrent(t *testing.T) {
	want := PairCommitHash([]byte("Hello "), []byte("World!"))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if PairCommitHash([]byte("Hello "), []byte("World!")) != want {
					t.Error("digest changed under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPairCommitHash(b *testing.B) {
	x1 := bytes.Repeat([]byte{0x11}, 520)
	x2 := bytes.Repeat([]byte{0x22}, 520)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			PairCommitHash(x1, x2)
		}
	})
}
