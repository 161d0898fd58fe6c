// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"

	"github.com/BOXFoundation/paircommit/crypto"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultExecCacheSize is the number of successful executions kept.
const DefaultExecCacheSize = 4096

// ExecCache remembers unlocking/locking script pairs that validated
// successfully under a given set of flags and signature hash. Failures are
// never cached.
type ExecCache struct {
	cache *lru.Cache
}

// NewExecCache creates a cache holding at most size entries.
func NewExecCache(size int) (*ExecCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ExecCache{cache: cache}, nil
}

// Exists reports whether the pair is known to validate under flags and sigHash.
func (c *ExecCache) Exists(scriptSig, scriptPubKey *Script, flags ScriptFlags, sigHash []byte) bool {
	if _, ok := c.cache.Get(execCacheKey(scriptSig, scriptPubKey, flags, sigHash)); ok {
		metricsCacheHitCounter.Inc(1)
		return true
	}
	return false
}

// Add records that the pair validated under flags and sigHash.
func (c *ExecCache) Add(scriptSig, scriptPubKey *Script, flags ScriptFlags, sigHash []byte) {
	c.cache.Add(execCacheKey(scriptSig, scriptPubKey, flags, sigHash), struct{}{})
	metricsCacheSizeGauge.Update(int64(c.cache.Len()))
}

// Len returns the number of cached entries.
func (c *ExecCache) Len() int {
	return c.cache.Len()
}

// Purge drops every cached entry.
func (c *ExecCache) Purge() {
	c.cache.Purge()
	metricsCacheSizeGauge.Update(0)
}

// execCacheKey hashes flags, the lengths of sigHash and scriptSig, then
// sigHash, scriptSig and scriptPubKey. A nil script keys like an empty one,
// matching Validate.
func execCacheKey(scriptSig, scriptPubKey *Script, flags ScriptFlags, sigHash []byte) crypto.HashType {
	sig, pubKey := scriptBytes(scriptSig), scriptBytes(scriptPubKey)
	var header [12]byte
	binary.LittleEndian.PutUint32(header[:4], uint32(flags))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(sigHash)))
	binary.LittleEndian.PutUint32(header[8:], uint32(len(sig)))
	var key crypto.HashType
	copy(key[:], crypto.Sha256Multi(header[:], sigHash, sig, pubKey))
	return key
}

func scriptBytes(s *Script) []byte {
	if s == nil {
		return nil
	}
	return *s
}
