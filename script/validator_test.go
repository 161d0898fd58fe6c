// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"testing"

	"github.com/BOXFoundation/paircommit/crypto"
	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

func pairCommitItems(n int) []*ValidateItem {
	items := make([]*ValidateItem, n)
	for i := range items {
		x1 := []byte(fmt.Sprintf("left-%d", i))
		x2 := []byte(fmt.Sprintf("right-%d", i))
		items[i] = &ValidateItem{
			ScriptSig:    PairCommitUnlockScript(x1, x2),
			ScriptPubKey: PairCommitLockScript(crypto.PairCommitHash(x1, x2)),
			Flags:        StandardVerifyFlags,
		}
	}
	return items
}

func TestValidatorValidate(t *testing.T) {
	v := NewValidator(4, nil)
	ensure.Nil(t, v.Validate(nil))
	ensure.Nil(t, v.Validate(pairCommitItems(100)))

	items := pairCommitItems(100)
	items[42].ScriptSig = PairCommitUnlockScript([]byte("right-42"), []byte("left-42"))
	err := v.Validate(items)
	ensure.DeepEqual(t, errors.Cause(err), ErrFinalTopStackEleFalse)
	ensure.StringContains(t, err.Error(), "item 42")
}

func TestValidatorRun(t *testing.T) {
	items := pairCommitItems(10)
	items[3].ScriptSig = PairCommitUnlockScript([]byte("x"), nil)
	items[7].Flags = ScriptDiscourageUpgradableNops

	errs := NewValidator(3, nil).Run(items)
	ensure.DeepEqual(t, len(errs), len(items))
	for i, err := range errs {
		switch i {
		case 3:
			ensure.DeepEqual(t, errors.Cause(err), ErrFinalTopStackEleFalse)
		case 7:
			ensure.DeepEqual(t, errors.Cause(err), ErrDiscourageUpgradableNOPs)
		default:
			ensure.Nil(t, err)
		}
	}
}

func TestValidatorCache(t *testing.T) {
	cache, err := NewExecCache(DefaultExecCacheSize)
	ensure.Nil(t, err)
	v := NewValidator(0, cache)

	items := pairCommitItems(20)
	items[5].Flags = ScriptVerifyPairCommit
	items[5].ScriptSig = PairCommitUnlockScript(nil, nil)
	errs := v.Run(items)
	ensure.NotNil(t, errs[5])

	// only successes are cached
	ensure.DeepEqual(t, cache.Len(), 19)
	ensure.True(t, cache.Exists(items[0].ScriptSig, items[0].ScriptPubKey, items[0].Flags, nil))

	ensure.Nil(t, v.Validate(items[:5]))
	ensure.DeepEqual(t, cache.Len(), 19)
}
