// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"runtime"

	"github.com/pkg/errors"
)

// ValidateItem is one unlocking/locking script pair to validate.
type ValidateItem struct {
	ScriptSig    *Script
	ScriptPubKey *Script
	Flags        ScriptFlags
	SigHash      []byte
}

type validateJob struct {
	index int
	item  *ValidateItem
}

type validateResult struct {
	index int
	err   error
}

// Validator validates batches of scripts on a pool of goroutines. Engines
// are never shared between goroutines; only the optional ExecCache is.
type Validator struct {
	workers int
	cache   *ExecCache
}

// NewValidator creates a validator. workers <= 0 means one per CPU and a
// nil cache disables caching.
func NewValidator(workers int, cache *ExecCache) *Validator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Validator{workers: workers, cache: cache}
}

// Validate checks every item and returns the first failure found, wrapped
// with its index. Remaining work is abandoned once an item fails.
func (v *Validator) Validate(items []*ValidateItem) error {
	if len(items) == 0 {
		return nil
	}
	quit := make(chan struct{})
	defer close(quit)

	results := v.start(items, quit)
	for processed := 0; processed < len(items); processed++ {
		r := <-results
		if r.err != nil {
			return errors.Wrapf(r.err, "item %d", r.index)
		}
	}
	return nil
}

// Run checks every item and returns the outcome of each, in item order.
func (v *Validator) Run(items []*ValidateItem) []error {
	errs := make([]error, len(items))
	if len(items) == 0 {
		return errs
	}
	quit := make(chan struct{})
	defer close(quit)

	results := v.start(items, quit)
	for processed := 0; processed < len(items); processed++ {
		r := <-results
		errs[r.index] = r.err
	}
	return errs
}

func (v *Validator) start(items []*ValidateItem, quit chan struct{}) <-chan validateResult {
	jobs := make(chan validateJob)
	results := make(chan validateResult)

	workers := v.workers
	if workers > len(items) {
		workers = len(items)
	}
	for i := 0; i < workers; i++ {
		go v.worker(jobs, results, quit)
	}
	go func() {
		for i, item := range items {
			select {
			case jobs <- validateJob{index: i, item: item}:
			case <-quit:
				return
			}
		}
	}()
	return results
}

func (v *Validator) worker(jobs <-chan validateJob, results chan<- validateResult, quit chan struct{}) {
	for {
		select {
		case job := <-jobs:
			r := validateResult{index: job.index, err: v.validate(job.item)}
			select {
			case results <- r:
			case <-quit:
				return
			}
		case <-quit:
			return
		}
	}
}

func (v *Validator) validate(item *ValidateItem) error {
	if v.cache != nil && v.cache.Exists(item.ScriptSig, item.ScriptPubKey, item.Flags, item.SigHash) {
		return nil
	}
	if err := Validate(item.ScriptSig, item.ScriptPubKey, item.Flags, WithSigHash(item.SigHash)); err != nil {
		return err
	}
	if v.cache != nil {
		v.cache.Add(item.ScriptSig, item.ScriptPubKey, item.Flags, item.SigHash)
	}
	return nil
}
