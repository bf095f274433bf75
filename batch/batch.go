// Copyright 2026 Zerite Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package batch provides concurrent bulk validation of address strings.
// Address parsing is a pure function, so validation fans out across a worker
// pool with no coordination beyond the channels used to move work.
package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	zerite "github.com/zeritelabs/gozerite"
)

// ErrValidatorStopped is returned when trying to submit to a stopped validator.
var ErrValidatorStopped = errors.New("validator is stopped")

// ErrValidatorNotStarted is returned when trying to use a validator that hasn't been started.
var ErrValidatorNotStarted = errors.New("validator not started")

// closedResultsChan is a closed channel returned by Results() before Start() is called.
// This prevents callers from blocking indefinitely on a nil channel.
var closedResultsChan = func() <-chan Result {
	ch := make(chan Result)
	close(ch)
	return ch
}()

// Result holds the outcome of validating a single address string
type Result struct {
	// Index is the position of the input within its submission order
	Index int
	// Text is the input address string
	Text string
	// Address is the parsed address; only meaningful when Err is nil
	Address zerite.Address
	// Err is the validation failure, if any
	Err error
}

// Valid returns whether the input parsed as a valid address
func (r Result) Valid() bool {
	return r.Err == nil
}

type workItem struct {
	index int
	text  string
}

// Validator validates address strings across a pool of workers
type Validator struct {
	config ValidatorConfig

	submitChan  chan workItem
	resultsChan chan Result

	validCount   atomic.Uint64
	invalidCount atomic.Uint64

	sequenceCounter atomic.Uint64
	ctx             context.Context
	cancel          context.CancelFunc
	started         atomic.Bool
	stopped         atomic.Bool
	wg              sync.WaitGroup
	mu              sync.Mutex   // protects Start/Stop
	submitMu        sync.RWMutex // protects Submit against concurrent Stop
}

// NewValidator creates a new Validator using functional options.
// Use With* options to customize the configuration.
//
// Example:
//
//	v := NewValidator(
//	    WithWorkers(8),
//	)
func NewValidator(opts ...ValidatorOption) *Validator {
	config := DefaultValidatorConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Validator{
		config: config,
	}
}

// Start starts the validator workers.
func (v *Validator) Start(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.stopped.Load() {
		return ErrValidatorStopped
	}
	if v.started.Load() {
		return nil // Already started
	}

	v.ctx, v.cancel = context.WithCancel(ctx)
	v.submitChan = make(chan workItem, v.config.BufferSize)
	v.resultsChan = make(chan Result, v.config.BufferSize)

	for i := 0; i < v.config.Workers; i++ {
		v.wg.Add(1)
		go v.worker()
	}

	v.started.Store(true)
	return nil
}

// Submit queues an address string for validation. It returns an error if the
// validator hasn't been started or has been stopped.
func (v *Validator) Submit(text string) error {
	v.submitMu.RLock()
	defer v.submitMu.RUnlock()

	if !v.started.Load() {
		return ErrValidatorNotStarted
	}
	if v.stopped.Load() {
		return ErrValidatorStopped
	}

	item := workItem{
		index: int(v.sequenceCounter.Add(1) - 1),
		text:  text,
	}
	select {
	case v.submitChan <- item:
		return nil
	case <-v.ctx.Done():
		return ErrValidatorStopped
	}
}

// Results returns the channel that validation results are delivered on. The
// channel is closed after Stop() once all submitted work has drained.
func (v *Validator) Results() <-chan Result {
	if !v.started.Load() {
		return closedResultsChan
	}
	return v.resultsChan
}

// Stop waits for submitted work to drain and shuts down the workers.
// This method is idempotent - calling it multiple times has no effect.
func (v *Validator) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.stopped.Swap(true) {
		return // Already stopped
	}
	if !v.started.Load() {
		return
	}

	// Block new submissions before closing the submit channel
	v.submitMu.Lock()
	close(v.submitChan)
	v.submitMu.Unlock()

	v.wg.Wait()
	v.cancel()
	close(v.resultsChan)
}

// Counts returns the number of valid and invalid addresses seen so far
func (v *Validator) Counts() (valid uint64, invalid uint64) {
	return v.validCount.Load(), v.invalidCount.Load()
}

func (v *Validator) worker() {
	defer v.wg.Done()

	for {
		select {
		case <-v.ctx.Done():
			return
		case item, ok := <-v.submitChan:
			if !ok {
				return
			}
			result := Result{
				Index: item.index,
				Text:  item.text,
			}
			result.Address, result.Err = zerite.NewAddress(item.text)
			if result.Err == nil {
				v.validCount.Add(1)
			} else {
				v.invalidCount.Add(1)
			}
			select {
			case v.resultsChan <- result:
			case <-v.ctx.Done():
				return
			}
		}
	}
}

// ValidateAll validates the provided address strings across a worker pool
// and returns the results in input order. It's a convenience wrapper around
// the Validator lifecycle for the common one-shot case.
func ValidateAll(
	ctx context.Context,
	texts []string,
	opts ...ValidatorOption,
) ([]Result, error) {
	v := NewValidator(opts...)
	if err := v.Start(ctx); err != nil {
		return nil, err
	}

	var submitErr error
	go func() {
		for _, text := range texts {
			if err := v.Submit(text); err != nil {
				submitErr = err
				break
			}
		}
		v.Stop()
	}()

	ret := make([]Result, len(texts))
	for result := range v.Results() {
		ret[result.Index] = result
	}
	if submitErr != nil {
		return nil, submitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}
