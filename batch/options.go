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

package batch

import (
	"runtime"
)

// DefaultBufferSize is the default buffer size for the submit and results
// channels
const DefaultBufferSize = 256

// ValidatorConfig holds configuration for a Validator.
type ValidatorConfig struct {
	// Workers is the number of parallel validation workers.
	Workers int
	// BufferSize is the buffer size for the submit and results channels.
	BufferSize int
}

// DefaultValidatorConfig returns a ValidatorConfig with sensible defaults.
func DefaultValidatorConfig() ValidatorConfig {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	return ValidatorConfig{
		Workers:    workers,
		BufferSize: DefaultBufferSize,
	}
}

// ValidatorOption is a functional option for configuring a Validator.
type ValidatorOption func(*ValidatorConfig)

// WithWorkers sets the number of validation workers.
func WithWorkers(n int) ValidatorOption {
	return func(c *ValidatorConfig) {
		if n > 0 {
			c.Workers = n
		}
	}
}

// WithBufferSize sets the buffer size for the submit and results channels.
func WithBufferSize(size int) ValidatorOption {
	return func(c *ValidatorConfig) {
		if size > 0 {
			c.BufferSize = size
		}
	}
}
