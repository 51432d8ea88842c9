// Copyright (C) 2026 The go-quicframe Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package qerrors holds the sentinel errors shared across the codec.
package qerrors

import (
	"errors"
)

var (
	// ErrTruncated indicates a decoder read beyond the declared buffer end.
	ErrTruncated = errors.New("truncated")
	// ErrVarintOverflow indicates a value to encode does not fit in 62
	// bits, or does not fit in the requested fixed width. A varint whose
	// claimed width the buffer cannot supply is reported as ErrTruncated.
	ErrVarintOverflow = errors.New("varint overflow")
	// ErrOversizeOutput indicates a serializer's destination buffer is
	// smaller than the frame's reported size.
	ErrOversizeOutput = errors.New("output buffer too small")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
