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

package frame

import (
	"fmt"

	"github.com/cybergarage/go-quicframe/quicframe/qerrors"
)

// Frame is implemented by every concrete frame variant. A frame is
// either borrowed (parsed out of a byte slice it does not own; field
// accessors decode on demand from that slice) or owned (built from
// field values supplied by the caller; Store serializes those values
// directly). Which mode a given instance is in is a storage detail,
// not part of this interface: callers of Type, Size and Store cannot
// tell the difference, and no variant trades correctness for the
// distinction.
type Frame interface {
	// Type returns the frame's variant.
	Type() FrameType
	// Size returns the exact number of bytes Store writes.
	Size() int
	// Store serializes the frame into dst, which must be at least
	// Size() bytes long, and returns the number of bytes written.
	Store(dst []byte) (int, error)
}

// checkStoreDst is the shared bounds check every Store implementation
// performs before writing.
func checkStoreDst(dst []byte, need int) error {
	if len(dst) < need {
		return fmt.Errorf("%w: need %d bytes, have %d", qerrors.ErrOversizeOutput, need, len(dst))
	}
	return nil
}

// checkParseSrc is the shared bounds check every parse constructor
// performs before trusting a borrowed buffer's declared layout.
func checkParseSrc(buf []byte, need int) error {
	if len(buf) < need {
		return fmt.Errorf("%w: need %d bytes, have %d", qerrors.ErrTruncated, need, len(buf))
	}
	return nil
}
