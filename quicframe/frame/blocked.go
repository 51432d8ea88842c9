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

import "github.com/cybergarage/go-quicframe/quicframe/varint"

// BlockedFrame signals that the sender is connection-flow-control
// limited at the given offset.
type BlockedFrame struct {
	buf []byte

	offset Offset
}

// NewBlockedFrame builds an owned BLOCKED frame.
func NewBlockedFrame(offset Offset) *BlockedFrame {
	return &BlockedFrame{offset: offset}
}

// ParseBlockedFrame reads a borrowed BLOCKED frame from the start of buf.
func ParseBlockedFrame(buf []byte) (*BlockedFrame, error) {
	f := &BlockedFrame{buf: buf}
	if err := checkParseSrc(buf, 1); err != nil {
		return nil, err
	}
	if _, _, err := varint.ReadVarint(buf[1:]); err != nil {
		return nil, err
	}
	return f, nil
}

// Offset returns the connection offset at which the sender is blocked.
func (f *BlockedFrame) Offset() Offset {
	if f.buf != nil {
		v, _, _ := varint.ReadVarint(f.buf[1:])
		return Offset(v)
	}
	return f.offset
}

// Type returns TypeBlocked.
func (f *BlockedFrame) Type() FrameType { return TypeBlocked }

// Size returns the exact encoded length.
func (f *BlockedFrame) Size() int {
	n, _ := varint.VarintSizeOf(uint64(f.Offset()))
	return 1 + n
}

// Store serializes the frame into dst.
func (f *BlockedFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeBlocked)
	n, err := varint.WriteVarint(uint64(f.Offset()), dst[1:])
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}

func (f *BlockedFrame) rebind(buf []byte) { *f = BlockedFrame{buf: buf} }
