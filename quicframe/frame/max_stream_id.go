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

// MaxStreamIDFrame raises the limit on the number of streams the peer
// may open.
type MaxStreamIDFrame struct {
	buf []byte

	maxStreamID StreamID
}

// NewMaxStreamIDFrame builds an owned MAX_STREAM_ID frame.
func NewMaxStreamIDFrame(maxStreamID StreamID) *MaxStreamIDFrame {
	return &MaxStreamIDFrame{maxStreamID: maxStreamID}
}

// ParseMaxStreamIDFrame reads a borrowed MAX_STREAM_ID frame from the
// start of buf.
func ParseMaxStreamIDFrame(buf []byte) (*MaxStreamIDFrame, error) {
	f := &MaxStreamIDFrame{buf: buf}
	if err := checkParseSrc(buf, 1); err != nil {
		return nil, err
	}
	if _, _, err := varint.ReadVarint(buf[1:]); err != nil {
		return nil, err
	}
	return f, nil
}

// MaxStreamID returns the new stream-id limit.
func (f *MaxStreamIDFrame) MaxStreamID() StreamID {
	if f.buf != nil {
		v, _, _ := varint.ReadVarint(f.buf[1:])
		return StreamID(v)
	}
	return f.maxStreamID
}

// Type returns TypeMaxStreamID.
func (f *MaxStreamIDFrame) Type() FrameType { return TypeMaxStreamID }

// Size returns the exact encoded length.
func (f *MaxStreamIDFrame) Size() int {
	n, _ := varint.VarintSizeOf(uint64(f.MaxStreamID()))
	return 1 + n
}

// Store serializes the frame into dst.
func (f *MaxStreamIDFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeMaxStreamID)
	n, err := varint.WriteVarint(uint64(f.MaxStreamID()), dst[1:])
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}

func (f *MaxStreamIDFrame) rebind(buf []byte) { *f = MaxStreamIDFrame{buf: buf} }
