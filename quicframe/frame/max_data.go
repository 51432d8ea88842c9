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

// MaxDataFrame raises the connection-level flow-control limit.
type MaxDataFrame struct {
	buf []byte

	maximum MaxData
}

// NewMaxDataFrame builds an owned MAX_DATA frame.
func NewMaxDataFrame(maximum MaxData) *MaxDataFrame {
	return &MaxDataFrame{maximum: maximum}
}

// ParseMaxDataFrame reads a borrowed MAX_DATA frame from the start of buf.
func ParseMaxDataFrame(buf []byte) (*MaxDataFrame, error) {
	f := &MaxDataFrame{buf: buf}
	if err := checkParseSrc(buf, 1); err != nil {
		return nil, err
	}
	if _, _, err := varint.ReadVarint(buf[1:]); err != nil {
		return nil, err
	}
	return f, nil
}

// Maximum returns the new connection-level data limit.
func (f *MaxDataFrame) Maximum() MaxData {
	if f.buf != nil {
		v, _, _ := varint.ReadVarint(f.buf[1:])
		return MaxData(v)
	}
	return f.maximum
}

// Type returns TypeMaxData.
func (f *MaxDataFrame) Type() FrameType { return TypeMaxData }

// Size returns the exact encoded length.
func (f *MaxDataFrame) Size() int {
	n, _ := varint.VarintSizeOf(uint64(f.Maximum()))
	return 1 + n
}

// Store serializes the frame into dst.
func (f *MaxDataFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeMaxData)
	n, err := varint.WriteVarint(uint64(f.Maximum()), dst[1:])
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}

func (f *MaxDataFrame) rebind(buf []byte) { *f = MaxDataFrame{buf: buf} }
