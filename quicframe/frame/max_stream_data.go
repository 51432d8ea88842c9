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

// MaxStreamDataFrame raises the flow-control limit on a single stream.
type MaxStreamDataFrame struct {
	buf []byte

	streamID StreamID
	maximum  MaxData
}

// NewMaxStreamDataFrame builds an owned MAX_STREAM_DATA frame.
func NewMaxStreamDataFrame(streamID StreamID, maximum MaxData) *MaxStreamDataFrame {
	return &MaxStreamDataFrame{streamID: streamID, maximum: maximum}
}

// ParseMaxStreamDataFrame reads a borrowed MAX_STREAM_DATA frame from
// the start of buf.
func ParseMaxStreamDataFrame(buf []byte) (*MaxStreamDataFrame, error) {
	f := &MaxStreamDataFrame{buf: buf}
	if _, _, _, err := f.decode(); err != nil {
		return nil, err
	}
	return f, nil
}

// decode returns the stream id, the maximum, and the frame's total
// length. The maximum's own varint width is measured independently of
// the stream id's width: a frame with a wide stream id and a narrow
// maximum (or vice versa) decodes correctly either way.
func (f *MaxStreamDataFrame) decode() (StreamID, MaxData, int, error) {
	if err := checkParseSrc(f.buf, 1); err != nil {
		return 0, 0, 0, err
	}
	off := 1
	sid, n, err := varint.ReadVarint(f.buf[off:])
	if err != nil {
		return 0, 0, 0, err
	}
	off += n

	max, n, err := varint.ReadVarint(f.buf[off:])
	if err != nil {
		return 0, 0, 0, err
	}
	off += n

	return StreamID(sid), MaxData(max), off, nil
}

// StreamID returns the stream whose limit is being raised.
func (f *MaxStreamDataFrame) StreamID() StreamID {
	if f.buf != nil {
		sid, _, _, _ := f.decode()
		return sid
	}
	return f.streamID
}

// Maximum returns the new per-stream data limit.
func (f *MaxStreamDataFrame) Maximum() MaxData {
	if f.buf != nil {
		_, max, _, _ := f.decode()
		return max
	}
	return f.maximum
}

// Type returns TypeMaxStreamData.
func (f *MaxStreamDataFrame) Type() FrameType { return TypeMaxStreamData }

// Size returns the exact encoded length. Each varint field's width is
// computed from its own value, never borrowed from a neighboring field.
func (f *MaxStreamDataFrame) Size() int {
	if f.buf != nil {
		_, _, n, _ := f.decode()
		return n
	}
	sidN, _ := varint.VarintSizeOf(uint64(f.streamID))
	maxN, _ := varint.VarintSizeOf(uint64(f.maximum))
	return 1 + sidN + maxN
}

// Store serializes the frame into dst.
func (f *MaxStreamDataFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeMaxStreamData)
	off := 1

	n, err := varint.WriteVarint(uint64(f.StreamID()), dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	n, err = varint.WriteVarint(uint64(f.Maximum()), dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

func (f *MaxStreamDataFrame) rebind(buf []byte) { *f = MaxStreamDataFrame{buf: buf} }
