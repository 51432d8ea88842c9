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

// StreamBlockedFrame signals that the sender is stream-flow-control
// limited at the given offset on the given stream.
type StreamBlockedFrame struct {
	buf []byte

	streamID StreamID
	offset   Offset
}

// NewStreamBlockedFrame builds an owned STREAM_BLOCKED frame.
func NewStreamBlockedFrame(streamID StreamID, offset Offset) *StreamBlockedFrame {
	return &StreamBlockedFrame{streamID: streamID, offset: offset}
}

// ParseStreamBlockedFrame reads a borrowed STREAM_BLOCKED frame from
// the start of buf.
func ParseStreamBlockedFrame(buf []byte) (*StreamBlockedFrame, error) {
	f := &StreamBlockedFrame{buf: buf}
	if _, _, _, err := f.decode(); err != nil {
		return nil, err
	}
	return f, nil
}

// decode measures the offset field's own varint width rather than
// reusing the stream id's, so the two fields can independently be any
// legal varint length.
func (f *StreamBlockedFrame) decode() (StreamID, Offset, int, error) {
	if err := checkParseSrc(f.buf, 1); err != nil {
		return 0, 0, 0, err
	}
	off := 1
	sid, n, err := varint.ReadVarint(f.buf[off:])
	if err != nil {
		return 0, 0, 0, err
	}
	off += n

	ofs, n, err := varint.ReadVarint(f.buf[off:])
	if err != nil {
		return 0, 0, 0, err
	}
	off += n

	return StreamID(sid), Offset(ofs), off, nil
}

// StreamID returns the blocked stream.
func (f *StreamBlockedFrame) StreamID() StreamID {
	if f.buf != nil {
		sid, _, _, _ := f.decode()
		return sid
	}
	return f.streamID
}

// Offset returns the stream offset at which the sender is blocked.
func (f *StreamBlockedFrame) Offset() Offset {
	if f.buf != nil {
		_, ofs, _, _ := f.decode()
		return ofs
	}
	return f.offset
}

// Type returns TypeStreamBlocked.
func (f *StreamBlockedFrame) Type() FrameType { return TypeStreamBlocked }

// Size returns the exact encoded length.
func (f *StreamBlockedFrame) Size() int {
	if f.buf != nil {
		_, _, n, _ := f.decode()
		return n
	}
	sidN, _ := varint.VarintSizeOf(uint64(f.streamID))
	ofsN, _ := varint.VarintSizeOf(uint64(f.offset))
	return 1 + sidN + ofsN
}

// Store serializes the frame into dst.
func (f *StreamBlockedFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeStreamBlocked)
	off := 1

	n, err := varint.WriteVarint(uint64(f.StreamID()), dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	n, err = varint.WriteVarint(uint64(f.Offset()), dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

func (f *StreamBlockedFrame) rebind(buf []byte) { *f = StreamBlockedFrame{buf: buf} }
