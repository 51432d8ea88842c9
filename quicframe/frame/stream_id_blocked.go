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

// StreamIDBlockedFrame signals that the sender wants to open a new
// stream but is blocked by the peer's stream-id limit.
type StreamIDBlockedFrame struct {
	buf []byte

	streamID StreamID
}

// NewStreamIDBlockedFrame builds an owned STREAM_ID_BLOCKED frame.
func NewStreamIDBlockedFrame(streamID StreamID) *StreamIDBlockedFrame {
	return &StreamIDBlockedFrame{streamID: streamID}
}

// ParseStreamIDBlockedFrame reads a borrowed STREAM_ID_BLOCKED frame
// from the start of buf.
func ParseStreamIDBlockedFrame(buf []byte) (*StreamIDBlockedFrame, error) {
	f := &StreamIDBlockedFrame{buf: buf}
	if err := checkParseSrc(buf, 1); err != nil {
		return nil, err
	}
	if _, _, err := varint.ReadVarint(buf[1:]); err != nil {
		return nil, err
	}
	return f, nil
}

// StreamID returns the stream id the sender was blocked from using.
func (f *StreamIDBlockedFrame) StreamID() StreamID {
	if f.buf != nil {
		v, _, _ := varint.ReadVarint(f.buf[1:])
		return StreamID(v)
	}
	return f.streamID
}

// Type returns TypeStreamIDBlocked.
func (f *StreamIDBlockedFrame) Type() FrameType { return TypeStreamIDBlocked }

// Size returns the exact encoded length.
func (f *StreamIDBlockedFrame) Size() int {
	n, _ := varint.VarintSizeOf(uint64(f.StreamID()))
	return 1 + n
}

// Store serializes the frame into dst.
func (f *StreamIDBlockedFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeStreamIDBlocked)
	n, err := varint.WriteVarint(uint64(f.StreamID()), dst[1:])
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}

func (f *StreamIDBlockedFrame) rebind(buf []byte) { *f = StreamIDBlockedFrame{buf: buf} }
