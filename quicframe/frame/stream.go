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

const (
	streamOffsetBit byte = 0x04
	streamLengthBit byte = 0x02
	streamFinBit    byte = 0x01
)

// StreamFrame carries a slice of an application stream's byte sequence.
type StreamFrame struct {
	buf []byte

	streamID  StreamID
	offset    Offset
	hasOffset bool
	hasLength bool
	fin       bool
	data      []byte
}

// StreamFrameOption configures an owned StreamFrame built by
// NewStreamFrame.
type StreamFrameOption func(*StreamFrame)

// WithStreamOffset sets the stream offset field and marks it present on
// the wire (the O bit).
func WithStreamOffset(offset Offset) StreamFrameOption {
	return func(f *StreamFrame) {
		f.offset = offset
		f.hasOffset = true
	}
}

// WithStreamLengthField marks the explicit length field present on the
// wire (the L bit). Without it, the frame's data is taken to extend to
// the end of the packet, as is conventional for the last frame in a
// packet.
func WithStreamLengthField() StreamFrameOption {
	return func(f *StreamFrame) {
		f.hasLength = true
	}
}

// WithStreamFin marks the stream as finished (the F bit): no more data
// will be sent on it after this frame.
func WithStreamFin() StreamFrameOption {
	return func(f *StreamFrame) {
		f.fin = true
	}
}

// NewStreamFrame builds an owned STREAM frame carrying data. data is
// not copied; the caller must not mutate it afterward.
func NewStreamFrame(streamID StreamID, data []byte, opts ...StreamFrameOption) *StreamFrame {
	f := &StreamFrame{streamID: streamID, data: data}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type streamDecoded struct {
	streamID  StreamID
	offset    Offset
	hasOffset bool
	hasLength bool
	fin       bool
	dataOff   int
	dataLen   int
	total     int
}

// ParseStreamFrame reads a borrowed STREAM frame from the start of buf.
func ParseStreamFrame(buf []byte) (*StreamFrame, error) {
	f := &StreamFrame{buf: buf}
	if _, err := f.decode(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *StreamFrame) decode() (streamDecoded, error) {
	var d streamDecoded
	if err := checkParseSrc(f.buf, 1); err != nil {
		return d, err
	}
	b := f.buf[0]
	d.hasOffset = b&streamOffsetBit != 0
	d.hasLength = b&streamLengthBit != 0
	d.fin = b&streamFinBit != 0

	off := 1
	sid, n, err := varint.ReadVarint(f.buf[off:])
	if err != nil {
		return d, err
	}
	off += n
	d.streamID = StreamID(sid)

	if d.hasOffset {
		ofs, n, err := varint.ReadVarint(f.buf[off:])
		if err != nil {
			return d, err
		}
		off += n
		d.offset = Offset(ofs)
	}

	var dataLen int
	if d.hasLength {
		length, n, err := varint.ReadVarint(f.buf[off:])
		if err != nil {
			return d, err
		}
		off += n
		dataLen = int(length)
		if err := checkParseSrc(f.buf, off+dataLen); err != nil {
			return d, err
		}
	} else {
		dataLen = len(f.buf) - off
	}

	d.dataOff = off
	d.dataLen = dataLen
	d.total = off + dataLen
	return d, nil
}

// StreamID returns the stream this data belongs to.
func (f *StreamFrame) StreamID() StreamID {
	if f.buf != nil {
		d, _ := f.decode()
		return d.streamID
	}
	return f.streamID
}

// Offset returns the byte offset of Data within the stream.
func (f *StreamFrame) Offset() Offset {
	if f.buf != nil {
		d, _ := f.decode()
		return d.offset
	}
	return f.offset
}

// HasOffsetField reports whether the offset field was written on the
// wire (the O bit).
func (f *StreamFrame) HasOffsetField() bool {
	if f.buf != nil {
		d, _ := f.decode()
		return d.hasOffset
	}
	return f.hasOffset
}

// HasLengthField reports whether an explicit length field was written
// on the wire (the L bit). For a borrowed frame this reflects the bit
// actually observed in the frame's first byte; for an owned frame it
// reflects whether WithStreamLengthField was supplied to the builder,
// not an unconditional true.
func (f *StreamFrame) HasLengthField() bool {
	if f.buf != nil {
		d, _ := f.decode()
		return d.hasLength
	}
	return f.hasLength
}

// Fin reports whether this is the final frame of the stream.
func (f *StreamFrame) Fin() bool {
	if f.buf != nil {
		d, _ := f.decode()
		return d.fin
	}
	return f.fin
}

// Data returns the stream data carried by this frame. For a borrowed
// frame this is a subslice of the frame's backing buffer, not a copy.
func (f *StreamFrame) Data() []byte {
	if f.buf != nil {
		d, err := f.decode()
		if err != nil {
			return nil
		}
		return f.buf[d.dataOff : d.dataOff+d.dataLen]
	}
	return f.data
}

// Type returns TypeStream. Note that the full wire byte also encodes
// the O, L and F bits; Type reports only the frame's variant.
func (f *StreamFrame) Type() FrameType { return TypeStream }

// firstByte computes the complete type byte including the O, L and F
// flag bits.
func (f *StreamFrame) firstByte() byte {
	b := byte(TypeStream)
	if f.HasOffsetField() {
		b |= streamOffsetBit
	}
	if f.HasLengthField() {
		b |= streamLengthBit
	}
	if f.Fin() {
		b |= streamFinBit
	}
	return b
}

// Size returns the exact encoded length.
func (f *StreamFrame) Size() int {
	if f.buf != nil {
		d, _ := f.decode()
		return d.total
	}
	n := 1
	sidN, _ := varint.VarintSizeOf(uint64(f.streamID))
	n += sidN
	if f.hasOffset {
		ofsN, _ := varint.VarintSizeOf(uint64(f.offset))
		n += ofsN
	}
	if f.hasLength {
		lenN, _ := varint.VarintSizeOf(uint64(len(f.data)))
		n += lenN
	}
	return n + len(f.data)
}

// Store serializes the frame into dst.
func (f *StreamFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = f.firstByte()
	off := 1

	n, err := varint.WriteVarint(uint64(f.StreamID()), dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	if f.HasOffsetField() {
		n, err = varint.WriteVarint(uint64(f.Offset()), dst[off:])
		if err != nil {
			return 0, err
		}
		off += n
	}

	data := f.Data()
	if f.HasLengthField() {
		n, err = varint.WriteVarint(uint64(len(data)), dst[off:])
		if err != nil {
			return 0, err
		}
		off += n
	}

	off += copy(dst[off:], data)
	return off, nil
}

func (f *StreamFrame) rebind(buf []byte) { *f = StreamFrame{buf: buf} }
