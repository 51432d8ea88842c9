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

// RstStreamFrame abruptly terminates a stream. A zero-value buf field
// marks the owned (built) representation; a non-nil buf marks the
// borrowed (parsed) representation, whose accessors decode from buf on
// every call rather than caching.
type RstStreamFrame struct {
	buf []byte

	streamID    StreamID
	errorCode   AppErrorCode
	finalOffset Offset
}

// NewRstStreamFrame builds an owned RST_STREAM frame.
func NewRstStreamFrame(streamID StreamID, errorCode AppErrorCode, finalOffset Offset) *RstStreamFrame {
	return &RstStreamFrame{
		streamID:    streamID,
		errorCode:   errorCode,
		finalOffset: finalOffset,
	}
}

// ParseRstStreamFrame reads a borrowed RST_STREAM frame from the start
// of buf, validating that every field is present.
func ParseRstStreamFrame(buf []byte) (*RstStreamFrame, error) {
	f := &RstStreamFrame{buf: buf}
	if _, _, _, _, err := f.decode(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *RstStreamFrame) decode() (StreamID, AppErrorCode, Offset, int, error) {
	if err := checkParseSrc(f.buf, 1); err != nil {
		return 0, 0, 0, 0, err
	}
	off := 1
	sid, n, err := varint.ReadVarint(f.buf[off:])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	off += n

	ec, err := varint.ReadUintBe(f.buf[off:], 2)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	off += 2

	fo, n, err := varint.ReadVarint(f.buf[off:])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	off += n

	return StreamID(sid), AppErrorCode(ec), Offset(fo), off, nil
}

// StreamID returns the stream being reset.
func (f *RstStreamFrame) StreamID() StreamID {
	if f.buf != nil {
		sid, _, _, _, _ := f.decode()
		return sid
	}
	return f.streamID
}

// ErrorCode returns the application error code carried by the reset.
func (f *RstStreamFrame) ErrorCode() AppErrorCode {
	if f.buf != nil {
		_, ec, _, _, _ := f.decode()
		return ec
	}
	return f.errorCode
}

// FinalOffset returns the final stream offset the sender reached.
func (f *RstStreamFrame) FinalOffset() Offset {
	if f.buf != nil {
		_, _, fo, _, _ := f.decode()
		return fo
	}
	return f.finalOffset
}

// Type returns TypeRstStream.
func (f *RstStreamFrame) Type() FrameType { return TypeRstStream }

// Size returns the exact encoded length.
func (f *RstStreamFrame) Size() int {
	if f.buf != nil {
		_, _, _, n, _ := f.decode()
		return n
	}
	sidN, _ := varint.VarintSizeOf(uint64(f.streamID))
	foN, _ := varint.VarintSizeOf(uint64(f.finalOffset))
	return 1 + sidN + 2 + foN
}

// Store serializes the frame into dst.
func (f *RstStreamFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeRstStream)
	off := 1

	n, err := varint.WriteVarint(uint64(f.StreamID()), dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	if err := varint.WriteUintBe(uint64(f.ErrorCode()), 2, dst[off:]); err != nil {
		return 0, err
	}
	off += 2

	n, err = varint.WriteVarint(uint64(f.FinalOffset()), dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

func (f *RstStreamFrame) rebind(buf []byte) { *f = RstStreamFrame{buf: buf} }
