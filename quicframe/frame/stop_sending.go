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

// stopSendingSize is the frame's fixed total length: 1 type byte, a
// 4-byte stream id, and a 2-byte error code. The stream id field is
// fixed-width here rather than varint-encoded so that Size() never
// varies with the stream id's magnitude.
const stopSendingSize = 7

// StopSendingFrame asks a peer to stop sending on a stream.
type StopSendingFrame struct {
	buf []byte

	streamID  StreamID
	errorCode AppErrorCode
}

// NewStopSendingFrame builds an owned STOP_SENDING frame.
func NewStopSendingFrame(streamID StreamID, errorCode AppErrorCode) *StopSendingFrame {
	return &StopSendingFrame{streamID: streamID, errorCode: errorCode}
}

// ParseStopSendingFrame reads a borrowed STOP_SENDING frame from the
// start of buf.
func ParseStopSendingFrame(buf []byte) (*StopSendingFrame, error) {
	if err := checkParseSrc(buf, stopSendingSize); err != nil {
		return nil, err
	}
	return &StopSendingFrame{buf: buf}, nil
}

// StreamID returns the stream being stopped.
func (f *StopSendingFrame) StreamID() StreamID {
	if f.buf != nil {
		v, _ := varint.ReadUintBe(f.buf[1:5], 4)
		return StreamID(v)
	}
	return f.streamID
}

// ErrorCode returns the application error code carried by the request.
func (f *StopSendingFrame) ErrorCode() AppErrorCode {
	if f.buf != nil {
		v, _ := varint.ReadUintBe(f.buf[5:7], 2)
		return AppErrorCode(v)
	}
	return f.errorCode
}

// Type returns TypeStopSending.
func (f *StopSendingFrame) Type() FrameType { return TypeStopSending }

// Size always returns 7.
func (f *StopSendingFrame) Size() int { return stopSendingSize }

// Store serializes the frame into dst.
func (f *StopSendingFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, stopSendingSize); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeStopSending)
	if err := varint.WriteUintBe(uint64(f.StreamID()), 4, dst[1:5]); err != nil {
		return 0, err
	}
	if err := varint.WriteUintBe(uint64(f.ErrorCode()), 2, dst[5:7]); err != nil {
		return 0, err
	}
	return stopSendingSize, nil
}

func (f *StopSendingFrame) rebind(buf []byte) { *f = StopSendingFrame{buf: buf} }
