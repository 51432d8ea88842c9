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

// ApplicationCloseFrame signals that the connection is being closed for
// an application-level reason.
type ApplicationCloseFrame struct {
	buf []byte

	errorCode AppErrorCode
	reason    []byte
}

// NewApplicationCloseFrame builds an owned APPLICATION_CLOSE frame.
// reason is not copied; the caller must not mutate it afterward.
func NewApplicationCloseFrame(errorCode AppErrorCode, reason []byte) *ApplicationCloseFrame {
	return &ApplicationCloseFrame{errorCode: errorCode, reason: reason}
}

// ParseApplicationCloseFrame reads a borrowed APPLICATION_CLOSE frame
// from the start of buf.
func ParseApplicationCloseFrame(buf []byte) (*ApplicationCloseFrame, error) {
	f := &ApplicationCloseFrame{buf: buf}
	if _, _, err := f.decodeReason(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *ApplicationCloseFrame) decodeReason() (off, n int, err error) {
	if err := checkParseSrc(f.buf, 3); err != nil {
		return 0, 0, err
	}
	reasonLen, lenN, err := varint.ReadVarint(f.buf[3:])
	if err != nil {
		return 0, 0, err
	}
	off = 3 + lenN
	if err := checkParseSrc(f.buf, off+int(reasonLen)); err != nil {
		return 0, 0, err
	}
	return off, int(reasonLen), nil
}

// ErrorCode returns the application error code.
func (f *ApplicationCloseFrame) ErrorCode() AppErrorCode {
	if f.buf != nil {
		v, _ := varint.ReadUintBe(f.buf[1:3], 2)
		return AppErrorCode(v)
	}
	return f.errorCode
}

// Reason returns the human-readable close reason. For a borrowed frame
// this is a subslice of the frame's backing buffer, not a copy.
func (f *ApplicationCloseFrame) Reason() []byte {
	if f.buf != nil {
		off, n, err := f.decodeReason()
		if err != nil {
			return nil
		}
		return f.buf[off : off+n]
	}
	return f.reason
}

// Type returns TypeApplicationClose.
func (f *ApplicationCloseFrame) Type() FrameType { return TypeApplicationClose }

// Size returns the exact encoded length.
func (f *ApplicationCloseFrame) Size() int {
	if f.buf != nil {
		off, n, err := f.decodeReason()
		if err != nil {
			return 0
		}
		return off + n
	}
	lenN, _ := varint.VarintSizeOf(uint64(len(f.reason)))
	return 1 + 2 + lenN + len(f.reason)
}

// Store serializes the frame into dst.
func (f *ApplicationCloseFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeApplicationClose)
	if err := varint.WriteUintBe(uint64(f.ErrorCode()), 2, dst[1:3]); err != nil {
		return 0, err
	}
	reason := f.Reason()
	n, err := varint.WriteVarint(uint64(len(reason)), dst[3:])
	if err != nil {
		return 0, err
	}
	off := 3 + n
	off += copy(dst[off:], reason)
	return off, nil
}

func (f *ApplicationCloseFrame) rebind(buf []byte) { *f = ApplicationCloseFrame{buf: buf} }
