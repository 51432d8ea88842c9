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

// newConnectionIDSize is the frame's fixed total length: 1 type byte,
// a 2-byte sequence number, an 8-byte connection id, and a 16-byte
// stateless reset token.
const newConnectionIDSize = 1 + 2 + 8 + 16

// NewConnectionIDFrame offers the peer an additional connection id it
// may use on a future path, along with the stateless reset token that
// authenticates a reset for that id.
type NewConnectionIDFrame struct {
	buf []byte

	sequence     uint16
	connectionID ConnectionID
	resetToken   StatelessResetToken
}

// NewNewConnectionIDFrame builds an owned NEW_CONNECTION_ID frame.
func NewNewConnectionIDFrame(sequence uint16, connectionID ConnectionID, resetToken StatelessResetToken) *NewConnectionIDFrame {
	return &NewConnectionIDFrame{
		sequence:     sequence,
		connectionID: connectionID,
		resetToken:   resetToken,
	}
}

// ParseNewConnectionIDFrame reads a borrowed NEW_CONNECTION_ID frame
// from the start of buf.
func ParseNewConnectionIDFrame(buf []byte) (*NewConnectionIDFrame, error) {
	if err := checkParseSrc(buf, newConnectionIDSize); err != nil {
		return nil, err
	}
	return &NewConnectionIDFrame{buf: buf}, nil
}

// Sequence returns the sequence number assigned to this connection id.
func (f *NewConnectionIDFrame) Sequence() uint16 {
	if f.buf != nil {
		v, _ := varint.ReadUintBe(f.buf[1:3], 2)
		return uint16(v)
	}
	return f.sequence
}

// ConnectionID returns the offered connection id.
func (f *NewConnectionIDFrame) ConnectionID() ConnectionID {
	var id ConnectionID
	if f.buf != nil {
		copy(id[:], f.buf[3:11])
		return id
	}
	return f.connectionID
}

// ResetToken returns the stateless reset token for this connection id.
func (f *NewConnectionIDFrame) ResetToken() StatelessResetToken {
	var tok StatelessResetToken
	if f.buf != nil {
		copy(tok[:], f.buf[11:27])
		return tok
	}
	return f.resetToken
}

// Type returns TypeNewConnectionID.
func (f *NewConnectionIDFrame) Type() FrameType { return TypeNewConnectionID }

// Size always returns 27.
func (f *NewConnectionIDFrame) Size() int { return newConnectionIDSize }

// Store serializes the frame into dst.
func (f *NewConnectionIDFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, newConnectionIDSize); err != nil {
		return 0, err
	}
	dst[0] = byte(TypeNewConnectionID)
	if err := varint.WriteUintBe(uint64(f.Sequence()), 2, dst[1:3]); err != nil {
		return 0, err
	}
	id := f.ConnectionID()
	copy(dst[3:11], id[:])
	tok := f.ResetToken()
	copy(dst[11:27], tok[:])
	return newConnectionIDSize, nil
}

func (f *NewConnectionIDFrame) rebind(buf []byte) { *f = NewConnectionIDFrame{buf: buf} }
