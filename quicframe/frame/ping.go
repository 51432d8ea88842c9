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

// PingFrame elicits an acknowledgement from the peer. It carries no
// fields.
type PingFrame struct{}

// NewPingFrame returns a PING frame.
func NewPingFrame() *PingFrame {
	return &PingFrame{}
}

// ParsePingFrame reads a PING frame from the start of buf.
func ParsePingFrame(buf []byte) (*PingFrame, error) {
	if err := checkParseSrc(buf, 1); err != nil {
		return nil, err
	}
	return &PingFrame{}, nil
}

// Type returns TypePing.
func (f *PingFrame) Type() FrameType { return TypePing }

// Size returns 1.
func (f *PingFrame) Size() int { return 1 }

// Store writes the single type byte into dst.
func (f *PingFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypePing)
	return 1, nil
}

func (f *PingFrame) rebind(buf []byte) {}
