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

// PaddingFrame is a single zero byte used to pad a packet to a target
// size. It carries no fields, so it has no borrowed/owned distinction.
type PaddingFrame struct{}

// NewPaddingFrame returns a PADDING frame.
func NewPaddingFrame() *PaddingFrame {
	return &PaddingFrame{}
}

// ParsePaddingFrame reads a PADDING frame from the start of buf.
func ParsePaddingFrame(buf []byte) (*PaddingFrame, error) {
	if err := checkParseSrc(buf, 1); err != nil {
		return nil, err
	}
	return &PaddingFrame{}, nil
}

// Type returns TypePadding.
func (f *PaddingFrame) Type() FrameType { return TypePadding }

// Size returns 1.
func (f *PaddingFrame) Size() int { return 1 }

// Store writes the single zero byte into dst.
func (f *PaddingFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	dst[0] = byte(TypePadding)
	return 1, nil
}

func (f *PaddingFrame) rebind(buf []byte) {}
