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

// NullFrame stands in for a frame whose first byte did not classify to
// any known variant. Its layout beyond the type byte is unknowable, so
// it is treated as occupying exactly that one byte; a parser that hits
// an unknown type mid-packet has no way to find the next frame's start
// and should stop.
type NullFrame struct {
	typeByte byte
}

// NewNullFrame builds an owned UNKNOWN frame that echoes the given raw
// type byte.
func NewNullFrame(typeByte byte) *NullFrame {
	return &NullFrame{typeByte: typeByte}
}

// ParseNullFrame reads an UNKNOWN frame from the start of buf.
func ParseNullFrame(buf []byte) (*NullFrame, error) {
	if err := checkParseSrc(buf, 1); err != nil {
		return nil, err
	}
	return &NullFrame{typeByte: buf[0]}, nil
}

// TypeByte returns the raw first byte that failed to classify.
func (f *NullFrame) TypeByte() byte { return f.typeByte }

// Type returns TypeUnknown.
func (f *NullFrame) Type() FrameType { return TypeUnknown }

// Size always returns 1.
func (f *NullFrame) Size() int { return 1 }

// Store writes the original type byte into dst.
func (f *NullFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, 1); err != nil {
		return 0, err
	}
	dst[0] = f.typeByte
	return 1, nil
}

func (f *NullFrame) rebind(buf []byte) { f.typeByte = buf[0] }
