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

import "testing"

func TestClassifyFrameTypeExact(t *testing.T) {
	cases := map[byte]FrameType{
		0x00: TypePadding,
		0x01: TypeRstStream,
		0x02: TypeConnectionClose,
		0x03: TypeApplicationClose,
		0x04: TypeMaxData,
		0x05: TypeMaxStreamData,
		0x06: TypeMaxStreamID,
		0x07: TypePing,
		0x08: TypeBlocked,
		0x09: TypeStreamBlocked,
		0x0a: TypeStreamIDBlocked,
		0x0b: TypeNewConnectionID,
		0x0c: TypeStopSending,
	}
	for b, want := range cases {
		if got := ClassifyFrameType(b); got != want {
			t.Errorf("ClassifyFrameType(%#x) = %v, want %v", b, got, want)
		}
	}
}

func TestClassifyFrameTypeStreamRange(t *testing.T) {
	for b := streamBase; b <= streamMax; b++ {
		if got := ClassifyFrameType(b); got != TypeStream {
			t.Errorf("ClassifyFrameType(%#x) = %v, want STREAM", b, got)
		}
	}
}

func TestClassifyFrameTypeAckRange(t *testing.T) {
	for b := int(ackBase); b <= int(ackMax); b++ {
		if got := ClassifyFrameType(byte(b)); got != TypeAck {
			t.Errorf("ClassifyFrameType(%#x) = %v, want ACK", b, got)
		}
	}
}

func TestClassifyFrameTypeUnknown(t *testing.T) {
	for _, b := range []byte{0x0d, 0x0e, 0x0f, 0x18, 0x50, 0x9f, 0xc0, 0xff} {
		if got := ClassifyFrameType(b); got != TypeUnknown {
			t.Errorf("ClassifyFrameType(%#x) = %v, want UNKNOWN", b, got)
		}
	}
}

func TestClassifyFrameTypeWorkedExamples(t *testing.T) {
	if got := ClassifyFrameType(0xff); got != TypeUnknown {
		t.Errorf("ClassifyFrameType(0xff) = %v, want UNKNOWN", got)
	}
	if got := ClassifyFrameType(0xa2); got != TypeAck {
		t.Errorf("ClassifyFrameType(0xa2) = %v, want ACK", got)
	}
	if got := ClassifyFrameType(0x11); got != TypeStream {
		t.Errorf("ClassifyFrameType(0x11) = %v, want STREAM", got)
	}
}
