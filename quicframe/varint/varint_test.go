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

package varint

import (
	"errors"
	"testing"

	"github.com/cybergarage/go-quicframe/quicframe/qerrors"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 0x3f, 0x40, 0x3fff, 0x4000, 0x3fffffff, 0x40000000,
		1024, MaxValue, MaxValue - 1,
	}
	for _, v := range values {
		buf := make([]byte, 8)
		n, err := WriteVarint(v, buf)
		if err != nil {
			t.Fatalf("WriteVarint(%d) failed: %v", v, err)
		}

		wantLen, err := VarintSizeOf(v)
		if err != nil {
			t.Fatalf("VarintSizeOf(%d) failed: %v", v, err)
		}
		if n != wantLen {
			t.Errorf("WriteVarint(%d) wrote %d bytes, want %d", v, n, wantLen)
		}

		got, consumed, err := ReadVarint(buf[:n])
		if err != nil {
			t.Fatalf("ReadVarint failed: %v", err)
		}
		if got != v {
			t.Errorf("ReadVarint round-trip: got %d, want %d", got, v)
		}
		if consumed != n {
			t.Errorf("ReadVarint consumed %d bytes, want %d", consumed, n)
		}
	}
}

func TestWriteVarintOverflow(t *testing.T) {
	buf := make([]byte, 8)
	_, err := WriteVarint(MaxValue+1, buf)
	if !errors.Is(err, qerrors.ErrVarintOverflow) {
		t.Errorf("expected ErrVarintOverflow, got %v", err)
	}
}

func TestReadVarintTruncated(t *testing.T) {
	// First byte claims the 4-byte encoding (top bits 10) but only 2 bytes are present.
	buf := []byte{0x80, 0x01}
	_, _, err := ReadVarint(buf)
	if !errors.Is(err, qerrors.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestVarintSizeEmptyBuffer(t *testing.T) {
	_, err := VarintSize(nil)
	if !errors.Is(err, qerrors.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestMaxData1024WireForm(t *testing.T) {
	// varint 1024 encodes as 44 00.
	buf := make([]byte, 8)
	n, err := WriteVarint(1024, buf)
	if err != nil {
		t.Fatalf("WriteVarint failed: %v", err)
	}
	want := []byte{0x44, 0x00}
	if n != len(want) || buf[0] != want[0] || buf[1] != want[1] {
		t.Errorf("WriteVarint(1024) = % x, want % x", buf[:n], want)
	}
}

func TestUintBeRoundTrip(t *testing.T) {
	widths := []int{1, 2, 4, 8}
	for _, w := range widths {
		var v uint64
		switch w {
		case 1:
			v = 0xab
		case 2:
			v = 0xabcd
		case 4:
			v = 0xabcdef01
		case 8:
			v = 0xabcdef0123456789
		}
		buf := make([]byte, w)
		if err := WriteUintBe(v, w, buf); err != nil {
			t.Fatalf("WriteUintBe width=%d failed: %v", w, err)
		}
		got, err := ReadUintBe(buf, w)
		if err != nil {
			t.Fatalf("ReadUintBe width=%d failed: %v", w, err)
		}
		if got != v {
			t.Errorf("width=%d round-trip: got %#x, want %#x", w, got, v)
		}
	}
}

func TestWriteUintBeNarrowingOverflow(t *testing.T) {
	buf := make([]byte, 1)
	err := WriteUintBe(0x100, 1, buf)
	if !errors.Is(err, qerrors.ErrVarintOverflow) {
		t.Errorf("expected ErrVarintOverflow, got %v", err)
	}
}
