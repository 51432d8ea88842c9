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

// Package varint implements the draft-QUIC variable-length integer
// encoding and the fixed-width big-endian integer helpers the frame
// codec is built on.
package varint

import (
	"encoding/binary"
	"fmt"

	"github.com/cybergarage/go-safecast/safecast"

	"github.com/cybergarage/go-quicframe/quicframe/qerrors"
)

// MaxValue is the largest value representable by a varint (2^62 - 1).
const MaxValue = (uint64(1) << 62) - 1

// lengthClass maps the top two bits of the first byte to an encoded length.
var lengthClass = [4]int{1, 2, 4, 8}

// VarintSizeOf returns the number of bytes needed to encode v as a varint,
// choosing the smallest legal length. It fails if v exceeds MaxValue.
func VarintSizeOf(v uint64) (int, error) {
	switch {
	case v <= 0x3f:
		return 1, nil
	case v <= 0x3fff:
		return 2, nil
	case v <= 0x3fffffff:
		return 4, nil
	case v <= MaxValue:
		return 8, nil
	default:
		return 0, fmt.Errorf("%w: value %d exceeds 2^62-1", qerrors.ErrVarintOverflow, v)
	}
}

// VarintSize reports the length in bytes of the varint encoded at the
// start of buf, without decoding its value.
func VarintSize(buf []byte) (int, error) {
	if len(buf) < 1 {
		return 0, fmt.Errorf("%w: empty buffer", qerrors.ErrTruncated)
	}
	return lengthClass[buf[0]>>6], nil
}

// ReadVarint decodes a varint at the start of buf, returning the value and
// the number of bytes consumed.
func ReadVarint(buf []byte) (uint64, int, error) {
	n, err := VarintSize(buf)
	if err != nil {
		return 0, 0, err
	}
	if len(buf) < n {
		return 0, 0, fmt.Errorf("%w: need %d bytes, have %d", qerrors.ErrTruncated, n, len(buf))
	}

	var v uint64
	switch n {
	case 1:
		v = uint64(buf[0] & 0x3f)
	case 2:
		v = uint64(binary.BigEndian.Uint16(buf[:2])) & 0x3fff
	case 4:
		v = uint64(binary.BigEndian.Uint32(buf[:4])) & 0x3fffffff
	case 8:
		v = binary.BigEndian.Uint64(buf[:8]) & MaxValue
	}
	return v, n, nil
}

// WriteVarint encodes v into dst using the smallest legal length, returning
// the number of bytes written.
func WriteVarint(v uint64, dst []byte) (int, error) {
	n, err := VarintSizeOf(v)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", qerrors.ErrOversizeOutput, n, len(dst))
	}

	switch n {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(dst[:2], uint16(v))
		dst[0] |= 0x40
	case 4:
		binary.BigEndian.PutUint32(dst[:4], uint32(v))
		dst[0] |= 0x80
	case 8:
		binary.BigEndian.PutUint64(dst[:8], v)
		dst[0] |= 0xc0
	}
	return n, nil
}

// ReadUintBe reads an n-byte (n in {1,2,4,8}) big-endian unsigned integer
// from the start of buf.
func ReadUintBe(buf []byte, n int) (uint64, error) {
	if len(buf) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", qerrors.ErrTruncated, n, len(buf))
	}
	switch n {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(buf[:2])), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(buf[:4])), nil
	case 8:
		return binary.BigEndian.Uint64(buf[:8]), nil
	default:
		return 0, fmt.Errorf("unsupported integer width %d", n)
	}
}

// WriteUintBe writes v into dst as an n-byte (n in {1,2,4,8}) big-endian
// unsigned integer, failing if v does not fit in n bytes.
func WriteUintBe(v uint64, n int, dst []byte) error {
	if len(dst) < n {
		return fmt.Errorf("%w: need %d bytes, have %d", qerrors.ErrOversizeOutput, n, len(dst))
	}
	switch n {
	case 1:
		var u8 uint8
		if err := safecast.ToUint8(v, &u8); err != nil {
			return fmt.Errorf("%w: %w", qerrors.ErrVarintOverflow, err)
		}
		dst[0] = u8
	case 2:
		var u16 uint16
		if err := safecast.ToUint16(v, &u16); err != nil {
			return fmt.Errorf("%w: %w", qerrors.ErrVarintOverflow, err)
		}
		binary.BigEndian.PutUint16(dst[:2], u16)
	case 4:
		var u32 uint32
		if err := safecast.ToUint32(v, &u32); err != nil {
			return fmt.Errorf("%w: %w", qerrors.ErrVarintOverflow, err)
		}
		binary.BigEndian.PutUint32(dst[:4], u32)
	case 8:
		binary.BigEndian.PutUint64(dst[:8], v)
	default:
		return fmt.Errorf("unsupported integer width %d", n)
	}
	return nil
}

// EncodingForValue returns the 2-bit length class (0..3) that WriteVarint
// would choose for v, as used in bit-packed first bytes such as the ACK
// frame's LL field.
func EncodingForValue(v uint64) (byte, error) {
	n, err := VarintSizeOf(v)
	if err != nil {
		return 0, err
	}
	switch n {
	case 1:
		return 0, nil
	case 2:
		return 1, nil
	case 4:
		return 2, nil
	default:
		return 3, nil
	}
}

// WidthForClass maps a 2-bit length class (0..3) back to a byte width,
// as used to decode the ACK frame's LL and MM fields.
func WidthForClass(class byte) int {
	return lengthClass[class&0x03]
}
