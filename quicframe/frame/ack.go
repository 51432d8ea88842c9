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

const (
	ackNumBlocksBit byte = 0x10
	ackLLShift      byte = 2
	ackLLMask       byte = 0x0c
	ackMMMask       byte = 0x03
)

// AckFrame acknowledges receipt of one or more packets.
type AckFrame struct {
	buf []byte

	ll byte
	mm byte

	largestAcknowledged PacketNumber
	ackDelay            uint16
	section             *AckBlockSection
}

// NewAckFrame builds an owned ACK frame. The LL and MM width classes
// are chosen automatically from largestAcknowledged and the ack-block
// lengths; callers never pick them directly.
func NewAckFrame(largestAcknowledged PacketNumber, ackDelay uint16, firstAckBlockLength uint64, blocks []AckBlock) *AckFrame {
	ll := widthClassForFixed(uint64(largestAcknowledged))
	mm := widthClassForFixed(firstAckBlockLength)
	for _, b := range blocks {
		if c := widthClassForFixed(b.Length); c > mm {
			mm = c
		}
	}
	return &AckFrame{
		ll:                  ll,
		mm:                  mm,
		largestAcknowledged: largestAcknowledged,
		ackDelay:            ackDelay,
		section:             NewAckBlockSection(mm, firstAckBlockLength, blocks),
	}
}

// widthClassForFixed returns the smallest fixed-width class (0..3,
// mapping to 1/2/4/8 bytes via varint.WidthForClass) that can hold v.
func widthClassForFixed(v uint64) byte {
	switch {
	case v <= 0xff:
		return 0
	case v <= 0xffff:
		return 1
	case v <= 0xffffffff:
		return 2
	default:
		return 3
	}
}

// ParseAckFrame reads a borrowed ACK frame from the start of buf.
func ParseAckFrame(buf []byte) (*AckFrame, error) {
	f := &AckFrame{buf: buf}
	if _, _, err := f.decodeHeader(); err != nil {
		return nil, err
	}
	if _, err := f.decodeSection(); err != nil {
		return nil, err
	}
	return f, nil
}

// decodeHeader decodes everything up to (but not including) the
// ack-block section, returning the number of additional blocks and the
// byte offset at which the section begins.
func (f *AckFrame) decodeHeader() (numBlocks, sectionOff int, err error) {
	if err = checkParseSrc(f.buf, 1); err != nil {
		return 0, 0, err
	}
	b := f.buf[0]
	hasNumBlocks := b&ackNumBlocksBit != 0
	ll := (b & ackLLMask) >> ackLLShift

	off := 1
	if hasNumBlocks {
		if err = checkParseSrc(f.buf, off+1); err != nil {
			return 0, 0, err
		}
		numBlocks = int(f.buf[off])
		off++
	}

	llWidth := varint.WidthForClass(ll)
	if err = checkParseSrc(f.buf, off+llWidth+2); err != nil {
		return 0, 0, err
	}
	off += llWidth + 2

	return numBlocks, off, nil
}

func (f *AckFrame) decodeSection() (*AckBlockSection, error) {
	numBlocks, off, err := f.decodeHeader()
	if err != nil {
		return nil, err
	}
	b := f.buf[0]
	mm := b & ackMMMask
	return ParseAckBlockSection(f.buf[off:], mm, numBlocks)
}

// LargestAcknowledged returns the largest packet number being
// acknowledged.
func (f *AckFrame) LargestAcknowledged() PacketNumber {
	if f.buf != nil {
		b := f.buf[0]
		hasNumBlocks := b&ackNumBlocksBit != 0
		ll := (b & ackLLMask) >> ackLLShift
		off := 1
		if hasNumBlocks {
			off++
		}
		v, _ := varint.ReadUintBe(f.buf[off:], varint.WidthForClass(ll))
		return PacketNumber(v)
	}
	return f.largestAcknowledged
}

// AckDelay returns the sender's reported delay before sending this ack,
// in the sender's declared time unit.
func (f *AckFrame) AckDelay() uint16 {
	if f.buf != nil {
		b := f.buf[0]
		hasNumBlocks := b&ackNumBlocksBit != 0
		ll := (b & ackLLMask) >> ackLLShift
		off := 1
		if hasNumBlocks {
			off++
		}
		off += varint.WidthForClass(ll)
		v, _ := varint.ReadUintBe(f.buf[off:], 2)
		return uint16(v)
	}
	return f.ackDelay
}

// Section returns the frame's ack-block section.
func (f *AckFrame) Section() *AckBlockSection {
	if f.buf != nil {
		s, err := f.decodeSection()
		if err != nil {
			return nil
		}
		return s
	}
	return f.section
}

// Type returns TypeAck.
func (f *AckFrame) Type() FrameType { return TypeAck }

// firstByte computes the complete type byte including the N, LL and MM
// sub-fields. A borrowed frame reuses the byte it was parsed from.
func (f *AckFrame) firstByte() byte {
	if f.buf != nil {
		return f.buf[0]
	}
	b := byte(TypeAck)
	if f.Section().NumBlocks() > 0 {
		b |= ackNumBlocksBit
	}
	b |= (f.ll << ackLLShift) & ackLLMask
	b |= f.mm & ackMMMask
	return b
}

// Size returns the exact encoded length.
func (f *AckFrame) Size() int {
	if f.buf != nil {
		_, off, err := f.decodeHeader()
		if err != nil {
			return 0
		}
		return off + f.Section().Size()
	}
	n := 1
	if f.section.NumBlocks() > 0 {
		n++
	}
	n += varint.WidthForClass(f.ll)
	n += 2
	return n + f.section.Size()
}

// Store serializes the frame into dst.
func (f *AckFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, f.Size()); err != nil {
		return 0, err
	}
	section := f.Section()
	first := f.firstByte()
	dst[0] = first
	off := 1

	if first&ackNumBlocksBit != 0 {
		if err := varint.WriteUintBe(uint64(section.NumBlocks()), 1, dst[off:off+1]); err != nil {
			return 0, err
		}
		off++
	}

	llWidth := varint.WidthForClass((first & ackLLMask) >> ackLLShift)
	if err := varint.WriteUintBe(uint64(f.LargestAcknowledged()), llWidth, dst[off:off+llWidth]); err != nil {
		return 0, err
	}
	off += llWidth

	if err := varint.WriteUintBe(uint64(f.AckDelay()), 2, dst[off:off+2]); err != nil {
		return 0, err
	}
	off += 2

	n, err := section.Store(dst[off:])
	if err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

func (f *AckFrame) rebind(buf []byte) { *f = AckFrame{buf: buf} }
