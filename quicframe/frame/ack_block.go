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

import (
	"fmt"

	"github.com/cybergarage/go-quicframe/quicframe/varint"
)

// AckBlock is one (gap, length) pair describing a run of acknowledged
// packet numbers below the previous block.
type AckBlock struct {
	Gap    uint8
	Length uint64
}

// AckBlockSection holds the first-ack-block-length field and the
// additional (gap, length) blocks that follow it inside an ACK frame.
// All block-length fields in a section share one width, chosen by the
// frame's MM bits.
type AckBlockSection struct {
	buf       []byte
	mm        byte
	numBlocks int

	firstAckBlockLength uint64
	blocks              []AckBlock
}

// NewAckBlockSection builds an owned ack-block section. mm is the
// MM length-class (0..3) the owning ACK frame declares for block
// length fields.
func NewAckBlockSection(mm byte, firstAckBlockLength uint64, blocks []AckBlock) *AckBlockSection {
	return &AckBlockSection{
		mm:                  mm,
		numBlocks:           len(blocks),
		firstAckBlockLength: firstAckBlockLength,
		blocks:              blocks,
	}
}

// ParseAckBlockSection reads a borrowed ack-block section from the
// start of buf. numBlocks is the count of additional blocks beyond the
// first, taken from the owning ACK frame's header.
func ParseAckBlockSection(buf []byte, mm byte, numBlocks int) (*AckBlockSection, error) {
	s := &AckBlockSection{buf: buf, mm: mm, numBlocks: numBlocks}
	if err := checkParseSrc(buf, s.Size()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AckBlockSection) blockLenWidth() int {
	return varint.WidthForClass(s.mm)
}

// NumBlocks returns the number of additional (gap, length) blocks
// beyond the first ack block.
func (s *AckBlockSection) NumBlocks() int {
	return s.numBlocks
}

// FirstAckBlockLength returns the length of the first (highest) ack
// block, i.e. the run of packets acknowledged below the largest
// acknowledged packet number.
func (s *AckBlockSection) FirstAckBlockLength() uint64 {
	if s.buf != nil {
		v, _ := varint.ReadUintBe(s.buf, s.blockLenWidth())
		return v
	}
	return s.firstAckBlockLength
}

// Block returns the i'th additional block (0-indexed, not counting the
// first ack block). It is a pure accessor: calling it repeatedly, in
// any order, never mutates the section.
func (s *AckBlockSection) Block(i int) (AckBlock, error) {
	if i < 0 || i >= s.numBlocks {
		return AckBlock{}, fmt.Errorf("ack block index %d out of range [0,%d)", i, s.numBlocks)
	}
	if s.buf == nil {
		return s.blocks[i], nil
	}
	w := s.blockLenWidth()
	off := w + i*(1+w)
	gap := s.buf[off]
	length, err := varint.ReadUintBe(s.buf[off+1:], w)
	if err != nil {
		return AckBlock{}, err
	}
	return AckBlock{Gap: gap, Length: length}, nil
}

// Iterator returns a restartable, non-destructive iterator over the
// section's additional blocks. Multiple iterators over the same
// section, or a Reset partway through, never affect one another or the
// underlying section.
func (s *AckBlockSection) Iterator() *AckBlockIterator {
	return &AckBlockIterator{section: s}
}

// AckBlockIterator walks an AckBlockSection's additional blocks in
// order.
type AckBlockIterator struct {
	section *AckBlockSection
	index   int
}

// Reset rewinds the iterator to the first block.
func (it *AckBlockIterator) Reset() {
	it.index = 0
}

// Next returns the next block and true, or a zero AckBlock and false
// once the section is exhausted.
func (it *AckBlockIterator) Next() (AckBlock, bool) {
	if it.index >= it.section.numBlocks {
		return AckBlock{}, false
	}
	b, err := it.section.Block(it.index)
	if err != nil {
		return AckBlock{}, false
	}
	it.index++
	return b, true
}

// Size returns the exact encoded length of the section.
func (s *AckBlockSection) Size() int {
	w := s.blockLenWidth()
	return w + s.numBlocks*(1+w)
}

// Store serializes the section into dst.
func (s *AckBlockSection) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, s.Size()); err != nil {
		return 0, err
	}
	w := s.blockLenWidth()
	if err := varint.WriteUintBe(s.FirstAckBlockLength(), w, dst[:w]); err != nil {
		return 0, err
	}
	off := w
	for i := 0; i < s.numBlocks; i++ {
		b, err := s.Block(i)
		if err != nil {
			return 0, err
		}
		dst[off] = b.Gap
		off++
		// Each block's length is written at the advancing cursor, not
		// the section's base offset, so blocks after the first land at
		// their own position instead of overwriting one another.
		if err := varint.WriteUintBe(b.Length, w, dst[off:off+w]); err != nil {
			return 0, err
		}
		off += w
	}
	return off, nil
}
