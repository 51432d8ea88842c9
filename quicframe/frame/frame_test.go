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
	"bytes"
	"errors"
	"testing"

	"github.com/cybergarage/go-quicframe/quicframe/qerrors"
)

func storeAll(t *testing.T, f Frame) []byte {
	t.Helper()
	buf := make([]byte, f.Size())
	n, err := f.Store(buf)
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if n != f.Size() {
		t.Errorf("Store wrote %d bytes, want Size() = %d", n, f.Size())
	}
	return buf
}

func TestPaddingWireForm(t *testing.T) {
	f := NewPaddingFrame()
	buf := storeAll(t, f)
	if !bytes.Equal(buf, []byte{0x00}) {
		t.Errorf("PADDING wire form = % x, want 00", buf)
	}
}

func TestPingWireForm(t *testing.T) {
	f := NewPingFrame()
	buf := storeAll(t, f)
	if !bytes.Equal(buf, []byte{0x07}) {
		t.Errorf("PING wire form = % x, want 07", buf)
	}
}

func TestMaxDataWireForm(t *testing.T) {
	// Worked example: MAX_DATA with maximum = 1024 encodes as 04 44 00.
	f := NewMaxDataFrame(1024)
	buf := storeAll(t, f)
	want := []byte{0x04, 0x44, 0x00}
	if !bytes.Equal(buf, want) {
		t.Errorf("MAX_DATA wire form = % x, want % x", buf, want)
	}

	parsed, err := ParseMaxDataFrame(buf)
	if err != nil {
		t.Fatalf("ParseMaxDataFrame failed: %v", err)
	}
	if parsed.Maximum() != 1024 {
		t.Errorf("parsed Maximum() = %d, want 1024", parsed.Maximum())
	}
}

func TestRstStreamWireForm(t *testing.T) {
	// RST_STREAM stream_id=1, error_code=0, final_offset=0x2a.
	f := NewRstStreamFrame(1, 0, 0x2a)
	buf := storeAll(t, f)
	want := []byte{0x01, 0x01, 0x00, 0x00, 0x2a}
	if !bytes.Equal(buf, want) {
		t.Errorf("RST_STREAM wire form = % x, want % x", buf, want)
	}
}

func TestStreamWireFormFinOnly(t *testing.T) {
	// Worked example: STREAM, stream_id=4, fin, data="Hi" encodes as 11 04 48 69.
	f := NewStreamFrame(4, []byte("Hi"), WithStreamFin())
	buf := storeAll(t, f)
	want := []byte{0x11, 0x04, 0x48, 0x69}
	if !bytes.Equal(buf, want) {
		t.Errorf("STREAM wire form = % x, want % x", buf, want)
	}

	parsed, err := ParseStreamFrame(buf)
	if err != nil {
		t.Fatalf("ParseStreamFrame failed: %v", err)
	}
	if parsed.StreamID() != 4 || !parsed.Fin() || string(parsed.Data()) != "Hi" {
		t.Errorf("parsed stream frame mismatch: id=%d fin=%v data=%q", parsed.StreamID(), parsed.Fin(), parsed.Data())
	}
	if parsed.HasOffsetField() || parsed.HasLengthField() {
		t.Errorf("unexpected offset/length field on minimal STREAM frame")
	}
}

func TestStreamHasLengthFieldTracksBuilder(t *testing.T) {
	withLen := NewStreamFrame(1, []byte("x"), WithStreamLengthField())
	if !withLen.HasLengthField() {
		t.Errorf("HasLengthField() = false, want true when WithStreamLengthField supplied")
	}

	withoutLen := NewStreamFrame(1, []byte("x"))
	if withoutLen.HasLengthField() {
		t.Errorf("HasLengthField() = true, want false when the option was not supplied")
	}
}

func TestStreamWithOffsetAndLength(t *testing.T) {
	f := NewStreamFrame(9, []byte("payload"), WithStreamOffset(42), WithStreamLengthField())
	buf := storeAll(t, f)

	parsed, err := ParseStreamFrame(buf)
	if err != nil {
		t.Fatalf("ParseStreamFrame failed: %v", err)
	}
	if parsed.StreamID() != 9 || parsed.Offset() != 42 || !parsed.HasOffsetField() || !parsed.HasLengthField() {
		t.Fatalf("unexpected parsed fields: %+v", parsed)
	}
	if string(parsed.Data()) != "payload" {
		t.Errorf("parsed Data() = %q, want %q", parsed.Data(), "payload")
	}
}

func TestMaxStreamDataIndependentFieldWidths(t *testing.T) {
	// A small stream id paired with a large maximum, and the reverse.
	// Each field's width must come from its own value.
	f1 := NewMaxStreamDataFrame(1, 1<<20)
	buf1 := storeAll(t, f1)
	p1, err := ParseMaxStreamDataFrame(buf1)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p1.StreamID() != 1 || p1.Maximum() != 1<<20 {
		t.Errorf("got streamID=%d maximum=%d", p1.StreamID(), p1.Maximum())
	}

	f2 := NewMaxStreamDataFrame(1<<20, 1)
	buf2 := storeAll(t, f2)
	p2, err := ParseMaxStreamDataFrame(buf2)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p2.StreamID() != 1<<20 || p2.Maximum() != 1 {
		t.Errorf("got streamID=%d maximum=%d", p2.StreamID(), p2.Maximum())
	}
}

func TestStreamBlockedIndependentFieldWidths(t *testing.T) {
	f := NewStreamBlockedFrame(1<<20, 2)
	buf := storeAll(t, f)
	parsed, err := ParseStreamBlockedFrame(buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.StreamID() != 1<<20 || parsed.Offset() != 2 {
		t.Errorf("got streamID=%d offset=%d", parsed.StreamID(), parsed.Offset())
	}
}

func TestStopSendingFixedSize(t *testing.T) {
	f := NewStopSendingFrame(0xdeadbeef, 7)
	if f.Size() != 7 {
		t.Fatalf("Size() = %d, want 7", f.Size())
	}
	buf := storeAll(t, f)
	parsed, err := ParseStopSendingFrame(buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.StreamID() != 0xdeadbeef || parsed.ErrorCode() != 7 {
		t.Errorf("got streamID=%#x errorCode=%d", parsed.StreamID(), parsed.ErrorCode())
	}
}

func TestNewConnectionIDRoundTrip(t *testing.T) {
	var id ConnectionID
	copy(id[:], []byte{1, 2, 3, 4, 5, 6, 7, 8})
	var tok StatelessResetToken
	copy(tok[:], bytes.Repeat([]byte{0xaa}, 16))

	f := NewNewConnectionIDFrame(3, id, tok)
	if f.Size() != 27 {
		t.Fatalf("Size() = %d, want 27", f.Size())
	}
	buf := storeAll(t, f)
	parsed, err := ParseNewConnectionIDFrame(buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Sequence() != 3 || parsed.ConnectionID() != id || parsed.ResetToken() != tok {
		t.Errorf("round trip mismatch")
	}
}

func TestConnectionCloseReasonIsBufferSubslice(t *testing.T) {
	f := NewConnectionCloseFrame(0x01, []byte("bye"))
	buf := storeAll(t, f)

	parsed, err := ParseConnectionCloseFrame(buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	reason := parsed.Reason()
	if string(reason) != "bye" {
		t.Fatalf("Reason() = %q, want %q", reason, "bye")
	}
	// The returned slice must alias buf, not a copy of it.
	buf[len(buf)-1] = 'Z'
	if reason[len(reason)-1] != 'Z' {
		t.Errorf("Reason() did not alias the backing buffer")
	}
}

func TestAckRoundTrip(t *testing.T) {
	blocks := []AckBlock{{Gap: 2, Length: 3}, {Gap: 1, Length: 0x10000}}
	f := NewAckFrame(100, 50, 5, blocks)
	buf := storeAll(t, f)

	parsed, err := ParseAckFrame(buf)
	if err != nil {
		t.Fatalf("ParseAckFrame failed: %v", err)
	}
	if parsed.LargestAcknowledged() != 100 || parsed.AckDelay() != 50 {
		t.Fatalf("got largestAcknowledged=%d ackDelay=%d", parsed.LargestAcknowledged(), parsed.AckDelay())
	}
	section := parsed.Section()
	if section.FirstAckBlockLength() != 5 || section.NumBlocks() != 2 {
		t.Fatalf("got firstAckBlockLength=%d numBlocks=%d", section.FirstAckBlockLength(), section.NumBlocks())
	}
	it := section.Iterator()
	for i, want := range blocks {
		got, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted early at block %d", i)
		}
		if got != want {
			t.Errorf("block %d = %+v, want %+v", i, got, want)
		}
	}
	if _, ok := it.Next(); ok {
		t.Errorf("iterator did not exhaust after %d blocks", len(blocks))
	}

	// Restartable: a second pass over the same iterator after Reset
	// yields the same blocks, and does not disturb the section.
	it.Reset()
	first, ok := it.Next()
	if !ok || first != blocks[0] {
		t.Errorf("iterator did not restart correctly: got %+v, ok=%v", first, ok)
	}
}

func TestAckBlockSectionCursorAdvancesPerBlock(t *testing.T) {
	// Each block's length must land at its own offset, not the
	// section's base offset, once more than one block is present.
	blocks := []AckBlock{{Gap: 1, Length: 0xaa}, {Gap: 2, Length: 0xbb}, {Gap: 3, Length: 0xcc}}
	section := NewAckBlockSection(1, 0x10, blocks)
	buf := make([]byte, section.Size())
	if _, err := section.Store(buf); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	parsed, err := ParseAckBlockSection(buf, 1, len(blocks))
	if err != nil {
		t.Fatalf("ParseAckBlockSection failed: %v", err)
	}
	for i, want := range blocks {
		got, err := parsed.Block(i)
		if err != nil {
			t.Fatalf("Block(%d) failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Block(%d) = %+v, want %+v", i, got, want)
		}
	}
}

func TestAckNoBlocksOmitsNumBlocksByte(t *testing.T) {
	f := NewAckFrame(1, 0, 0, nil)
	buf := storeAll(t, f)
	if buf[0]&ackNumBlocksBit != 0 {
		t.Errorf("N bit set with zero additional blocks")
	}
}

func TestUnknownFrameTypeYieldsNullFrame(t *testing.T) {
	f, err := Create([]byte{0xff})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if f.Type() != TypeUnknown {
		t.Errorf("Type() = %v, want TypeUnknown", f.Type())
	}
	if f.Size() != 1 {
		t.Errorf("Size() = %d, want 1", f.Size())
	}
	nf, ok := f.(*NullFrame)
	if !ok || nf.TypeByte() != 0xff {
		t.Errorf("expected NullFrame echoing 0xff, got %+v", f)
	}
}

func TestCreateTruncatedStream(t *testing.T) {
	// A STREAM frame header claiming an offset field, with nothing
	// following the stream id.
	_, err := Create([]byte{0x14, 0x01})
	if !errors.Is(err, qerrors.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestCreateTruncatedVarint(t *testing.T) {
	// First byte claims a 4-byte varint but only 1 byte follows.
	_, err := Create([]byte{0x04, 0x80})
	if !errors.Is(err, qerrors.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestFactoryFastCreateReusesInstance(t *testing.T) {
	fy := NewFactory()
	first, err := fy.FastCreate([]byte{0x07})
	if err != nil {
		t.Fatalf("FastCreate failed: %v", err)
	}
	second, err := fy.FastCreate([]byte{0x07})
	if err != nil {
		t.Fatalf("FastCreate failed: %v", err)
	}
	if first != second {
		t.Errorf("FastCreate did not reuse the cached instance for repeated calls of the same type")
	}
}

func TestFactoryFastCreateDifferentTypes(t *testing.T) {
	fy := NewFactory()
	padding, err := fy.FastCreate([]byte{0x00})
	if err != nil {
		t.Fatalf("FastCreate failed: %v", err)
	}
	ping, err := fy.FastCreate([]byte{0x07})
	if err != nil {
		t.Fatalf("FastCreate failed: %v", err)
	}
	if padding.Type() != TypePadding || ping.Type() != TypePing {
		t.Errorf("got types %v and %v", padding.Type(), ping.Type())
	}
}

func TestRetransmissionFrameFreezesBytes(t *testing.T) {
	inner := NewPingFrame()
	rt, err := NewRetransmissionFrame(inner, PacketClassHandshake)
	if err != nil {
		t.Fatalf("NewRetransmissionFrame failed: %v", err)
	}
	if rt.PacketClass() != PacketClassHandshake {
		t.Errorf("PacketClass() = %v, want Handshake", rt.PacketClass())
	}
	if rt.Type() != TypePing {
		t.Errorf("Type() = %v, want Ping", rt.Type())
	}
	buf := storeAll(t, rt)
	if !bytes.Equal(buf, []byte{0x07}) {
		t.Errorf("frozen wire form = % x, want 07", buf)
	}
}
