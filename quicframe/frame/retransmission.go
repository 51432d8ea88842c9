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

// RetransmissionFrame wraps a frame that was sent and lost, freezing
// its serialized bytes at wrap time and remembering which
// packet-number space it was originally sent in. The wrapped bytes
// never change even if the caller goes on to mutate the frame that
// produced them.
type RetransmissionFrame struct {
	class  PacketClass
	frozen []byte
	typ    FrameType
}

// NewRetransmissionFrame serializes inner once and wraps the result,
// tagged with the packet class it was originally sent in.
func NewRetransmissionFrame(inner Frame, class PacketClass) (*RetransmissionFrame, error) {
	buf := make([]byte, inner.Size())
	n, err := inner.Store(buf)
	if err != nil {
		return nil, err
	}
	return &RetransmissionFrame{class: class, frozen: buf[:n], typ: inner.Type()}, nil
}

// PacketClass returns the packet-number space the wrapped frame was
// originally sent in.
func (f *RetransmissionFrame) PacketClass() PacketClass { return f.class }

// Type returns the wrapped frame's variant.
func (f *RetransmissionFrame) Type() FrameType { return f.typ }

// Size returns the frozen byte length.
func (f *RetransmissionFrame) Size() int { return len(f.frozen) }

// Store copies the frozen bytes into dst.
func (f *RetransmissionFrame) Store(dst []byte) (int, error) {
	if err := checkStoreDst(dst, len(f.frozen)); err != nil {
		return 0, err
	}
	return copy(dst, f.frozen), nil
}
