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

// Package frame implements the draft-QUIC frame codec: the frame-type
// classifier, the fifteen concrete frame variants, the ack-block
// section, the frame factory, and the retransmission wrapper.
package frame

// StreamID identifies a stream, varint-encoded on the wire.
type StreamID uint64

// Offset is a byte offset within a stream, varint-encoded on the wire.
type Offset uint64

// MaxData is a flow-control limit, varint-encoded on the wire.
type MaxData uint64

// AppErrorCode is an application-defined error code, fixed 16-bit on the wire.
type AppErrorCode uint16

// TransErrorCode is a transport-defined error code, fixed 16-bit on the wire.
type TransErrorCode uint16

// PacketNumber identifies a sent packet; width inside an ACK frame is
// chosen by the frame's LL field (1, 2, 4, or 8 bytes).
type PacketNumber uint64

// ConnectionID is an opaque connection identifier, fixed 8 bytes on the
// wire inside a NEW_CONNECTION_ID frame.
type ConnectionID [8]byte

// StatelessResetToken authenticates a connection-abort signal without
// per-connection state, fixed 16 bytes on the wire.
type StatelessResetToken [16]byte
