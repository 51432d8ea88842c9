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

// PacketClass identifies which packet-number space a retransmitted
// frame originated in. A frame lost in one space is only ever
// retransmitted in that same space.
type PacketClass int

const (
	// PacketClassInitial is the packet-number space used before any
	// keys are established.
	PacketClassInitial PacketClass = iota
	// PacketClassHandshake is the packet-number space used during the
	// handshake, once handshake keys are available.
	PacketClassHandshake
	// PacketClassZeroRTT is the packet-number space used for 0-RTT
	// application data sent before the handshake completes.
	PacketClassZeroRTT
	// PacketClassOneRTT is the packet-number space used for ordinary,
	// fully protected application data.
	PacketClassOneRTT
)

// String returns a human-readable packet class name.
func (c PacketClass) String() string {
	switch c {
	case PacketClassInitial:
		return "Initial"
	case PacketClassHandshake:
		return "Handshake"
	case PacketClassZeroRTT:
		return "ZeroRTT"
	case PacketClassOneRTT:
		return "OneRTT"
	default:
		return "Unknown"
	}
}
