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

// Package quicframe is a codec for the frames carried inside an early
// draft QUIC packet payload: stream data, acknowledgements, flow-control
// updates, connection-lifecycle signals, and connection-identity
// management. See the quicframe/frame package for the codec itself.
package quicframe

const (
	// Version is the module version string.
	Version = "0.1.0"
)
