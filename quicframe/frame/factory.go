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

	"github.com/cybergarage/go-logger/log"

	"github.com/cybergarage/go-quicframe/quicframe/qerrors"
)

// Create classifies the first byte of buf and parses a borrowed frame
// of the matching variant. An unrecognized first byte yields a
// NullFrame rather than an error.
func Create(buf []byte) (Frame, error) {
	if len(buf) < 1 {
		return nil, fmt.Errorf("%w: empty buffer", qerrors.ErrTruncated)
	}
	switch ClassifyFrameType(buf[0]) {
	case TypePadding:
		return ParsePaddingFrame(buf)
	case TypeRstStream:
		return ParseRstStreamFrame(buf)
	case TypeConnectionClose:
		return ParseConnectionCloseFrame(buf)
	case TypeApplicationClose:
		return ParseApplicationCloseFrame(buf)
	case TypeMaxData:
		return ParseMaxDataFrame(buf)
	case TypeMaxStreamData:
		return ParseMaxStreamDataFrame(buf)
	case TypeMaxStreamID:
		return ParseMaxStreamIDFrame(buf)
	case TypePing:
		return ParsePingFrame(buf)
	case TypeBlocked:
		return ParseBlockedFrame(buf)
	case TypeStreamBlocked:
		return ParseStreamBlockedFrame(buf)
	case TypeStreamIDBlocked:
		return ParseStreamIDBlockedFrame(buf)
	case TypeNewConnectionID:
		return ParseNewConnectionIDFrame(buf)
	case TypeStopSending:
		return ParseStopSendingFrame(buf)
	case TypeStream:
		return ParseStreamFrame(buf)
	case TypeAck:
		return ParseAckFrame(buf)
	default:
		log.Debugf("quic_frame_factory: unknown frame type %#x", buf[0])
		return ParseNullFrame(buf)
	}
}

// rebindable is implemented by every concrete frame type Factory caches;
// rebind repoints the frame at a new borrowed buffer without allocating
// a new struct.
type rebindable interface {
	Frame
	rebind(buf []byte)
}

// Factory parses frames while reusing one instance per frame type
// across calls, avoiding an allocation per parsed frame. A Factory is
// NOT safe for concurrent use: callers sharing one across goroutines
// must synchronize externally, or use Create (or one Factory per
// goroutine) instead.
type Factory struct {
	cache map[FrameType]rebindable
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{cache: make(map[FrameType]rebindable)}
}

// FastCreate classifies the first byte of buf and returns a frame of
// the matching variant, reusing the Factory's cached instance for that
// type when one already exists. The returned Frame is only valid until
// the next FastCreate call for the same type on this Factory.
func (fy *Factory) FastCreate(buf []byte) (Frame, error) {
	if len(buf) < 1 {
		return nil, fmt.Errorf("%w: empty buffer", qerrors.ErrTruncated)
	}
	t := ClassifyFrameType(buf[0])

	if cached, ok := fy.cache[t]; ok {
		cached.rebind(buf)
		if _, err := probeSize(cached); err != nil {
			return nil, err
		}
		return cached, nil
	}

	f, err := Create(buf)
	if err != nil {
		return nil, err
	}
	if r, ok := f.(rebindable); ok {
		fy.cache[t] = r
	}
	return f, nil
}

// probeSize forces a frame's accessors to walk its backing buffer once,
// surfacing a truncation error from a rebound cache entry the same way
// a fresh parse would.
func probeSize(f Frame) (int, error) {
	n := f.Size()
	if n <= 0 {
		return 0, fmt.Errorf("%w: frame reported zero size", qerrors.ErrTruncated)
	}
	return n, nil
}
