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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cybergarage/go-quicframe/quicframe/frame"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "decode <hex>",
	Short: "Decode hex-encoded frame bytes.",
	Long:  "Decode one or more frames packed back to back in a hex-encoded byte string, stopping at the first unknown or malformed byte.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := NewFormatFromString(viper.GetString(FormatParamStr))
		if err != nil {
			return err
		}

		raw, err := hex.DecodeString(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid hex input: %w", err)
		}

		var frames []fieldSet
		for len(raw) > 0 {
			f, err := frame.Create(raw)
			if err != nil {
				return err
			}
			frames = append(frames, describeFrame(f))
			raw = raw[f.Size():]
			if f.Type() == frame.TypeUnknown {
				break
			}
		}

		switch format {
		case FormatJSON:
			return printFramesJSON(frames)
		default:
			return printFramesTable(frames)
		}
	},
}

// fieldSet is an ordered list of a decoded frame's field name/value
// pairs, used for both table and JSON rendering.
type fieldSet struct {
	Type   string
	Fields []fieldEntry
}

type fieldEntry struct {
	Name  string
	Value string
}

func describeFrame(f frame.Frame) fieldSet {
	fs := fieldSet{Type: f.Type().String()}
	add := func(name string, value any) {
		fs.Fields = append(fs.Fields, fieldEntry{Name: name, Value: fmt.Sprintf("%v", value)})
	}

	switch v := f.(type) {
	case *frame.PaddingFrame, *frame.PingFrame:
		// No fields.
	case *frame.RstStreamFrame:
		add("stream_id", v.StreamID())
		add("error_code", v.ErrorCode())
		add("final_offset", v.FinalOffset())
	case *frame.StopSendingFrame:
		add("stream_id", v.StreamID())
		add("error_code", v.ErrorCode())
	case *frame.ConnectionCloseFrame:
		add("error_code", v.ErrorCode())
		add("reason", string(v.Reason()))
	case *frame.ApplicationCloseFrame:
		add("error_code", v.ErrorCode())
		add("reason", string(v.Reason()))
	case *frame.MaxDataFrame:
		add("maximum", v.Maximum())
	case *frame.MaxStreamDataFrame:
		add("stream_id", v.StreamID())
		add("maximum", v.Maximum())
	case *frame.MaxStreamIDFrame:
		add("max_stream_id", v.MaxStreamID())
	case *frame.BlockedFrame:
		add("offset", v.Offset())
	case *frame.StreamBlockedFrame:
		add("stream_id", v.StreamID())
		add("offset", v.Offset())
	case *frame.StreamIDBlockedFrame:
		add("stream_id", v.StreamID())
	case *frame.NewConnectionIDFrame:
		add("sequence", v.Sequence())
		id := v.ConnectionID()
		add("connection_id", hex.EncodeToString(id[:]))
	case *frame.StreamFrame:
		add("stream_id", v.StreamID())
		if v.HasOffsetField() {
			add("offset", v.Offset())
		}
		add("fin", v.Fin())
		add("length", len(v.Data()))
		add("data", hex.EncodeToString(v.Data()))
	case *frame.AckFrame:
		add("largest_acknowledged", v.LargestAcknowledged())
		add("ack_delay", v.AckDelay())
		section := v.Section()
		add("first_ack_block_length", section.FirstAckBlockLength())
		add("num_blocks", section.NumBlocks())
	case *frame.NullFrame:
		add("type_byte", fmt.Sprintf("%#02x", v.TypeByte()))
	}
	return fs
}

func printFramesTable(frames []fieldSet) error {
	for i, fs := range frames {
		fmt.Fprintf(os.Stdout, "frame[%d]: %s\n", i, fs.Type)
		for _, f := range fs.Fields {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", f.Name, f.Value)
		}
	}
	return nil
}

func printFramesJSON(frames []fieldSet) error {
	type jsonFrame struct {
		Type   string            `json:"type"`
		Fields map[string]string `json:"fields"`
	}
	out := make([]jsonFrame, 0, len(frames))
	for _, fs := range frames {
		fields := make(map[string]string, len(fs.Fields))
		for _, f := range fs.Fields {
			fields[f.Name] = f.Value
		}
		out = append(out, jsonFrame{Type: fs.Type, Fields: fields})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(b))
	return nil
}
