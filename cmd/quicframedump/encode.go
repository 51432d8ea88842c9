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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybergarage/go-quicframe/quicframe/frame"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.AddCommand(encodeStreamCmd)
	encodeCmd.AddCommand(encodePingCmd)
	encodeCmd.AddCommand(encodePaddingCmd)
	encodeCmd.AddCommand(encodeMaxDataCmd)
	encodeCmd.AddCommand(encodeRstStreamCmd)

	encodeStreamCmd.Flags().Uint64("id", 0, "stream id")
	encodeStreamCmd.Flags().String("data", "", "stream data")
	encodeStreamCmd.Flags().Uint64("offset", 0, "stream offset")
	encodeStreamCmd.Flags().Bool("with-offset", false, "include the offset field even when it is zero")
	encodeStreamCmd.Flags().Bool("with-length", false, "include an explicit length field")
	encodeStreamCmd.Flags().Bool("fin", false, "mark this as the final frame of the stream")

	encodeMaxDataCmd.Flags().Uint64("maximum", 0, "new connection-level data limit")

	encodeRstStreamCmd.Flags().Uint64("id", 0, "stream id")
	encodeRstStreamCmd.Flags().Uint16("error-code", 0, "application error code")
	encodeRstStreamCmd.Flags().Uint64("final-offset", 0, "final stream offset")
}

var encodeCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "encode",
	Short: "Build a frame from field values and print its hex wire form.",
}

func printWireForm(f frame.Frame) error {
	buf := make([]byte, f.Size())
	if _, err := f.Store(buf); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, hex.EncodeToString(buf))
	return nil
}

var encodeStreamCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "stream",
	Short: "Build a STREAM frame.",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetUint64("id")
		data, _ := cmd.Flags().GetString("data")
		offset, _ := cmd.Flags().GetUint64("offset")
		withOffset, _ := cmd.Flags().GetBool("with-offset")
		withLength, _ := cmd.Flags().GetBool("with-length")
		fin, _ := cmd.Flags().GetBool("fin")

		opts := []frame.StreamFrameOption{}
		if withOffset || offset != 0 {
			opts = append(opts, frame.WithStreamOffset(frame.Offset(offset)))
		}
		if withLength {
			opts = append(opts, frame.WithStreamLengthField())
		}
		if fin {
			opts = append(opts, frame.WithStreamFin())
		}

		f := frame.NewStreamFrame(frame.StreamID(id), []byte(data), opts...)
		return printWireForm(f)
	},
}

var encodePingCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "ping",
	Short: "Build a PING frame.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printWireForm(frame.NewPingFrame())
	},
}

var encodePaddingCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "padding",
	Short: "Build a PADDING frame.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printWireForm(frame.NewPaddingFrame())
	},
}

var encodeMaxDataCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "max-data",
	Short: "Build a MAX_DATA frame.",
	RunE: func(cmd *cobra.Command, args []string) error {
		maximum, _ := cmd.Flags().GetUint64("maximum")
		return printWireForm(frame.NewMaxDataFrame(frame.MaxData(maximum)))
	},
}

var encodeRstStreamCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "rst-stream",
	Short: "Build an RST_STREAM frame.",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetUint64("id")
		errorCode, _ := cmd.Flags().GetUint16("error-code")
		finalOffset, _ := cmd.Flags().GetUint64("final-offset")
		f := frame.NewRstStreamFrame(frame.StreamID(id), frame.AppErrorCode(errorCode), frame.Offset(finalOffset))
		return printWireForm(f)
	},
}
