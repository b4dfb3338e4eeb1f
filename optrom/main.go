// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Optrom finishes option ROM images.
//
// Run without arguments it reads option.rom.tmp from the current directory,
// pads it with zeros to 8 KiB, sets the last byte so that all bytes of the
// image sum to zero modulo 256 and writes the result to option.rom.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/embeddedgo/romtools/optrom/internal/cmd/check"
	"github.com/embeddedgo/romtools/optrom/internal/cmd/hex"
	"github.com/embeddedgo/romtools/optrom/internal/cmd/pad"
)

type tool struct {
	descr string
	main  func(cmd string, args []string)
}

var tools = map[string]tool{
	"check": {check.Descr, check.Main},
	"hex":   {hex.Descr, hex.Main},
	"pad":   {pad.Descr, pad.Main},
}

const defaultTool = "pad"

func printToolList() {
	names := slices.Sorted(maps.Keys(tools))
	maxLen := 0
	for _, k := range names {
		if maxLen < len(k) {
			maxLen = len(k)
		}
	}
	uw := os.Stderr
	uw.WriteString("Usage:\n  optrom [COMMAND [ARGUMENTS]]\n\n")
	uw.WriteString("Available commands (default " + defaultTool + "):\n")
	for _, name := range names {
		fmt.Fprintf(uw, "  %*s  %s\n", maxLen, name, tools[name].descr)
	}
}

func main() {
	if len(os.Args) < 2 {
		tools[defaultTool].main(defaultTool, nil)
		return
	}
	if os.Args[1] == "-h" {
		printToolList()
		return
	}
	tool, ok := tools[os.Args[1]]
	if !ok {
		printToolList()
		os.Exit(1)
	}
	tool.main(os.Args[1], os.Args[2:])
}
