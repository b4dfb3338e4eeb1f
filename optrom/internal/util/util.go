// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"strings"
)

// Default file names, relative to the current working directory.
const (
	DefaultSrc = "option.rom.tmp"
	DefaultROM = "option.rom"
)

// Fatal prints the formatted message and exits the program with status 1.
func Fatal(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	os.Stderr.WriteString(s)
	os.Exit(1)
}

// InOutFiles returns inName or defIn if inName is empty. If outName is empty
// the output name is derived from the input name by replacing inSuffix with
// outSuffix.
func InOutFiles(inName, defIn, inSuffix, outName, outSuffix string) (string, string) {
	if inName == "" {
		inName = defIn
	}
	if outName == "" {
		outName = strings.TrimSuffix(inName, inSuffix) + outSuffix
	}
	return inName, outName
}
