// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/romtools/optrom/internal/log"
	"github.com/embeddedgo/romtools/optrom/internal/rom"
	"github.com/embeddedgo/romtools/optrom/internal/util"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const Descr = "check that an option ROM has the right size and checksum"

var lg = log.WithModule("check")

func Main(cmd string, args []string) {
	name, _ := parseArgs(cmd, args, flag.ExitOnError)
	util.FatalErr(cmd, Run(afero.NewOsFs(), name))
}

// parseArgs returns the name of the image to check.
func parseArgs(cmd string, args []string, h flag.ErrorHandling) (string, error) {
	fs := flag.NewFlagSet(cmd, h)
	fs.Usage = func() {
		fmt.Fprintf(
			fs.Output(), "Usage:\n  %s [ROM]\nROM defaults to %s.\n",
			cmd, util.DefaultROM,
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	switch fs.NArg() {
	case 0:
		return util.DefaultROM, nil
	case 1:
		return fs.Arg(0), nil
	}
	fs.Usage()
	if h == flag.ExitOnError {
		os.Exit(1)
	}
	return "", errors.New("too many arguments")
}

// Run reads the named image and verifies it with rom.Verify.
func Run(fsys afero.Fs, name string) error {
	img, err := util.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := rom.Verify(img); err != nil {
		return errors.Wrap(err, name)
	}
	lg.Info(
		"image ok",
		"rom", name, "size", len(img),
		"checksum", fmt.Sprintf("0x%02x", img[len(img)-1]),
	)
	return nil
}
