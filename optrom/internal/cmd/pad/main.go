// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pad

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

const Descr = "pad an option ROM to 8 KiB and append the checksum byte"

var lg = log.WithModule("pad")

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] [SRC [ROM]]\n"+
				"SRC defaults to %s, ROM defaults to %s.\nOptions:\n",
			cmd, util.DefaultSrc, util.DefaultROM,
		)
		fs.PrintDefaults()
	}
	quiet := fs.Bool("quiet", false, "do not print diagnostic information")
	fs.Parse(args)
	if fs.NArg() > 2 {
		fs.Usage()
		os.Exit(1)
	}
	if *quiet {
		log.SetLevel(log.LevelWarn)
	}
	src, dst := util.DefaultSrc, util.DefaultROM
	if fs.NArg() > 0 {
		src = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		dst = fs.Arg(1)
	}
	_, err := Run(afero.NewOsFs(), src, dst)
	util.FatalErr(cmd, err)
}

// Run reads src, pads it to rom.Size bytes with the checksum byte at the end
// and writes the result to dst. It returns the checksum byte. dst is left
// untouched if Run fails.
func Run(fsys afero.Fs, src, dst string) (byte, error) {
	body, err := util.ReadFile(fsys, src)
	if err != nil {
		return 0, err
	}
	img, err := rom.Pad(body)
	if err != nil {
		return 0, errors.Wrap(err, src)
	}
	if err := util.WriteFile(fsys, dst, img, 0o644); err != nil {
		return 0, errors.Wrap(err, dst)
	}
	sum := img[rom.Size-1]
	lg.Info(
		"image written",
		"src", src, "rom", dst,
		"body", len(body), "padding", rom.MaxBody-len(body),
		"checksum", fmt.Sprintf("0x%02x", sum),
	)
	return sum, nil
}
