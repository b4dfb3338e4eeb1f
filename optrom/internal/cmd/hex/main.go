// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"bytes"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/embeddedgo/romtools/optrom/internal/log"
	"github.com/embeddedgo/romtools/optrom/internal/rom"
	"github.com/embeddedgo/romtools/optrom/internal/util"
	"github.com/marcinbor85/gohex"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const Descr = "convert an option ROM to the Intel HEX format"

var lg = log.WithModule("hex")

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] [ROM [%s]]\nOptions:\n",
			cmd, strings.ToUpper(cmd),
		)
		fs.PrintDefaults()
	}
	addr := fs.Uint64(
		"addr", rom.LoadAddr,
		"load `address` of the ROM image",
	)
	line := fs.Int("line", 16, "number of data `bytes` per HEX record")
	fs.Parse(args)
	if fs.NArg() > 2 {
		fs.Usage()
		os.Exit(1)
	}
	if *addr > math.MaxUint32 {
		util.Fatal("%s: the address %#x doesn't fit in 32 bits", cmd, *addr)
	}
	if *line < 1 || *line > 255 {
		util.Fatal("%s: bad record length: %d", cmd, *line)
	}
	in, out := util.InOutFiles(fs.Arg(0), util.DefaultROM, ".rom", fs.Arg(1), ".hex")
	util.FatalErr(cmd, Run(afero.NewOsFs(), in, out, uint32(*addr), byte(*line)))
}

// ErrAddrRange is returned by Run if the image placed at the requested
// address does not fit in the 32-bit address space.
var ErrAddrRange = errors.New("image doesn't fit in 32-bit address space")

// Run converts the finished image in to Intel HEX records that place it at
// addr and writes them to out. Images that fail rom.Verify are rejected.
func Run(fsys afero.Fs, in, out string, addr uint32, line byte) error {
	if uint64(addr)+rom.Size > 1<<32 {
		return errors.Wrapf(ErrAddrRange, "address %#x", addr)
	}
	img, err := util.ReadFile(fsys, in)
	if err != nil {
		return err
	}
	if err = rom.Verify(img); err != nil {
		return errors.Wrap(err, in)
	}
	mem := gohex.NewMemory()
	if err = mem.AddBinary(addr, img); err != nil {
		return errors.Wrap(err, "addbinary")
	}
	var buf bytes.Buffer
	if err = mem.DumpIntelHex(&buf, line); err != nil {
		return errors.Wrap(err, "dumpintelhex")
	}
	if err = util.WriteFile(fsys, out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, out)
	}
	lg.Info("hex written", "rom", in, "hex", out, "addr", fmt.Sprintf("%#x", addr))
	return nil
}
