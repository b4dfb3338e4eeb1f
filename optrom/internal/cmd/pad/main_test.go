// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pad

import (
	"bytes"
	"os"
	"testing"

	"github.com/embeddedgo/romtools/optrom/internal/rom"
	"github.com/embeddedgo/romtools/optrom/internal/util"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newFs(t *testing.T, files map[string][]byte) afero.Fs {
	fsys := afero.NewMemMapFs()
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fsys, name, data, 0o644))
	}
	return fsys
}

func TestRun(t *testing.T) {
	fsys := newFs(t, map[string][]byte{util.DefaultSrc: {1, 2, 3}})

	sum, err := Run(fsys, util.DefaultSrc, util.DefaultROM)
	require.NoError(t, err)
	require.EqualValues(t, 250, sum)

	img, err := afero.ReadFile(fsys, util.DefaultROM)
	require.NoError(t, err)
	require.Len(t, img, rom.Size)
	require.Equal(t, []byte{1, 2, 3}, img[:3])
	require.Equal(t, make([]byte, rom.Size-4), img[3:rom.Size-1])
	require.EqualValues(t, 250, img[rom.Size-1])
	require.NoError(t, rom.Verify(img))
}

func TestRunSubdir(t *testing.T) {
	fsys := newFs(t, nil)
	require.NoError(t, fsys.MkdirAll("build", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "build/vdisk.bin", []byte("\xcb"), 0o644))

	_, err := Run(fsys, "build/vdisk.bin", "build/vdisk.rom")
	require.NoError(t, err)

	entries, err := afero.ReadDir(fsys, "build")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	require.ElementsMatch(t, []string{"vdisk.bin", "vdisk.rom"}, names)
}

func TestRunOverwrites(t *testing.T) {
	fsys := newFs(t, map[string][]byte{
		util.DefaultSrc: {},
		util.DefaultROM: bytes.Repeat([]byte{0xff}, 3*rom.Size),
	})
	sum, err := Run(fsys, util.DefaultSrc, util.DefaultROM)
	require.NoError(t, err)
	require.Zero(t, sum)

	img, err := afero.ReadFile(fsys, util.DefaultROM)
	require.NoError(t, err)
	require.Equal(t, make([]byte, rom.Size), img)
}

func TestRunFullBody(t *testing.T) {
	body := bytes.Repeat([]byte{0x01}, rom.MaxBody)
	fsys := newFs(t, map[string][]byte{"big.bin": body})

	sum, err := Run(fsys, "big.bin", "big.rom")
	require.NoError(t, err)
	require.Equal(t, rom.Checksum(body), sum)

	img, err := afero.ReadFile(fsys, "big.rom")
	require.NoError(t, err)
	require.Equal(t, body, img[:rom.MaxBody])
	require.NoError(t, rom.Verify(img))
}

func TestRunTooLarge(t *testing.T) {
	old := []byte("previous image")
	fsys := newFs(t, map[string][]byte{
		util.DefaultSrc: make([]byte, rom.Size),
		util.DefaultROM: old,
	})
	_, err := Run(fsys, util.DefaultSrc, util.DefaultROM)
	require.Error(t, err)
	require.True(t, errors.Is(err, rom.ErrTooLarge))

	b, err := afero.ReadFile(fsys, util.DefaultROM)
	require.NoError(t, err)
	require.Equal(t, old, b, "destination modified")
}

func TestRunMissingSource(t *testing.T) {
	fsys := newFs(t, nil)
	_, err := Run(fsys, util.DefaultSrc, util.DefaultROM)
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))

	_, err = fsys.Stat(util.DefaultROM)
	require.True(t, os.IsNotExist(err), "destination created")
}

func TestRunUnwritableDestination(t *testing.T) {
	base := newFs(t, map[string][]byte{util.DefaultSrc: {0x55, 0xaa}})
	_, err := Run(afero.NewReadOnlyFs(base), util.DefaultSrc, util.DefaultROM)
	require.Error(t, err)

	_, err = base.Stat(util.DefaultROM)
	require.True(t, os.IsNotExist(err), "destination created")
}
