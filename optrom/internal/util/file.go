// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ReadFile reads the whole named file. The file is closed before ReadFile
// returns.
func ReadFile(fsys afero.Fs, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return b, nil
}

// WriteFile replaces the named file with data. The data is written to a
// temporary file in the same directory which is then renamed to name, so
// name either keeps its old content or gets all of data.
func WriteFile(fsys afero.Fs, name string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	f, err := afero.TempFile(fsys, dir, "."+base+".*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			fsys.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err = f.Sync(); err != nil {
		return errors.Wrapf(err, "sync %s", tmp)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp)
	}
	if err = fsys.Chmod(tmp, perm); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp)
	}
	if err = fsys.Rename(tmp, name); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
