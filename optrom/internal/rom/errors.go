// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTooLarge = errors.New("image body too large")
	ErrBadSize  = errors.New("bad image size")
	ErrBadSum   = errors.New("bad image checksum")
)

// SizeError reports an image or image body of the wrong length.
type SizeError struct {
	Len int   // actual length
	Max int   // allowed length
	Err error // ErrTooLarge or ErrBadSize
}

func (e *SizeError) Error() string {
	if e.Err == ErrTooLarge {
		return fmt.Sprintf("%v: %d bytes (max %d)", e.Err, e.Len, e.Max)
	}
	return fmt.Sprintf("%v: %d bytes (want %d)", e.Err, e.Len, e.Max)
}

func (e *SizeError) Unwrap() error { return e.Err }

// SumError reports an image whose bytes do not sum to zero modulo 256.
type SumError struct {
	Sum byte // byte sum of the image modulo 256
}

func (e *SumError) Error() string {
	return fmt.Sprintf("%v: sum is 0x%02x, want 0", ErrBadSum, e.Sum)
}

func (e *SumError) Unwrap() error { return ErrBadSum }
