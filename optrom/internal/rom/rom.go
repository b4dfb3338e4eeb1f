// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rom builds and checks option ROM images. An image is exactly Size
// bytes long and all its bytes sum to zero modulo 256. The last byte of the
// image is the checksum byte that makes the sum come out to zero.
package rom

const (
	Size    = 8192     // total image size
	MaxBody = Size - 1 // room for the body and the padding

	// LoadAddr is the guest physical address the board maps the option
	// ROM to.
	LoadAddr = 0xC8000
)

// Sum returns the plain sum of all bytes in b.
func Sum(b []byte) uint64 {
	var sum uint64
	for _, c := range b {
		sum += uint64(c)
	}
	return sum
}

// Checksum returns the byte that, appended to b, makes the sum of all bytes
// a multiple of 256.
func Checksum(b []byte) byte {
	r := Sum(b) % 256
	if r == 0 {
		return 0
	}
	return byte(256 - r)
}

// Pad returns a new Size-byte image made of b, zero padding and the checksum
// byte. It returns *SizeError if b does not fit in MaxBody bytes. b is not
// modified.
func Pad(b []byte) ([]byte, error) {
	if len(b) > MaxBody {
		return nil, &SizeError{Len: len(b), Max: MaxBody, Err: ErrTooLarge}
	}
	img := make([]byte, Size)
	copy(img, b)
	img[Size-1] = Checksum(b)
	return img, nil
}

// Verify checks that img is a finished image: Size bytes long with a byte
// sum of zero modulo 256.
func Verify(img []byte) error {
	if len(img) != Size {
		return &SizeError{Len: len(img), Max: Size, Err: ErrBadSize}
	}
	if s := Sum(img) % 256; s != 0 {
		return &SumError{Sum: byte(s)}
	}
	return nil
}
