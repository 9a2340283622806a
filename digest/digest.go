// This file is part of kvist.
//
// kvist is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kvist is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kvist.  If not, see <https://www.gnu.org/licenses/>.

// Package digest fingerprints a sequence of rendered frames.
//
// Each call to Add() chains the previous digest value with the new pixel
// data, so a single hash identifies an entire rendering sequence. The SHA-1
// algorithm is used because it's fast; this is not a cryptographic task.
//
// Digests are the backbone of regression-style tests: render a frame with
// the CPU reference implementation of the post-processing kernels, digest
// it and compare against a known-good digest of the same scene.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Frame accumulates a chained digest of pixel buffers.
type Frame struct {
	digest [sha1.Size]byte
	count  int
}

// Add pixel data to the digest. The digest is chained: the fingerprint of
// frame N depends on the fingerprints of all preceding frames.
func (dig *Frame) Add(pixels []byte) {
	b := make([]byte, len(dig.digest)+len(pixels))
	copy(b, dig.digest[:])
	copy(b[len(dig.digest):], pixels)
	dig.digest = sha1.Sum(b)
	dig.count++
}

// Hash returns the current digest value as a hex string.
func (dig Frame) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Count returns the number of frames that have been added.
func (dig Frame) Count() int {
	return dig.count
}

// Reset the digest to its initial state.
func (dig *Frame) Reset() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.count = 0
}
