// This file is part of Vregress.
//
// Vregress is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Vregress is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Vregress.  If not, see <https://www.gnu.org/licenses/>.

// Package digest produces cryptographic hashes of test artifacts. A hash of
// a canonicalised trace can be compared against the hash of another to
// short-circuit a full structural comparison - if the hashes are equal then
// nothing has changed.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
)

// FromBytes returns the hash of the supplied byte slice
func FromBytes(b []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(b))
}

// FromReader returns the hash of all bytes read from the supplied reader
func FromReader(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FromFile returns the hash of the named file
func FromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return FromReader(f)
}
