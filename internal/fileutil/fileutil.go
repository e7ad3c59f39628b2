/*
Copyright The Modelkeep Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// TempSuffix marks the temporary files AtomicWriteFile leaves beside its
// destination while a write is in progress.
const TempSuffix = ".part"

// AtomicWriteFile atomically (as atomic as the filesystem allows) writes a file
// to disk without ever replacing an existing one.
//
// The content is streamed into a hidden temporary file in the destination
// directory and promoted to filename only once it is complete. On any failure
// the temporary file is removed and filename is left untouched. If filename
// exists at promotion time, the returned error matches os.ErrExist.
func AtomicWriteFile(filename string, reader io.Reader, mode os.FileMode) (err error) {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tempFile, err := os.CreateTemp(dir, "."+base+".*"+TempSuffix)
	if err != nil {
		return err
	}
	tempName := tempFile.Name()
	defer func() {
		if err != nil {
			os.Remove(tempName) // return value is ignored as we are already on error path
		}
	}()

	if _, err = io.Copy(tempFile, reader); err != nil {
		tempFile.Close() // return value is ignored as we are already on error path
		return err
	}
	if err = tempFile.Sync(); err != nil {
		tempFile.Close()
		return err
	}
	if err = tempFile.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tempName, mode); err != nil {
		return err
	}

	return renameNoReplace(tempName, filename)
}

// renameNoReplace moves src to dst, failing with an os.ErrExist error if dst
// already exists.
//
// A hard link gives the no-replace guarantee; filesystems without link support
// fall back to a plain rename after an existence check.
func renameNoReplace(src, dst string) error {
	err := os.Link(src, dst)
	if err == nil {
		return os.Remove(src)
	}
	if errors.Is(err, os.ErrExist) {
		return err
	}
	if _, serr := os.Lstat(dst); serr == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: os.ErrExist}
	}
	return os.Rename(src, dst)
}
