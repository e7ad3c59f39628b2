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

package artifact

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput indicates a malformed request rejected before any I/O.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNameCollision indicates that the destination name is already taken.
	ErrNameCollision = errors.New("artifact already exists")
	// ErrDownloadFailed indicates a transport or write failure during a transfer.
	ErrDownloadFailed = errors.New("download failed")
	// ErrDeleteFailed indicates an I/O failure while removing an artifact.
	ErrDeleteFailed = errors.New("delete failed")
	// ErrScanFailed indicates that the artifact root could not be fully read.
	ErrScanFailed = errors.New("scan failed")
)

// InvalidInputf returns an error matching ErrInvalidInput.
func InvalidInputf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// NameCollision returns an error matching ErrNameCollision for the given file name.
func NameCollision(name string) error {
	return errors.Wrapf(ErrNameCollision, "%q", name)
}

// DownloadError reports a failed transfer and carries its cause.
type DownloadError struct {
	Name string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of %q failed: %s", e.Name, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Is makes every DownloadError match ErrDownloadFailed.
func (e *DownloadError) Is(target error) bool { return target == ErrDownloadFailed }

// DeleteError reports a failed removal and carries its cause.
type DeleteError struct {
	Path string
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("could not delete %s: %s", e.Path, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Is makes every DeleteError match ErrDeleteFailed.
func (e *DeleteError) Is(target error) bool { return target == ErrDeleteFailed }

// ScanError reports a problem reading the artifact root.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("could not scan %s: %s", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Is makes every ScanError match ErrScanFailed.
func (e *ScanError) Is(target error) bool { return target == ErrScanFailed }
