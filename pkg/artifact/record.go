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

/*
Package artifact describes the model artifacts kept in the local artifact root.

An artifact is a single binary file whose name carries the recognized
extension. Records are derived from the files themselves; nothing else is
persisted.
*/
package artifact

import (
	"io/fs"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Record describes one artifact stored on disk.
type Record struct {
	// ID identifies the record. It is derived from Path, so every scan of the
	// same file yields the same ID.
	ID string `json:"id"`
	// Name is the filename without the artifact extension.
	Name string `json:"name"`
	// Path is the absolute path to the artifact file.
	Path string `json:"path"`
	// SizeBytes is the size of the file measured after it was fully written.
	SizeBytes int64 `json:"sizeBytes"`
	// AcquiredAt is when the record was materialized.
	AcquiredAt time.Time `json:"acquiredAt"`
}

// NewRecord builds a record for the artifact file at path.
func NewRecord(path string, size int64, acquiredAt time.Time) *Record {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Record{
		ID:         IDFor(path),
		Name:       NameFromFile(filepath.Base(path)),
		Path:       path,
		SizeBytes:  size,
		AcquiredAt: acquiredAt,
	}
}

// RecordFromFileInfo builds a record from the metadata of a file found at path.
//
// The modification time stands in for the acquisition time since no other
// metadata is kept.
func RecordFromFileInfo(path string, fi fs.FileInfo) *Record {
	return NewRecord(path, fi.Size(), fi.ModTime())
}

// IDFor returns the record ID for an artifact path.
func IDFor(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(u.String())).String()
}

// ProgressFunc receives the completed fraction of a transfer, in [0.0, 1.0].
type ProgressFunc func(fraction float64)
