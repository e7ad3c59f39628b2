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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "tiny.gguf")

	r := NewRecord(path, 1000, now)
	assert.Equal(t, "tiny", r.Name)
	assert.Equal(t, path, r.Path)
	assert.Equal(t, int64(1000), r.SizeBytes)
	assert.Equal(t, now, r.AcquiredAt)
	assert.NotEmpty(t, r.ID)
}

func TestIDForIsStable(t *testing.T) {
	dir := t.TempDir()
	a := IDFor(filepath.Join(dir, "a.gguf"))
	assert.Equal(t, a, IDFor(filepath.Join(dir, "a.gguf")))
	assert.NotEqual(t, a, IDFor(filepath.Join(dir, "b.gguf")))
}

func TestRecordFromFileInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.gguf")
	require.NoError(t, os.WriteFile(path, make([]byte, 42), 0644))
	fi, err := os.Stat(path)
	require.NoError(t, err)

	r := RecordFromFileInfo(path, fi)
	assert.Equal(t, "x", r.Name)
	assert.Equal(t, int64(42), r.SizeBytes)
	assert.Equal(t, fi.ModTime(), r.AcquiredAt)
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("connection reset")

	var err error = &DownloadError{Name: "m.gguf", Err: cause}
	assert.True(t, errors.Is(err, ErrDownloadFailed))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrDeleteFailed))
	var de *DownloadError
	assert.True(t, errors.As(errors.Wrap(err, "pull"), &de))
	assert.Equal(t, "m.gguf", de.Name)

	err = &DeleteError{Path: "/x.gguf", Err: cause}
	assert.True(t, errors.Is(err, ErrDeleteFailed))

	err = &ScanError{Root: "/models", Err: cause}
	assert.True(t, errors.Is(err, ErrScanFailed))

	assert.True(t, errors.Is(NameCollision("m.gguf"), ErrNameCollision))
	assert.True(t, errors.Is(InvalidInputf("bad %s", "url"), ErrInvalidInput))
	assert.Contains(t, InvalidInputf("bad %s", "url").Error(), "bad url")
}
