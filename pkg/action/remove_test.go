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

package action

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelkeep.sh/modelkeep/pkg/artifact"
)

func TestRemove(t *testing.T) {
	tests := []struct {
		name string
		ref  func(r *artifact.Record) string
	}{
		{"by name", func(r *artifact.Record) string { return r.Name }},
		{"by file name", func(r *artifact.Record) string { return r.Name + artifact.Ext }},
		{"by id", func(r *artifact.Record) string { return r.ID }},
		{"by path", func(r *artifact.Record) string { return r.Path }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := actionConfigFixture(t)
			writeArtifact(t, cfg.Root, "tiny.gguf", 4)
			writeArtifact(t, cfg.Root, "keep.gguf", 4)
			require.NoError(t, cfg.Load())
			rec, ok := cfg.Store.Find("tiny")
			require.True(t, ok)

			deleted, err := NewRemove(cfg).Run(tt.ref(rec))
			require.NoError(t, err)
			assert.True(t, deleted)
			assert.Equal(t, []string{"keep"}, recordNames(cfg))
			assert.Equal(t, []string{"keep.gguf"}, dirNames(t, cfg.Root))
			assertArtifactGauge(t, cfg, 1)
		})
	}
}

func TestRemoveExternallyDeleted(t *testing.T) {
	cfg := actionConfigFixture(t)
	path := writeArtifact(t, cfg.Root, "gone.gguf", 4)
	require.NoError(t, cfg.Load())
	require.NoError(t, os.Remove(path))

	deleted, err := NewRemove(cfg).Run("gone")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Zero(t, cfg.Store.Len())
}

func TestRemoveUnknown(t *testing.T) {
	cfg := actionConfigFixture(t)
	writeArtifact(t, cfg.Root, "keep.gguf", 4)
	require.NoError(t, cfg.Load())

	deleted, err := NewRemove(cfg).Run("missing")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, cfg.Store.Len())
}

func TestRemoveUncatalogedPath(t *testing.T) {
	cfg := actionConfigFixture(t)
	path := writeArtifact(t, cfg.Root, "late.gguf", 4)

	deleted, err := NewRemove(cfg).Run(path)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, dirNames(t, cfg.Root))
}

func TestRemoveIgnoresPathsOutsideRoot(t *testing.T) {
	cfg := actionConfigFixture(t)
	outside := writeArtifact(t, t.TempDir(), "other.gguf", 4)
	notes := writeArtifact(t, cfg.Root, "notes.txt", 4)

	for _, ref := range []string{outside, notes} {
		deleted, err := NewRemove(cfg).Run(ref)
		require.NoError(t, err)
		assert.False(t, deleted)
		_, err = os.Stat(ref)
		assert.NoError(t, err)
	}
}

func TestRemoveFailureKeepsRecord(t *testing.T) {
	cfg := actionConfigFixture(t)
	dir := filepath.Join(cfg.Root, "stuck.gguf")
	require.NoError(t, os.Mkdir(dir, 0755))
	writeArtifact(t, dir, "child", 1)
	cfg.Store.Append(artifact.NewRecord(dir, 0, time.Time{}))

	deleted, err := NewRemove(cfg).Run("stuck")
	assert.ErrorIs(t, err, artifact.ErrDeleteFailed)
	assert.False(t, deleted)
	assert.Equal(t, 1, cfg.Store.Len())
}
