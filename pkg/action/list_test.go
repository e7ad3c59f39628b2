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

func TestListEmpty(t *testing.T) {
	cfg := actionConfigFixture(t)
	list, err := NewList(cfg).Run()
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListSort(t *testing.T) {
	cfg := actionConfigFixture(t)
	now := time.Now()
	cfg.Store.Append(artifact.NewRecord(filepath.Join(cfg.Root, "mistral.gguf"), 30, now.Add(-time.Hour)))
	cfg.Store.Append(artifact.NewRecord(filepath.Join(cfg.Root, "llama.gguf"), 10, now))
	cfg.Store.Append(artifact.NewRecord(filepath.Join(cfg.Root, "phi.gguf"), 20, now.Add(-2*time.Hour)))

	names := func(rs []*artifact.Record) []string {
		out := []string{}
		for _, r := range rs {
			out = append(out, r.Name)
		}
		return out
	}

	tests := []struct {
		sort Sorter
		want []string
	}{
		{ByName, []string{"llama", "mistral", "phi"}},
		{ByNameDesc, []string{"phi", "mistral", "llama"}},
		{ByDate, []string{"phi", "mistral", "llama"}},
		{BySize, []string{"llama", "phi", "mistral"}},
	}
	for _, tt := range tests {
		list := NewList(cfg)
		list.Sort = tt.sort
		rs, err := list.Run()
		require.NoError(t, err)
		assert.Equal(t, tt.want, names(rs))
	}
}

func TestListFilter(t *testing.T) {
	cfg := actionConfigFixture(t)
	for _, f := range []string{"llama-7b.gguf", "llama-13b.gguf", "phi.gguf"} {
		writeArtifact(t, cfg.Root, f, 1)
	}
	require.NoError(t, cfg.Load())

	list := NewList(cfg)
	list.Filter = "llama-*"
	rs, err := list.Run()
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "llama-13b", rs[0].Name)
	assert.Equal(t, "llama-7b", rs[1].Name)

	list.Filter = "qwen*"
	rs, err = list.Run()
	require.NoError(t, err)
	assert.Empty(t, rs)

	list.Filter = "["
	_, err = list.Run()
	assert.ErrorIs(t, err, artifact.ErrInvalidInput)
}

func TestListDoesNotTouchDisk(t *testing.T) {
	cfg := actionConfigFixture(t)
	path := writeArtifact(t, cfg.Root, "a.gguf", 1)
	require.NoError(t, cfg.Load())
	require.NoError(t, os.Remove(path))

	rs, err := NewList(cfg).Run()
	require.NoError(t, err)
	assert.Len(t, rs, 1)
}

func TestParseSorter(t *testing.T) {
	for in, want := range map[string]Sorter{"": ByName, "name": ByName, "name-desc": ByNameDesc, "date": ByDate, "size": BySize} {
		got, err := ParseSorter(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSorter("random")
	assert.Error(t, err)
}
