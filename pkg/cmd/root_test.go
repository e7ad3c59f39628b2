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

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	defer resetEnv()()

	out, err := executeActionCommand("")
	require.NoError(t, err)
	assert.Contains(t, out, "Download and manage local model files.")
	assert.Contains(t, out, "$MODELKEEP_MODELS")
}

func TestMetricsTextfile(t *testing.T) {
	defer resetEnv()()
	srv := modelServer(t)
	dir := modelsDir(t, "old.gguf")
	textfile := filepath.Join(t.TempDir(), "modelkeep.prom")

	_, err := executeActionCommand(withDir("pull --metrics-textfile "+textfile+" "+srv.URL+"/tiny.gguf", dir))
	require.NoError(t, err)

	b, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `modelkeep_downloads_total{result="success"} 1`)
	assert.Contains(t, string(b), "modelkeep_downloaded_bytes_total 1000")
	assert.Contains(t, string(b), "modelkeep_catalog_artifacts 2")
}

func TestMetricsTextfileNotWrittenByDefault(t *testing.T) {
	defer resetEnv()()
	dir := modelsDir(t)

	_, err := executeActionCommand(withDir("list", dir))
	require.NoError(t, err)
	assert.Empty(t, dirNames(t, dir))
}
