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

package ensure

import (
	"path/filepath"
	"testing"

	"modelkeep.sh/modelkeep/pkg/modelpath"
	"modelkeep.sh/modelkeep/pkg/modelpath/xdg"
)

// ModelkeepHome points the modelkeep cache, config and data homes at a
// scratch directory for the duration of the test and returns it.
func ModelkeepHome(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for _, v := range []string{
		modelpath.CacheHomeEnvVar,
		modelpath.ConfigHomeEnvVar,
		modelpath.DataHomeEnvVar,
		"MODELKEEP_MODELS",
	} {
		t.Setenv(v, "")
	}
	t.Setenv(xdg.CacheHomeEnvVar, filepath.Join(base, "cache"))
	t.Setenv(xdg.ConfigHomeEnvVar, filepath.Join(base, "config"))
	t.Setenv(xdg.DataHomeEnvVar, filepath.Join(base, "data"))
	return base
}
