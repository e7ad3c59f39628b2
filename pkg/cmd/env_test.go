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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelkeep.sh/modelkeep/internal/test/ensure"
	"modelkeep.sh/modelkeep/pkg/cli"
)

func TestEnv(t *testing.T) {
	defer resetEnv()()
	envFixture := map[string]string{
		"MODELKEEP_BIN":              "modelkeep",
		"MODELKEEP_CACHE_HOME":       "/home/user/.cache/modelkeep",
		"MODELKEEP_CONFIG_HOME":      "/home/user/.config/modelkeep",
		"MODELKEEP_DATA_HOME":        "/home/user/.local/share/modelkeep",
		"MODELKEEP_DEBUG":            "",
		"MODELKEEP_METRICS_TEXTFILE": "",
		"MODELKEEP_MODELS":           "",
		"MODELKEEP_TIMEOUT":          "",
		"MODELKEEP_USER_AGENT":       "",
	}
	for k, v := range envFixture {
		os.Setenv(k, v)
	}
	settings = cli.New()

	tests := []cmdTestCase{{
		name:   "no args",
		cmd:    "env",
		golden: "output/env-no-args.txt",
	}, {
		name:   "one arg",
		cmd:    "env MODELKEEP_MODELS",
		golden: "output/env-models.txt",
	}}
	runTestCmd(t, tests)
}

func TestEnvCmd(t *testing.T) {
	defer resetEnv()()

	out, err := executeActionCommand("env --models-dir /srv/models --timeout 30s")
	require.NoError(t, err)
	assert.Contains(t, out, "MODELKEEP_MODELS=\"/srv/models\"\n")
	assert.Contains(t, out, "MODELKEEP_TIMEOUT=\"30s\"\n")
	assert.Contains(t, out, "MODELKEEP_DEBUG=\"false\"\n")

	out, err = executeActionCommand("env MODELKEEP_MODELS --models-dir /srv/models")
	require.NoError(t, err)
	assert.Equal(t, "/srv/models\n", out)

	_, err = executeActionCommand("env A B")
	assert.Error(t, err)
}

func TestEnvCmdDoesNotCreateModelsDir(t *testing.T) {
	defer resetEnv()()
	ensure.ModelkeepHome(t)
	settings = cli.New()

	_, err := executeActionCommand("env")
	require.NoError(t, err)
	_, err = os.Stat(settings.ModelsDir)
	assert.True(t, os.IsNotExist(err))
}

func TestEnvCmdFromEnvironment(t *testing.T) {
	defer resetEnv()()
	os.Setenv("MODELKEEP_MODELS", "/env/models")
	os.Setenv("MODELKEEP_DEBUG", "true")
	settings = cli.New()

	out, err := executeActionCommand("env")
	require.NoError(t, err)
	assert.Contains(t, out, "MODELKEEP_MODELS=\"/env/models\"\n")
	assert.Contains(t, out, "MODELKEEP_DEBUG=\"true\"\n")
}
