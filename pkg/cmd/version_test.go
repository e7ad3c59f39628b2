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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	tests := []cmdTestCase{{
		name:   "short",
		cmd:    "version --short",
		golden: "output/version-short.txt",
	}, {
		name:   "template",
		cmd:    "version --template='Version: {{.Version}}'",
		golden: "output/version-template.txt",
	}, {
		name:   "json",
		cmd:    "version -o json",
		golden: "output/version-json.txt",
	}, {
		name:   "yaml",
		cmd:    "version -o yaml",
		golden: "output/version-yaml.txt",
	}, {
		name:      "invalid output",
		cmd:       "version -o xml",
		wantError: true,
	}, {
		name:      "bad template",
		cmd:       "version --template='{{.Nope'",
		wantError: true,
	}, {
		name:      "extra args",
		cmd:       "version extra",
		wantError: true,
	}}
	runTestCmd(t, tests)
}

func TestVersionTable(t *testing.T) {
	defer resetEnv()()

	out, err := executeActionCommand("version")
	require.NoError(t, err)
	assert.Regexp(t, `^Version:\s+v0\.4\s*\n`, out)
	assert.NotContains(t, out, "Git Commit")
}
