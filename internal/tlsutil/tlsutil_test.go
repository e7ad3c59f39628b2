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

package tlsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfigDefaults(t *testing.T) {
	cfg, err := NewClientConfig()
	require.NoError(t, err)
	assert.False(t, cfg.InsecureSkipVerify)
	assert.Nil(t, cfg.RootCAs)
	assert.Empty(t, cfg.Certificates)
}

func TestNewClientConfigInsecure(t *testing.T) {
	cfg, err := NewClientConfig(WithInsecureSkipVerify(true), WithCAFile(""), WithCertKeyPairFiles("", ""))
	require.NoError(t, err)
	assert.True(t, cfg.InsecureSkipVerify)
}

func TestNewClientConfigMissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := NewClientConfig(
		WithCAFile(filepath.Join(dir, "ca.crt")),
		WithCertKeyPairFiles(filepath.Join(dir, "crt.pem"), filepath.Join(dir, "key.pem")),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ca.crt")
	assert.Contains(t, err.Error(), "crt.pem")
}

func TestNewClientConfigBadCA(t *testing.T) {
	ca := filepath.Join(t.TempDir(), "ca.crt")
	require.NoError(t, os.WriteFile(ca, []byte("not a certificate"), 0644))
	_, err := NewClientConfig(WithCAFile(ca))
	assert.EqualError(t, err, "failed to append certificates from pem block")
}
