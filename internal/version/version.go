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

// Package version reports the build information of modelkeep.
package version // import "modelkeep.sh/modelkeep/internal/version"

import (
	"flag"
	"runtime"
	"strings"
)

// Set with -ldflags "-X modelkeep.sh/modelkeep/internal/version.<name>=<value>".
var (
	version   = "v0.4"
	metadata  = ""
	gitCommit = ""
)

// BuildInfo describes a modelkeep binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// GetVersion returns the release version with any build metadata appended.
func GetVersion() string {
	if metadata == "" {
		return version
	}
	return version + "+" + metadata
}

// GetUserAgent returns the User-Agent sent with artifact requests.
func GetUserAgent() string {
	return "modelkeep/" + strings.TrimPrefix(GetVersion(), "v")
}

// Get returns the build information of the running binary.
func Get() BuildInfo {
	v := BuildInfo{
		Version:   GetVersion(),
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
	}

	// Test output must not depend on the toolchain.
	if flag.Lookup("test.v") != nil {
		v.GoVersion = ""
	}
	return v
}

// Short returns the version followed by an abbreviated commit, when known.
func (b BuildInfo) Short() string {
	if len(b.GitCommit) >= 7 {
		return b.Version + "+g" + b.GitCommit[:7]
	}
	return b.Version
}
