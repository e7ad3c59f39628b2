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
Package cli describes the operating environment for the modelkeep CLI.

Settings come from environment variables and can be overridden by flags.
*/
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"modelkeep.sh/modelkeep/pkg/getter"
	"modelkeep.sh/modelkeep/pkg/modelpath"
)

// EnvSettings describes all of the environment settings.
type EnvSettings struct {
	// Debug indicates whether or not modelkeep is running in Debug mode.
	Debug bool
	// ModelsDir is the artifact root. It is resolved once, when the settings are created.
	ModelsDir string
	// Timeout bounds how long a server may take to respond and how long a
	// transfer may stall before it fails.
	Timeout time.Duration
	// UserAgent overrides the User-Agent sent with downloads.
	UserAgent string
	// MetricsTextfile, when set, receives Prometheus metrics after every command.
	MetricsTextfile string
}

// New returns settings populated from the environment.
func New() *EnvSettings {
	env := &EnvSettings{
		ModelsDir:       envOr("MODELKEEP_MODELS", modelpath.ArtifactRoot()),
		Timeout:         envDurationOr("MODELKEEP_TIMEOUT", getter.DefaultHTTPTimeout*time.Second),
		UserAgent:       os.Getenv("MODELKEEP_USER_AGENT"),
		MetricsTextfile: os.Getenv("MODELKEEP_METRICS_TEXTFILE"),
	}
	env.Debug, _ = strconv.ParseBool(os.Getenv("MODELKEEP_DEBUG"))
	return env
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.StringVar(&s.ModelsDir, "models-dir", s.ModelsDir, "directory holding downloaded models")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "time to wait for a server response or for a stalled transfer")
	fs.StringVar(&s.UserAgent, "user-agent", s.UserAgent, "User-Agent header sent with downloads")
	fs.StringVar(&s.MetricsTextfile, "metrics-textfile", s.MetricsTextfile, "write Prometheus metrics to this file after each command")
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return def
}

func envDurationOr(name string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(name); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// EnvVars returns the effective settings keyed by environment variable name.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"MODELKEEP_BIN":              envOr("MODELKEEP_BIN", os.Args[0]),
		"MODELKEEP_CACHE_HOME":       modelpath.CachePath(""),
		"MODELKEEP_CONFIG_HOME":      modelpath.ConfigPath(""),
		"MODELKEEP_DATA_HOME":        modelpath.DataPath(""),
		"MODELKEEP_DEBUG":            fmt.Sprint(s.Debug),
		"MODELKEEP_MODELS":           s.ModelsDir,
		"MODELKEEP_TIMEOUT":          s.Timeout.String(),
		"MODELKEEP_USER_AGENT":       s.UserAgent,
		"MODELKEEP_METRICS_TEXTFILE": s.MetricsTextfile,
	}
}

// GetterOptions returns the transport options implied by the settings.
func (s *EnvSettings) GetterOptions() []getter.Option {
	opts := []getter.Option{getter.WithTimeout(s.Timeout)}
	if s.UserAgent != "" {
		opts = append(opts, getter.WithUserAgent(s.UserAgent))
	}
	return opts
}
