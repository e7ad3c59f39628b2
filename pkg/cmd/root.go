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

package cmd // import "modelkeep.sh/modelkeep/pkg/cmd"

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"modelkeep.sh/modelkeep/internal/logging"
	"modelkeep.sh/modelkeep/pkg/action"
	"modelkeep.sh/modelkeep/pkg/cli"
)

var globalUsage = `Download and manage local model files.

Common actions for modelkeep:

- modelkeep pull:    download a model into the local catalog
- modelkeep list:    list the models in the local catalog
- modelkeep remove:  delete a model from disk and the catalog

Environment variables:

| Name                          | Description                                                           |
|-------------------------------|-----------------------------------------------------------------------|
| $MODELKEEP_CACHE_HOME         | set an alternative location for storing cached files.                 |
| $MODELKEEP_CONFIG_HOME        | set an alternative location for storing modelkeep configuration.      |
| $MODELKEEP_DATA_HOME          | set an alternative location for storing modelkeep data.               |
| $MODELKEEP_DEBUG              | indicate whether or not modelkeep is running in Debug mode            |
| $MODELKEEP_MODELS             | set the directory models are stored in (default "$DATA_HOME/models")  |
| $MODELKEEP_TIMEOUT            | set how long a server may take to respond or a transfer may stall     |
| $MODELKEEP_USER_AGENT         | set the User-Agent header sent with downloads                         |
| $MODELKEEP_METRICS_TEXTFILE   | write Prometheus metrics to this file after each command              |

modelkeep stores cache, configuration, and data based on the following configuration order:

- If a MODELKEEP_*_HOME environment variable is set, it will be used
- Otherwise, on systems supporting the XDG base directory specification, the XDG variables will be used
- When no other location is set a default location will be used based on the operating system

By default, the default directories depend on the Operating System. The defaults are listed below:

| Operating System | Cache Path                     | Configuration Path                  | Data Path                    |
|------------------|--------------------------------|-------------------------------------|------------------------------|
| Linux            | $HOME/.cache/modelkeep         | $HOME/.config/modelkeep             | $HOME/.local/share/modelkeep |
| macOS            | $HOME/Library/Caches/modelkeep | $HOME/Library/Preferences/modelkeep | $HOME/Library/modelkeep      |
| Windows          | %TEMP%\modelkeep               | %APPDATA%\modelkeep                 | %APPDATA%\modelkeep          |
`

var settings = cli.New()

// SetupLogging installs a logger on stderr whose debug output follows the
// --debug setting.
func SetupLogging() {
	logger := logging.NewLogger(os.Stderr, func() bool { return settings.Debug })
	slog.SetDefault(logger)
}

// NewRootCmd creates the modelkeep command tree.
func NewRootCmd(out io.Writer, args []string, logSetup func()) (*cobra.Command, error) {
	actionConfig := new(action.Configuration)
	return newRootCmdWithConfig(actionConfig, out, args, logSetup)
}

func newRootCmdWithConfig(actionConfig *action.Configuration, out io.Writer, args []string, logSetup func()) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          "modelkeep",
		Short:        "Download and manage local model files.",
		Long:         globalUsage,
		SilenceUsage: true,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return actionConfig.Metrics.WriteTextfile(settings.MetricsTextfile)
		},
	}

	flags := cmd.PersistentFlags()
	settings.AddFlags(flags)

	// We can safely ignore any errors that flags.Parse encounters since
	// those errors will be caught later during the call to cmd.Execution.
	// This call is required to gather configuration information prior to
	// execution.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Parse(args)

	logSetup()

	cmd.AddCommand(
		newListCmd(actionConfig, out),
		newPullCmd(actionConfig, out),
		newRemoveCmd(actionConfig, out),

		newEnvCmd(out),
		newVersionCmd(out),
	)

	return cmd, nil
}

// loadCatalog prepares actionConfig for the current settings and scans the
// artifact root. A failed scan leaves an empty catalog and is only logged.
func loadCatalog(actionConfig *action.Configuration) {
	actionConfig.SetLogger(slog.Default().Handler())
	actionConfig.Init(settings)
	_ = actionConfig.Load()
}
