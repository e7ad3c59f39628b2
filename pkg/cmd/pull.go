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
	"fmt"
	"io"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"modelkeep.sh/modelkeep/pkg/action"
	"modelkeep.sh/modelkeep/pkg/cmd/require"
)

const pullDesc = `
Download a model file and add it to the local catalog.

The URL must point at a .gguf file over http or https. The model is stored
under the file name from the URL unless --name gives another one; the .gguf
extension is added when missing.

The download is written to a temporary file first and only appears in the
models directory once it is complete. A name that is already taken is
rejected before anything is downloaded.

Servers that require credentials, such as gated model hubs or private
mirrors, are reached with --username and --password. Credentials are only
sent to the host in the URL unless --pass-credentials is set.
`

func newPullCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	client := action.NewPull(cfg)

	cmd := &cobra.Command{
		Use:               "pull URL",
		Short:             "download a model into the local catalog",
		Long:              pullDesc,
		Args:              require.ExactArgs(1),
		ValidArgsFunction: noMoreArgsCompFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadCatalog(cfg)

			progress := newProgressPrinter(out, isTerminal(out))
			client.Progress = progress.update
			rec, err := client.Run(cmd.Context(), args[0])
			progress.done()
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Pulled: %s (%s)\n", rec.Name, units.HumanSize(float64(rec.SizeBytes)))
			fmt.Fprintf(out, "Path: %s\n", rec.Path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&client.Name, "name", "", "store the model under this name instead of the one in the URL")
	addSourceOptionsFlags(f, &client.SourceOptions)

	return cmd
}

// progressPrinter redraws a single percentage line on a terminal.
type progressPrinter struct {
	out     io.Writer
	enabled bool
	last    int
}

func newProgressPrinter(out io.Writer, enabled bool) *progressPrinter {
	return &progressPrinter{out: out, enabled: enabled, last: -1}
}

func (p *progressPrinter) update(fraction float64) {
	if !p.enabled {
		return
	}
	pct := int(fraction * 100)
	if pct == p.last {
		return
	}
	p.last = pct
	fmt.Fprintf(p.out, "\rDownloading... %3d%%", pct)
}

func (p *progressPrinter) done() {
	if p.enabled && p.last >= 0 {
		fmt.Fprintln(p.out)
	}
}
