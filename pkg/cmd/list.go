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
	"os"
	"time"

	units "github.com/docker/go-units"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"modelkeep.sh/modelkeep/pkg/action"
	"modelkeep.sh/modelkeep/pkg/artifact"
	"modelkeep.sh/modelkeep/pkg/cli/output"
	"modelkeep.sh/modelkeep/pkg/cmd/require"
)

var listHelp = `
This command lists the models in the local catalog.

By default, it lists every model file found in the models directory, sorted by
name. A glob PATTERN limits the list to models whose names match it:

    $ modelkeep list 'llama-*'

Use '--sort' to order by date or size instead, and '-o json' or '-o yaml' for
machine readable output.
`

func newListCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	client := action.NewList(cfg)
	var outfmt output.Format
	var sortBy string
	var short, noHeaders bool

	cmd := &cobra.Command{
		Use:               "list [PATTERN]",
		Short:             "list models in the local catalog",
		Long:              listHelp,
		Aliases:           []string{"ls"},
		Args:              require.MaximumNArgs(1),
		ValidArgsFunction: noMoreArgsCompFunc,
		RunE: func(_ *cobra.Command, args []string) error {
			sorter, err := action.ParseSorter(sortBy)
			if err != nil {
				return err
			}
			client.Sort = sorter
			if len(args) > 0 {
				client.Filter = args[0]
			}

			loadCatalog(cfg)
			results, err := client.Run()
			if err != nil {
				return err
			}

			if short {
				for _, r := range results {
					fmt.Fprintln(out, r.Name)
				}
				return nil
			}
			return outfmt.Write(out, newRecordListWriter(results, noHeaders, !isTerminal(out)))
		},
	}

	f := cmd.Flags()
	f.StringVar(&sortBy, "sort", "name", "sort order: name, name-desc, date or size")
	f.BoolVarP(&short, "short", "q", false, "output short (quiet) listing format")
	f.BoolVar(&noHeaders, "no-headers", false, "don't print headers when using the default output format")
	bindOutputFlag(cmd, &outfmt)

	return cmd
}

type recordListWriter struct {
	records   []*artifact.Record
	noHeaders bool
	noColor   bool
}

func newRecordListWriter(records []*artifact.Record, noHeaders, noColor bool) *recordListWriter {
	return &recordListWriter{records: records, noHeaders: noHeaders, noColor: noColor}
}

func (w *recordListWriter) WriteTable(out io.Writer) error {
	table := uitable.New()
	if !w.noHeaders {
		table.AddRow(
			output.ColorizeHeader("NAME", w.noColor),
			output.ColorizeHeader("SIZE", w.noColor),
			output.ColorizeHeader("ACQUIRED", w.noColor),
			output.ColorizeHeader("PATH", w.noColor),
		)
	}
	for _, r := range w.records {
		table.AddRow(r.Name, units.HumanSize(float64(r.SizeBytes)), acquiredAgo(r.AcquiredAt), r.Path)
	}
	return output.EncodeTable(out, table)
}

func (w *recordListWriter) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, w.records)
}

func (w *recordListWriter) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, w.records)
}

func acquiredAgo(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return units.HumanDuration(time.Since(t)) + " ago"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
