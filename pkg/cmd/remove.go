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

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"modelkeep.sh/modelkeep/pkg/action"
	"modelkeep.sh/modelkeep/pkg/cmd/require"
)

const removeDesc = `
This command deletes models from disk and from the local catalog.

A model can be named by its catalog name, its file name, its id or the path
of its file. Removing a model whose file is already gone only drops it from
the catalog.
`

func newRemoveCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	client := action.NewRemove(cfg)

	cmd := &cobra.Command{
		Use:     "remove MODEL [...]",
		Aliases: []string{"rm", "delete"},
		Short:   "delete one or more models",
		Long:    removeDesc,
		Args:    require.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return compListModels(cfg, toComplete, args)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			loadCatalog(cfg)

			var errs error
			for _, ref := range args {
				deleted, err := client.Run(ref)
				if err != nil {
					errs = multierror.Append(errs, err)
					continue
				}
				if deleted {
					fmt.Fprintf(out, "model %q removed\n", ref)
				} else {
					fmt.Fprintf(out, "model %q not found\n", ref)
				}
			}
			return errs
		},
	}
	return cmd
}
