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
	"text/template"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"modelkeep.sh/modelkeep/internal/version"
	"modelkeep.sh/modelkeep/pkg/cli/output"
	"modelkeep.sh/modelkeep/pkg/cmd/require"
)

const versionDesc = `
Show the modelkeep version, the commit it was built from and the Go version
used to build it.

--template formats the same fields with a Go template, for example
--template='{{.Version}}'. The fields are .Version, .GitCommit and .GoVersion.
`

type versionOptions struct {
	short        bool
	template     string
	outputFormat output.Format
}

func newVersionCmd(out io.Writer) *cobra.Command {
	o := &versionOptions{}

	cmd := &cobra.Command{
		Use:               "version",
		Short:             "print the modelkeep version",
		Long:              versionDesc,
		Args:              require.NoArgs,
		ValidArgsFunction: noMoreArgsCompFunc,
		RunE: func(_ *cobra.Command, _ []string) error {
			return o.run(out)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&o.short, "short", false, "print only the version number")
	f.StringVar(&o.template, "template", "", "format the version with a Go template")
	bindOutputFlag(cmd, &o.outputFormat)

	return cmd
}

func (o *versionOptions) run(out io.Writer) error {
	v := version.Get()
	switch {
	case o.template != "":
		tt, err := template.New("version").Parse(o.template)
		if err != nil {
			return err
		}
		return tt.Execute(out, v)
	case o.short:
		_, err := fmt.Fprintln(out, v.Short())
		return err
	}
	return o.outputFormat.Write(out, versionWriter(v))
}

type versionWriter version.BuildInfo

func (v versionWriter) WriteTable(out io.Writer) error {
	table := uitable.New()
	table.AddRow("Version:", v.Version)
	if v.GitCommit != "" {
		table.AddRow("Git Commit:", v.GitCommit)
	}
	if v.GoVersion != "" {
		table.AddRow("Go Version:", v.GoVersion)
	}
	return output.EncodeTable(out, table)
}

func (v versionWriter) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, version.BuildInfo(v))
}

func (v versionWriter) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, version.BuildInfo(v))
}
