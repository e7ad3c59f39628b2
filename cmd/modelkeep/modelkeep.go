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

package main // import "modelkeep.sh/modelkeep/cmd/modelkeep"

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	modelkeepcmd "modelkeep.sh/modelkeep/pkg/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := modelkeepcmd.NewRootCmd(os.Stdout, os.Args[1:], modelkeepcmd.SetupLogging)
	if err != nil {
		slog.Warn("command failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Debug("error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
