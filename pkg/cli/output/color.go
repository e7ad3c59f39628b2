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

package output

import (
	"os"

	"github.com/fatih/color"
)

// ColorizeHeader returns a bold version of a table header unless color is
// disabled by noColor or the NO_COLOR environment variable.
func ColorizeHeader(header string, noColor bool) string {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return header
	}
	c := color.New(color.Bold)
	c.EnableColor()
	return c.Sprint(header)
}
