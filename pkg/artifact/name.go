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

package artifact

import (
	"strings"

	"github.com/pkg/errors"
)

// Ext is the canonical extension of an artifact file.
const Ext = ".gguf"

// HasExt reports whether filename carries the artifact extension, in any case.
func HasExt(filename string) bool {
	return len(filename) > len(Ext) && strings.EqualFold(filename[len(filename)-len(Ext):], Ext)
}

// NameFromFile strips the artifact extension from filename.
func NameFromFile(filename string) string {
	if len(filename) >= len(Ext) && strings.EqualFold(filename[len(filename)-len(Ext):], Ext) {
		return filename[:len(filename)-len(Ext)]
	}
	return filename
}

// NormalizeName returns name carrying the canonical extension exactly once.
//
// A name already ending in the extension, in any case, keeps its stem and is
// given the canonical lower-case spelling.
func NormalizeName(name string) string {
	return NameFromFile(name) + Ext
}

// ValidateName checks that a normalized artifact filename is usable as a
// direct child of the artifact root.
func ValidateName(name string) error {
	stem := NameFromFile(name)
	switch {
	case strings.TrimSpace(stem) == "":
		return InvalidInputf("artifact name %q is empty", name)
	case stem == "." || stem == "..":
		return InvalidInputf("artifact name %q is not a file name", name)
	case strings.ContainsAny(name, `/\`):
		return InvalidInputf("artifact name %q must not contain path separators", name)
	case strings.HasPrefix(name, "."):
		// Hidden names are used by in-progress downloads.
		return InvalidInputf("artifact name %q must not start with '.'", name)
	case strings.ContainsRune(name, 0):
		return errors.Wrap(ErrInvalidInput, "artifact name contains a NUL byte")
	}
	return nil
}
