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
Package catalog keeps the in-memory view of the artifacts in the artifact root.

The directory listing is the only persisted state: Scan rebuilds records from
it, and a Store holds them for the lifetime of the process.
*/
package catalog

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"modelkeep.sh/modelkeep/pkg/artifact"
)

// Scan lists root and returns one record per regular file carrying the
// artifact extension, in filename order.
//
// Root is created if it does not exist. When root cannot be listed Scan
// returns an empty slice and a *artifact.ScanError. Entries whose metadata
// cannot be read are skipped; they are reported together in a ScanError
// alongside the records that were read.
func Scan(root string) ([]*artifact.Record, error) {
	records := []*artifact.Record{}

	if err := os.MkdirAll(root, 0755); err != nil {
		return records, &artifact.ScanError{Root: root, Err: err}
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return records, &artifact.ScanError{Root: root, Err: err}
	}

	var result *multierror.Error
	for _, e := range entries {
		if !e.Type().IsRegular() || !artifact.HasExt(e.Name()) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		records = append(records, artifact.RecordFromFileInfo(filepath.Join(root, e.Name()), fi))
	}

	if err := result.ErrorOrNil(); err != nil {
		return records, &artifact.ScanError{Root: root, Err: err}
	}
	return records, nil
}
