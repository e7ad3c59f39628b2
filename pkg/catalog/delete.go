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

package catalog

import (
	"os"

	"modelkeep.sh/modelkeep/pkg/artifact"
)

// DeleteArtifactFile removes the artifact file at path.
//
// It returns false with no error when the file does not exist, and true once
// the file has been removed. Any other failure is a *artifact.DeleteError.
func DeleteArtifactFile(path string) (bool, error) {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, &artifact.DeleteError{Path: path, Err: err}
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &artifact.DeleteError{Path: path, Err: err}
	}
	return true, nil
}
