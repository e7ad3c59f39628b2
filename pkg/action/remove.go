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

package action

import (
	"path/filepath"

	"modelkeep.sh/modelkeep/pkg/artifact"
	"modelkeep.sh/modelkeep/pkg/catalog"
)

// Remove is the action for deleting an artifact from disk and the catalog.
//
// It provides the implementation of 'modelkeep remove'.
type Remove struct {
	cfg *Configuration
}

// NewRemove creates a new Remove object with the given configuration.
func NewRemove(cfg *Configuration) *Remove {
	return &Remove{cfg: cfg}
}

// Run deletes the artifact that ref names. ref may be a record id, an
// artifact name with or without extension, or the path of an artifact file
// directly under the root.
//
// It reports whether a file was deleted. A file that is already gone is not
// an error; its record is dropped all the same. On error the record is kept,
// since the file is still on disk.
func (r *Remove) Run(ref string) (deleted bool, err error) {
	defer func() {
		r.cfg.Metrics.ObserveRemoval(deleted, err)
	}()

	path, id, ok := r.resolve(ref)
	if !ok {
		r.cfg.Logger().Debug("nothing to remove", "ref", ref)
		return false, nil
	}

	deleted, err = catalog.DeleteArtifactFile(path)
	if err != nil {
		return false, err
	}
	r.cfg.Store.Remove(id)
	r.cfg.updateGauge()

	if deleted {
		r.cfg.Logger().Info("removed artifact", "path", path)
	} else {
		r.cfg.Logger().Debug("artifact file already absent", "path", path)
	}
	return deleted, nil
}

// resolve finds the file and record id for ref.
func (r *Remove) resolve(ref string) (path, id string, ok bool) {
	if rec, found := r.cfg.Store.Find(ref); found {
		return rec.Path, rec.ID, true
	}

	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", "", false
	}
	root, err := filepath.Abs(r.cfg.Root)
	if err != nil {
		return "", "", false
	}
	if filepath.Dir(abs) != root || !artifact.HasExt(abs) {
		return "", "", false
	}
	return abs, artifact.IDFor(abs), true
}
