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
	"sort"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"modelkeep.sh/modelkeep/pkg/artifact"
)

// Sorter is a top-level sort
type Sorter uint

const (
	// ByName sorts by artifact name
	ByName Sorter = iota
	// ByNameDesc sorts by artifact name in reverse order
	ByNameDesc
	// ByDate sorts by acquisition time, oldest first
	ByDate
	// BySize sorts by size, smallest first
	BySize
)

// List is the action for listing the catalog.
//
// It provides the implementation of 'modelkeep list'.
type List struct {
	cfg *Configuration

	// Filter is a glob matched against artifact names. Empty matches all.
	Filter string
	// Sort indicates the sort to use
	Sort Sorter
}

// NewList constructs a new *List
func NewList(cfg *Configuration) *List {
	return &List{cfg: cfg}
}

// Run returns the catalog records whose names match the filter.
func (l *List) Run() ([]*artifact.Record, error) {
	var filter glob.Glob
	if l.Filter != "" {
		var err error
		filter, err = glob.Compile(l.Filter)
		if err != nil {
			return nil, artifact.InvalidInputf("invalid filter %q: %s", l.Filter, err)
		}
	}

	results := make([]*artifact.Record, 0, l.cfg.Store.Len())
	for _, r := range l.cfg.Store.List() {
		if filter != nil && !filter.Match(r.Name) {
			continue
		}
		results = append(results, r)
	}

	l.sort(results)
	return results, nil
}

func (l *List) sort(rs []*artifact.Record) {
	switch l.Sort {
	case ByNameDesc:
		sortByName(rs)
		for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
			rs[i], rs[j] = rs[j], rs[i]
		}
	case ByDate:
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].AcquiredAt.Before(rs[j].AcquiredAt)
		})
	case BySize:
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].SizeBytes < rs[j].SizeBytes
		})
	default:
		sortByName(rs)
	}
}

// ParseSorter maps a --sort value to a Sorter.
func ParseSorter(s string) (Sorter, error) {
	switch s {
	case "", "name":
		return ByName, nil
	case "name-desc":
		return ByNameDesc, nil
	case "date":
		return ByDate, nil
	case "size":
		return BySize, nil
	}
	return ByName, errors.Errorf("unknown sort order %q", s)
}

func sortByName(rs []*artifact.Record) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Name == rs[j].Name {
			return rs[i].Path < rs[j].Path
		}
		return rs[i].Name < rs[j].Name
	})
}
