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
	"sync"

	"modelkeep.sh/modelkeep/pkg/artifact"
)

// Store is the in-memory catalog of artifacts believed to be on disk.
//
// A Store is safe for concurrent use. It is not persisted; it is rebuilt from
// a Scan on every start.
type Store struct {
	mu      sync.RWMutex
	records []*artifact.Record
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll discards the current contents and holds records instead.
func (s *Store) ReplaceAll(records []*artifact.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]*artifact.Record(nil), records...)
}

// Append adds a record. A record for a path already in the store replaces the
// existing one so paths stay unique.
func (s *Store) Append(r *artifact.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.records {
		if existing.Path == r.Path {
			s.records[i] = r
			return
		}
	}
	s.records = append(s.records, r)
}

// Remove drops the record with the given id. It reports whether a record was removed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the records in insertion order.
func (s *Store) List() []*artifact.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*artifact.Record{}, s.records...)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (*artifact.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Find looks a record up by id, name, file name or path.
func (s *Store) Find(ref string) (*artifact.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == ref || r.Path == ref || r.Name == ref || r.Name+artifact.Ext == ref {
			return r, true
		}
	}
	return nil, false
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
