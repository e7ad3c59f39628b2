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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"modelkeep.sh/modelkeep/pkg/artifact"
)

func record(name string) *artifact.Record {
	return artifact.NewRecord("/models/"+name+artifact.Ext, 1, time.Time{})
}

func TestStore(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.List())

	a, b, c := record("a"), record("b"), record("c")
	s.ReplaceAll([]*artifact.Record{a, b})
	assert.Equal(t, 2, s.Len())

	s.Append(c)
	assert.Equal(t, []*artifact.Record{a, b, c}, s.List())

	got, ok := s.Get(b.ID)
	assert.True(t, ok)
	assert.Equal(t, b, got)

	assert.True(t, s.Remove(b.ID))
	assert.False(t, s.Remove(b.ID), "removing twice is a no-op")
	assert.Equal(t, []*artifact.Record{a, c}, s.List())

	_, ok = s.Get(b.ID)
	assert.False(t, ok)
}

func TestStoreAppendSamePath(t *testing.T) {
	s := NewStore()
	first := record("a")
	s.Append(first)

	second := artifact.NewRecord(first.Path, 99, time.Now())
	s.Append(second)

	assert.Equal(t, 1, s.Len())
	got, _ := s.Get(first.ID)
	assert.Equal(t, int64(99), got.SizeBytes)
}

func TestStoreListIsACopy(t *testing.T) {
	s := NewStore()
	s.Append(record("a"))
	l := s.List()
	l[0] = nil
	assert.NotNil(t, s.List()[0])
}

func TestStoreFind(t *testing.T) {
	s := NewStore()
	a := record("llama")
	s.Append(a)

	for _, ref := range []string{a.ID, a.Path, "llama", "llama.gguf"} {
		got, ok := s.Find(ref)
		assert.True(t, ok, ref)
		assert.Equal(t, a, got, ref)
	}
	_, ok := s.Find("mistral")
	assert.False(t, ok)
}

func TestStoreConcurrentAppend(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(record(fmt.Sprintf("m%d", i)))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
