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
Package downloader fetches remote artifacts into the artifact root.

The root never shows a partially written artifact under its final name: a
download either leaves a complete file or nothing at all.
*/
package downloader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"modelkeep.sh/modelkeep/internal/fileutil"
	"modelkeep.sh/modelkeep/pkg/artifact"
	"modelkeep.sh/modelkeep/pkg/getter"
)

// Opener opens the remote source of an artifact.
type Opener func(ctx context.Context) (*getter.Stream, error)

// AtomicWriter streams artifacts into a root directory.
//
// Each destination name is reserved for the duration of a write, both within
// the process and, through a lock file, across processes.
type AtomicWriter struct {
	// Root is the directory artifacts are written to.
	Root string
	// Mode is the permission of written artifacts. Zero means 0644.
	Mode os.FileMode

	mu       sync.Mutex
	inflight map[string]*flock.Flock
}

// NewAtomicWriter creates a writer for root.
func NewAtomicWriter(root string) *AtomicWriter {
	return &AtomicWriter{Root: root}
}

// WriteArtifact reserves name, opens the source and streams it to the root.
//
// If name is taken, either by an existing file or by a write in progress, it
// fails with an error matching artifact.ErrNameCollision without calling open.
// Any other failure is a *artifact.DownloadError and leaves no file behind.
// progress, if not nil, is called on the calling goroutine with a
// non-decreasing fraction and is never called after WriteArtifact returns.
func (w *AtomicWriter) WriteArtifact(ctx context.Context, open Opener, name string, progress artifact.ProgressFunc) (*artifact.Record, error) {
	dest, err := w.reserve(name)
	if err != nil {
		return nil, err
	}
	defer w.release(name)

	fail := func(err error) error {
		return &artifact.DownloadError{Name: name, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(err)
	}
	stream, err := open(ctx)
	if err != nil {
		return nil, fail(err)
	}
	defer stream.Close()

	pr := &progressReader{r: stream, total: stream.Size, fn: progress}
	if err := fileutil.AtomicWriteFile(dest, pr, w.mode()); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, artifact.NameCollision(name)
		}
		return nil, fail(err)
	}

	fi, err := os.Stat(dest)
	if err != nil {
		os.Remove(dest)
		return nil, fail(err)
	}
	pr.finish()
	return artifact.NewRecord(dest, fi.Size(), time.Now()), nil
}

func (w *AtomicWriter) mode() os.FileMode {
	if w.Mode == 0 {
		return 0644
	}
	return w.Mode
}

func lockPath(root, name string) string {
	return filepath.Join(root, "."+name+".lock")
}

// reserve claims name and returns the destination path.
func (w *AtomicWriter) reserve(name string) (string, error) {
	dest, err := securejoin.SecureJoin(w.Root, name)
	if err != nil {
		return "", artifact.InvalidInputf("artifact name %q: %s", name, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.inflight[name]; busy {
		return "", artifact.NameCollision(name)
	}

	if err := os.MkdirAll(w.Root, 0755); err != nil {
		return "", &artifact.DownloadError{Name: name, Err: err}
	}
	lock := flock.New(lockPath(w.Root, name))
	locked, err := lock.TryLock()
	if err != nil {
		return "", &artifact.DownloadError{Name: name, Err: errors.Wrap(err, "reserving artifact name")}
	}
	if !locked {
		// Another process is writing the same name.
		return "", artifact.NameCollision(name)
	}

	if _, err := os.Lstat(dest); err == nil {
		w.unlock(lock)
		return "", artifact.NameCollision(name)
	} else if !os.IsNotExist(err) {
		w.unlock(lock)
		return "", &artifact.DownloadError{Name: name, Err: err}
	}
	if taken, err := stemTaken(w.Root, name); err != nil {
		w.unlock(lock)
		return "", &artifact.DownloadError{Name: name, Err: err}
	} else if taken {
		w.unlock(lock)
		return "", artifact.NameCollision(name)
	}

	if w.inflight == nil {
		w.inflight = map[string]*flock.Flock{}
	}
	w.inflight[name] = lock
	return dest, nil
}

// stemTaken reports whether root already holds an artifact with the same name
// as name under a differently cased extension, such as model.GGUF for
// model.gguf. Both would be listed under one name.
func stemTaken(root, name string) (bool, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false, err
	}
	stem := artifact.NameFromFile(name)
	for _, e := range entries {
		if artifact.HasExt(e.Name()) && artifact.NameFromFile(e.Name()) == stem {
			return true, nil
		}
	}
	return false, nil
}

func (w *AtomicWriter) release(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if lock, ok := w.inflight[name]; ok {
		w.unlock(lock)
		delete(w.inflight, name)
	}
}

func (w *AtomicWriter) unlock(lock *flock.Flock) {
	// The lock file is not part of the catalog; drop it while still holding the lock.
	os.Remove(lock.Path())
	lock.Unlock()
}

// progressReader reports the fraction of an advertised size read so far.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  float64
	fn    artifact.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if n > 0 && p.total > 0 {
		p.report(float64(p.read) / float64(p.total))
	}
	if err == io.EOF && p.total > 0 && p.read < p.total {
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}

func (p *progressReader) report(fraction float64) {
	if fraction > 1 {
		fraction = 1
	}
	if p.fn == nil || fraction <= p.last {
		return
	}
	p.last = fraction
	p.fn(fraction)
}

// finish reports completion, which matters when the size was not advertised.
func (p *progressReader) finish() {
	p.report(1)
}
