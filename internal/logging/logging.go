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

// Package logging builds the slog loggers used across modelkeep.
package logging

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// DebugEnabledFunc reports whether debug logging is on. It is consulted at log
// time so that a --debug flag parsed after the logger was built still applies.
type DebugEnabledFunc func() bool

// DebugCheckHandler drops debug records unless debugEnabled says otherwise.
type DebugCheckHandler struct {
	handler      slog.Handler
	debugEnabled DebugEnabledFunc
}

// Enabled implements slog.Handler.Enabled
func (h *DebugCheckHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugEnabled != nil && h.debugEnabled()
	}
	return true
}

// Handle implements slog.Handler.Handle
func (h *DebugCheckHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.WithAttrs
func (h *DebugCheckHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &DebugCheckHandler{
		handler:      h.handler.WithAttrs(attrs),
		debugEnabled: h.debugEnabled,
	}
}

// WithGroup implements slog.Handler.WithGroup
func (h *DebugCheckHandler) WithGroup(name string) slog.Handler {
	return &DebugCheckHandler{
		handler:      h.handler.WithGroup(name),
		debugEnabled: h.debugEnabled,
	}
}

// NewLogger creates a text logger on out without timestamps whose debug
// output follows debugEnabled.
func NewLogger(out io.Writer, debugEnabled DebugEnabledFunc) *slog.Logger {
	baseHandler := slog.NewTextHandler(out, &slog.HandlerOptions{
		// Let everything through; DebugCheckHandler does the filtering.
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	return slog.New(&DebugCheckHandler{
		handler:      baseHandler,
		debugEnabled: debugEnabled,
	})
}

// LogHolder holds a logger that can be swapped safely at runtime.
type LogHolder struct {
	logger atomic.Pointer[slog.Logger]
}

// Logger returns the held logger, or a discarding one if none was set.
func (l *LogHolder) Logger() *slog.Logger {
	if lg := l.logger.Load(); lg != nil {
		return lg
	}
	return slog.New(slog.DiscardHandler)
}

// SetLogger replaces the held logger. A nil handler discards logs.
func (l *LogHolder) SetLogger(newHandler slog.Handler) {
	if newHandler == nil {
		l.logger.Store(slog.New(slog.DiscardHandler))
		return
	}
	l.logger.Store(slog.New(newHandler))
}
