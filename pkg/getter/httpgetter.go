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

package getter

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"modelkeep.sh/modelkeep/internal/tlsutil"
	"modelkeep.sh/modelkeep/internal/version"
)

// HTTPGetter is the default HTTP(/S) backend handler
type HTTPGetter struct {
	opts      getterOptions
	transport *http.Transport
	once      sync.Once
}

// Get performs an HTTP GET and returns the response body as a stream.
func (g *HTTPGetter) Get(ctx context.Context, href string, options ...Option) (*Stream, error) {
	// Create a local copy of options to avoid data races when Get is called concurrently
	opts := g.opts
	for _, opt := range options {
		opt(&opts)
	}
	return g.get(ctx, href, opts)
}

func (g *HTTPGetter) get(ctx context.Context, href string, opts getterOptions) (*Stream, error) {
	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		cancel()
		return nil, err
	}

	if opts.acceptHeader != "" {
		req.Header.Set("Accept", opts.acceptHeader)
	}

	// Set a modelkeep specific user agent so that servers and metrics can
	// separate modelkeep calls from other tools.
	req.Header.Set("User-Agent", version.GetUserAgent())
	if opts.userAgent != "" {
		req.Header.Set("User-Agent", opts.userAgent)
	}

	// Before setting the basic auth credentials, make sure the URL associated
	// with the basic auth is the one being fetched.
	u1, err := url.Parse(opts.url)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "unable to parse getter URL")
	}
	u2, err := url.Parse(href)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "unable to parse URL getting from")
	}

	// Host on URL (returned from url.Parse) contains the port if present.
	// This check ensures credentials are not passed between different
	// services on different ports.
	if opts.passCredentialsAll || (u1.Scheme == u2.Scheme && u1.Host == u2.Host) {
		if opts.username != "" && opts.password != "" {
			req.SetBasicAuth(opts.username, opts.password)
		}
	}

	client, err := g.httpClient(opts)
	if err != nil {
		cancel()
		return nil, err
	}

	body := &stallReader{cancel: cancel, timeout: opts.timeout}
	if opts.timeout > 0 {
		body.timer = time.AfterFunc(opts.timeout, body.expire)
	}

	resp, err := client.Do(req)
	if err != nil {
		body.stop()
		if body.stalled.Load() {
			return nil, errors.Errorf("no response from %s within %s", href, opts.timeout)
		}
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		body.stop()
		return nil, errors.Errorf("failed to fetch %s : %s", href, resp.Status)
	}

	body.ReadCloser = resp.Body
	body.reset()
	return &Stream{ReadCloser: body, Size: resp.ContentLength}, nil
}

// NewHTTPGetter constructs a valid http/https client as a Getter
func NewHTTPGetter(options ...Option) (Getter, error) {
	var client HTTPGetter

	for _, opt := range options {
		opt(&client.opts)
	}

	return &client, nil
}

func (g *HTTPGetter) httpClient(opts getterOptions) (*http.Client, error) {
	needsCustomTLS := (opts.certFile != "" && opts.keyFile != "") || opts.caFile != "" || opts.insecureSkipVerifyTLS
	if needsCustomTLS {
		// A dedicated transport keeps custom TLS settings out of the shared one.
		tlsConf, err := tlsutil.NewClientConfig(
			tlsutil.WithInsecureSkipVerify(opts.insecureSkipVerifyTLS),
			tlsutil.WithCertKeyPairFiles(opts.certFile, opts.keyFile),
			tlsutil.WithCAFile(opts.caFile),
		)
		if err != nil {
			return nil, errors.Wrap(err, "can't create TLS config for client")
		}
		return &http.Client{
			Transport: &http.Transport{
				DisableCompression: true,
				Proxy:              http.ProxyFromEnvironment,
				TLSClientConfig:    tlsConf,
			},
		}, nil
	}

	g.once.Do(func() {
		g.transport = &http.Transport{
			DisableCompression: true,
			Proxy:              http.ProxyFromEnvironment,
		}
	})

	return &http.Client{Transport: g.transport}, nil
}

// stallReader cancels the request when no bytes arrive for timeout.
type stallReader struct {
	io.ReadCloser
	cancel  context.CancelFunc
	timeout time.Duration
	timer   *time.Timer
	stalled atomic.Bool
}

func (r *stallReader) expire() {
	r.stalled.Store(true)
	r.cancel()
}

func (r *stallReader) reset() {
	if r.timer != nil {
		r.timer.Reset(r.timeout)
	}
}

func (r *stallReader) stop() {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.cancel()
}

func (r *stallReader) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if n > 0 && !r.stalled.Load() {
		r.reset()
	}
	if err != nil && err != io.EOF && r.stalled.Load() {
		return n, errors.Errorf("transfer stalled: no data received for %s", r.timeout)
	}
	return n, err
}

func (r *stallReader) Close() error {
	defer r.stop()
	return r.ReadCloser.Close()
}
