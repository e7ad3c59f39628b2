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

// Package tlsutil builds client TLS configurations from PEM files.
package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type options struct {
	insecureSkipVerify bool
	certPEM, keyPEM    []byte
	caPEM              []byte
}

// Option configures NewClientConfig.
type Option func(*options) error

// WithInsecureSkipVerify disables server certificate verification.
func WithInsecureSkipVerify(insecure bool) Option {
	return func(o *options) error {
		o.insecureSkipVerify = insecure
		return nil
	}
}

// WithCertKeyPairFiles loads a client certificate. Empty paths are ignored.
func WithCertKeyPairFiles(certFile, keyFile string) Option {
	return func(o *options) error {
		if certFile == "" && keyFile == "" {
			return nil
		}
		certPEM, err := os.ReadFile(certFile)
		if err != nil {
			return errors.Wrapf(err, "unable to read cert file %q", certFile)
		}
		keyPEM, err := os.ReadFile(keyFile)
		if err != nil {
			return errors.Wrapf(err, "unable to read key file %q", keyFile)
		}
		o.certPEM, o.keyPEM = certPEM, keyPEM
		return nil
	}
}

// WithCAFile trusts the certificates in caFile. An empty path is ignored.
func WithCAFile(caFile string) Option {
	return func(o *options) error {
		if caFile == "" {
			return nil
		}
		caPEM, err := os.ReadFile(caFile)
		if err != nil {
			return errors.Wrapf(err, "can't read CA file %q", caFile)
		}
		o.caPEM = caPEM
		return nil
	}
}

// NewClientConfig returns a TLS configuration for an HTTP client.
func NewClientConfig(opts ...Option) (*tls.Config, error) {
	var o options
	var result *multierror.Error
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		InsecureSkipVerify: o.insecureSkipVerify, //nolint:gosec
		MinVersion:         tls.VersionTLS12,
	}
	if len(o.certPEM) > 0 && len(o.keyPEM) > 0 {
		cert, err := tls.X509KeyPair(o.certPEM, o.keyPEM)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load cert from key pair")
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	if len(o.caPEM) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(o.caPEM) {
			return nil, errors.New("failed to append certificates from pem block")
		}
		cfg.RootCAs = pool
	}
	return cfg, nil
}
