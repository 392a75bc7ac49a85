// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keygen implements the master key algorithms used by the consoles'
// parental control screens. The form coordinator hands it a fully resolved
// model.Request; everything here assumes the request was validated.
package keygen

import (
	"context"
	"errors"
	"fmt"

	"github.com/toeirei/masterkey/internal/logging"
	"github.com/toeirei/masterkey/internal/model"
)

var (
	// ErrNotImplemented is returned for variants whose algorithm is not
	// available yet.
	ErrNotImplemented = errors.New("algorithm variant is not implemented")
	// ErrUnsupportedPlatform is returned when a variant does not exist on
	// the requested platform.
	ErrUnsupportedPlatform = errors.New("algorithm variant is not used by platform")
	// ErrMissingInput is returned when a request lacks an input its variant
	// needs.
	ErrMissingInput = errors.New("request is missing a required input")
	// ErrInquiryRange is returned when the inquiry number encodes a region
	// or key version that has no key.
	ErrInquiryRange = errors.New("inquiry number encodes an unknown key selector")
)

// MasterKey is the code entered on the console, already zero padded.
type MasterKey string

// Calculator turns a resolved request into a master key.
type Calculator interface {
	Calculate(ctx context.Context, req model.Request) (MasterKey, error)
}

// Engine dispatches requests to the algorithm of their variant.
type Engine struct {
	keys KeyStore
}

// Option configures an Engine.
type Option func(*Engine)

// WithKeyStore sets where HMAC key material for v1 and v3 is read from.
func WithKeyStore(ks KeyStore) Option {
	return func(e *Engine) {
		e.keys = ks
	}
}

// New returns an Engine. Without a key store only v0 works.
func New(opts ...Option) *Engine {
	e := &Engine{keys: MemoryKeyStore{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate implements Calculator.
func (e *Engine) Calculate(ctx context.Context, req model.Request) (MasterKey, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	logging.Debugf("calculating %s master key for %v", req.Variant, req.Platform)

	switch req.Variant {
	case model.V0:
		return e.v0(req)
	case model.V1:
		return e.v1(req)
	case model.V3:
		return e.v3(req)
	case model.V2, model.V4:
		return "", fmt.Errorf("%w: %s", ErrNotImplemented, req.Variant)
	default:
		return "", fmt.Errorf("%w: %v", ErrNotImplemented, req.Variant)
	}
}

var _ Calculator = (*Engine)(nil)
