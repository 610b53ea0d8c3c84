// Package crypto implements certgen's X.509 operations: RSA key and CSR
// generation, PKCS#12 packaging, and certificate inspection.
package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"

	"github.com/turtacn/certgen/pkg/constants"
)

// Engine carries the cryptographic context of a single operation.
// A new Engine is created at the start of every operation and dropped
// when it returns; nothing is shared between operations.
type Engine struct {
	rand io.Reader
}

// newEngine returns an Engine reading randomness from r, or from
// crypto/rand when r is nil.
func newEngine(r io.Reader) *Engine {
	if r == nil {
		r = rand.Reader
	}
	return &Engine{rand: r}
}

// Rand returns the engine's random source.
func (e *Engine) Rand() io.Reader {
	return e.rand
}

// GenerateRSAKey creates a fresh RSA key of constants.RSAKeyBits.
func (e *Engine) GenerateRSAKey() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(e.rand, constants.RSAKeyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %w", err)
	}
	return key, nil
}

// Option customizes the crypto services.
type Option func(*options)

type options struct {
	random io.Reader
}

// WithRandom sets the random source used by each operation's Engine.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		o.random = r
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
