package service

import (
	"crypto/subtle"

	"billsnap/pkg/config"
)

// AccessGate decides, before any provider call is made, whether a request is
// permitted and which provider credential the outbound call should use.
type AccessGate struct {
	cfg config.AccessConfig
	// providerKey is the server's own provider credential.
	providerKey string
}

func NewAccessGate(cfg config.AccessConfig, providerKey string) *AccessGate {
	return &AccessGate{
		cfg:         cfg,
		providerKey: providerKey,
	}
}

// Authorize evaluates the gate checks in a fixed order, short-circuiting on
// the first failure. Later checks assume earlier ones did not reject.
//
// On success it returns the effective provider credential: the server's own
// key when the shared secret was the basis of trust, otherwise the caller's
// key.
func (g *AccessGate) Authorize(secret, callerKey string) (string, error) {
	if secret != "" && subtle.ConstantTimeCompare([]byte(secret), []byte(g.cfg.SharedSecret)) != 1 {
		return "", ErrInvalidSecret
	}

	if secret == "" && callerKey == "" {
		return "", ErrCredentialRequired
	}

	if callerKey == "" && g.providerKey == "" {
		return "", ErrNoProviderKey
	}

	if secret == "" && !g.cfg.AllowCallerKey {
		return "", ErrCallerKeyDisabled
	}

	if secret != "" {
		// Trust came from the shared secret, so the outbound call uses the
		// server's own key regardless of any caller-supplied one.
		if g.providerKey == "" {
			return "", ErrNoProviderKey
		}
		return g.providerKey, nil
	}

	return callerKey, nil
}
