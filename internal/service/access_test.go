package service

import (
	"testing"

	"billsnap/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessGateAuthorize(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.AccessConfig
		providerKey string
		secret      string
		callerKey   string
		wantCred    string
		wantErr     error
	}{
		{
			name:        "wrong secret rejected regardless of caller key",
			cfg:         config.AccessConfig{SharedSecret: "topsecret"},
			providerKey: "server-key",
			secret:      "nope",
			callerKey:   "caller-key",
			wantErr:     ErrInvalidSecret,
		},
		{
			name:    "no secret and no caller key requires a credential",
			cfg:     config.AccessConfig{SharedSecret: "topsecret"},
			wantErr: ErrCredentialRequired,
		},
		{
			name:    "valid secret without server key is a misconfiguration",
			cfg:     config.AccessConfig{SharedSecret: "topsecret"},
			secret:  "topsecret",
			wantErr: ErrNoProviderKey,
		},
		{
			name:        "caller key alone rejected when policy disallows it",
			cfg:         config.AccessConfig{SharedSecret: "topsecret", AllowCallerKey: false},
			providerKey: "server-key",
			callerKey:   "caller-key",
			wantErr:     ErrCallerKeyDisabled,
		},
		{
			name:        "valid secret uses the server key",
			cfg:         config.AccessConfig{SharedSecret: "topsecret"},
			providerKey: "server-key",
			secret:      "topsecret",
			wantCred:    "server-key",
		},
		{
			name:        "valid secret ignores a caller key",
			cfg:         config.AccessConfig{SharedSecret: "topsecret", AllowCallerKey: true},
			providerKey: "server-key",
			secret:      "topsecret",
			callerKey:   "caller-key",
			wantCred:    "server-key",
		},
		{
			name:        "caller key used when policy allows it",
			cfg:         config.AccessConfig{SharedSecret: "topsecret", AllowCallerKey: true},
			providerKey: "server-key",
			callerKey:   "caller-key",
			wantCred:    "caller-key",
		},
		{
			name:      "caller key allowed even without a server key",
			cfg:       config.AccessConfig{AllowCallerKey: true},
			callerKey: "caller-key",
			wantCred:  "caller-key",
		},
		{
			name:    "secret against a server with no secret configured",
			cfg:     config.AccessConfig{},
			secret:  "anything",
			wantErr: ErrInvalidSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewAccessGate(tt.cfg, tt.providerKey)

			cred, err := gate.Authorize(tt.secret, tt.callerKey)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, cred)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCred, cred)
		})
	}
}
