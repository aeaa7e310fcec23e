package credentials

import (
	"os"

	"github.com/yanun0323/errors"
)

var ErrNotFound = errors.New("credential not found")

// Provider defines the interface for credential providers
type Provider interface {
	GetCredential(key string) (string, error)
}

// EnvProvider retrieves credentials from environment variables
type EnvProvider struct{}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

func (p *EnvProvider) GetCredential(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", errors.Wrap(ErrNotFound, key)
	}
	return value, nil
}

// StaticProvider for testing with hardcoded credentials
type StaticProvider struct {
	credentials map[string]string
}

func NewStaticProvider(creds map[string]string) *StaticProvider {
	return &StaticProvider{credentials: creds}
}

func (p *StaticProvider) GetCredential(key string) (string, error) {
	if value, ok := p.credentials[key]; ok && value != "" {
		return value, nil
	}
	return "", errors.Wrap(ErrNotFound, key)
}

// Optional returns the credential or "" when the provider has none.
func Optional(p Provider, key string) string {
	if p == nil {
		return ""
	}
	v, err := p.GetCredential(key)
	if err != nil {
		return ""
	}
	return v
}
