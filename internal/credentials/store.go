package credentials

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
)

// ErrNotConfigured indica que o par app_key/app_secret está ausente. O ciclo
// que o recebe é abortado, mas o processo continua normalmente.
var ErrNotConfigured = errors.New("credenciais da API do AliExpress não configuradas")

// Credentials é o par de credenciais usado para assinar requisições
type Credentials struct {
	AppKey    string
	AppSecret string
}

// Store resolve as credenciais da conta monitorada
type Store interface {
	Resolve() (Credentials, error)
}

// ConfigStore resolve as credenciais a partir da configuração do processo
type ConfigStore struct {
	cfg *config.Config
}

func NewConfigStore(cfg *config.Config) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

func (s *ConfigStore) Resolve() (Credentials, error) {
	creds := Credentials{
		AppKey:    s.cfg.Aliexpress.AppKey,
		AppSecret: s.cfg.Aliexpress.AppSecret,
	}

	if creds.AppKey == "" || creds.AppSecret == "" {
		return Credentials{}, ErrNotConfigured
	}

	return creds, nil
}
