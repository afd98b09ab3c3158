package aliexpressclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/credentials"
	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
)

// OrderListParams define a janela de tempo e a paginação de uma consulta de
// pedidos. Status vazio significa todos os status.
type OrderListParams struct {
	Status    string
	StartTime time.Time
	EndTime   time.Time
	PageNo    int
	PageSize  int
}

type Client interface {
	GetOrderList(ctx context.Context, creds credentials.Credentials, params OrderListParams) (*domain.PageResponse, error)
}

type AliexpressClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Aliexpress.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &AliexpressClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
