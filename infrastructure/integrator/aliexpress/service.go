package aliexpress

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress/aliexpressclient"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/credentials"
	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
)

// Window é a janela contábil [Start, End] consultada em um ciclo
type Window struct {
	Start time.Time
	End   time.Time
}

// OrderFetcher busca todos os pedidos de uma janela de tempo, percorrendo as
// páginas da API em sequência.
type OrderFetcher interface {
	// FetchOrders retorna os pedidos na ordem da API (mais recentes primeiro).
	// Quando lastSeenOrderID é informado e aparece em uma página, a paginação
	// para naquela página: o corte registro a registro fica a cargo do motor
	// de agregação.
	FetchOrders(ctx context.Context, creds credentials.Credentials, window Window, lastSeenOrderID *int64) ([]domain.OrderRecord, error)
}

type Service struct {
	cfg    *config.Config
	client aliexpressclient.Client
}

func New(cfg *config.Config, client aliexpressclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// FetchOrders percorre as páginas a partir da primeira, concatenando os
// registros na ordem retornada. Qualquer falha de página aborta a busca
// inteira: nenhum resultado parcial é retornado.
func (s *Service) FetchOrders(ctx context.Context, creds credentials.Credentials, window Window, lastSeenOrderID *int64) ([]domain.OrderRecord, error) {
	pageSize := s.cfg.Aliexpress.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	allOrders := []domain.OrderRecord{}
	pageNo := 1

	for {
		page, err := s.client.GetOrderList(ctx, creds, aliexpressclient.OrderListParams{
			Status:    s.cfg.Aliexpress.OrderStatus,
			StartTime: window.Start,
			EndTime:   window.End,
			PageNo:    pageNo,
			PageSize:  pageSize,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar página %d de pedidos", pageNo)
		}

		allOrders = append(allOrders, page.Records...)

		logrus.WithFields(logrus.Fields{
			"page":          page.CurrentPage,
			"total_pages":   page.TotalPages,
			"page_records":  len(page.Records),
			"total_records": page.TotalRecordCount,
		}).Debug("Página de pedidos recebida da API do AliExpress")

		// Saída antecipada: o cursor do ciclo anterior apareceu nesta página,
		// então as páginas seguintes só teriam pedidos já contabilizados
		if lastSeenOrderID != nil && containsOrder(page.Records, *lastSeenOrderID) {
			logrus.WithFields(logrus.Fields{
				"last_seen_order_id": *lastSeenOrderID,
				"page":               page.CurrentPage,
			}).Debug("Cursor encontrado, interrompendo paginação")
			break
		}

		if page.LastPage() {
			break
		}

		pageNo = page.CurrentPage + 1
	}

	return allOrders, nil
}

func containsOrder(records []domain.OrderRecord, orderID int64) bool {
	for _, record := range records {
		if record.OrderID == orderID {
			return true
		}
	}
	return false
}
