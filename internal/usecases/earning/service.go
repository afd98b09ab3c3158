package earning

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress"
	aliexpressdomain "github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress/domain"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/credentials"
	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
	"github.com/vfg2006/affiliate-earnings-api/pkg/utils"
)

// Monitor expõe o ciclo de atualização e a leitura do snapshot corrente
type Monitor interface {
	// RunCycle executa um ciclo completo de busca e agregação
	RunCycle(ctx context.Context) (*domain.Snapshot, error)

	// Snapshot retorna o último snapshot publicado, ou nil antes do primeiro
	// ciclo bem-sucedido
	Snapshot() *domain.Snapshot
}

// Service orquestra um ciclo de atualização: credenciais, janela contábil,
// busca paginada, agregação e publicação. Uma instância por conta monitorada.
type Service struct {
	cfg     *config.Config
	creds   credentials.Store
	fetcher aliexpress.OrderFetcher
	engine  *Engine
	store   *SnapshotStore

	cycleMutex sync.Mutex

	// now é substituível em testes
	now func() time.Time
}

func NewService(cfg *config.Config, creds credentials.Store, fetcher aliexpress.OrderFetcher) *Service {
	return &Service{
		cfg:     cfg,
		creds:   creds,
		fetcher: fetcher,
		engine:  NewEngine(),
		store:   NewSnapshotStore(),
		now:     time.Now,
	}
}

// Snapshot retorna o último snapshot publicado
func (s *Service) Snapshot() *domain.Snapshot {
	return s.store.Latest()
}

// RunCycle executa um ciclo de atualização. Em qualquer falha o ciclo é
// abandonado sem mutação de estado e o snapshot anterior permanece
// autoritativo; não há retry além do próximo tick agendado, que repete a
// mesma janela.
func (s *Service) RunCycle(ctx context.Context) (*domain.Snapshot, error) {
	if !s.cycleMutex.TryLock() {
		return nil, ErrCycleInFlight
	}
	defer s.cycleMutex.Unlock()

	creds, err := s.creds.Resolve()
	if err != nil {
		cycleErr := classifyError(err)
		logrus.WithError(err).Error("Ciclo abortado: credenciais ausentes ou inválidas")
		return nil, cycleErr
	}

	now := s.now().UTC()
	window := s.engine.DetermineWindow(now, s.cfg.OrderSync.WindowPolicy)

	logrus.WithFields(logrus.Fields{
		"window_start": window.Start.Format(time.RFC3339),
		"window_end":   window.End.Format(time.RFC3339),
	}).Debug("Iniciando ciclo de atualização de pedidos")

	orders, err := s.fetcher.FetchOrders(ctx, creds, window, s.engine.LastSeenOrderID())
	if err != nil {
		cycleErr := classifyError(err)
		s.logFetchFailure(cycleErr)
		return nil, cycleErr
	}

	snapshot := s.engine.Ingest(orders, window)
	s.store.Publish(snapshot)

	logrus.WithFields(logrus.Fields{
		"orders_fetched":    len(orders),
		"total_orders":      snapshot.TotalOrders,
		"total_commissions": snapshot.TotalCommissions,
		"window_start":      snapshot.WindowStart.Format(time.RFC3339),
	}).Info("Ciclo de atualização concluído e snapshot publicado")

	return snapshot, nil
}

// logFetchFailure registra a falha com o máximo de contexto disponível; em
// falha de formato o payload bruto vai para o log para diagnóstico
func (s *Service) logFetchFailure(cycleErr *CycleError) {
	logger := logrus.WithField("failure_kind", string(cycleErr.Kind)).WithError(cycleErr.Err)

	var formatErr *aliexpressdomain.FormatError
	if errors.As(cycleErr.Err, &formatErr) && len(formatErr.RawResponse) > 0 {
		logger = logger.WithField("raw_response", utils.PrettyJson(formatErr.RawResponse))
	}

	logger.Error("Ciclo de atualização abortado, snapshot anterior permanece")
}
