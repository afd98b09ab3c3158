package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/usecases/earning"
)

// OrderSyncConfig representa a configuração do agendador de sincronização de
// pedidos
type OrderSyncConfig struct {
	IntervalMinutes int
	RunOnStartup    bool
	SyncEnabled     bool
}

// OrderSyncService gerencia o agendamento e execução dos ciclos de
// atualização de pedidos. Exatamente um ciclo pode estar ativo por vez: ticks
// que chegam com um ciclo em andamento são ignorados.
type OrderSyncService struct {
	scheduler *gocron.Scheduler
	config    OrderSyncConfig
	monitor   earning.Monitor

	// Contexto base dos ciclos, definido em Start. Disparos manuais usam este
	// contexto e não o da requisição HTTP, que morre junto com a resposta.
	baseCtx context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewOrderSyncService cria uma nova instância do agendador de sincronização
// de pedidos
func NewOrderSyncService(monitor earning.Monitor, appConfig *config.Config) *OrderSyncService {
	syncConfig := OrderSyncConfig{
		IntervalMinutes: appConfig.OrderSync.IntervalMinutes,
		RunOnStartup:    appConfig.OrderSync.RunOnStartup,
		SyncEnabled:     appConfig.OrderSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"interval_minutes": syncConfig.IntervalMinutes,
		"run_on_startup":   syncConfig.RunOnStartup,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de pedidos carregada")

	return &OrderSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		monitor:   monitor,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *OrderSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de pedidos desabilitada por configuração")
		return nil
	}

	interval := time.Duration(s.config.IntervalMinutes) * time.Minute
	logrus.WithField("interval", interval.String()).Info("Iniciando agendador de sincronização de pedidos")

	_, err := s.scheduler.Every(interval).Do(func() {
		s.runSyncCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de pedidos")
		s.scheduler.Stop()
	}()

	// Primeiro ciclo imediato, antes do primeiro tick do intervalo
	if s.config.RunOnStartup {
		go s.runSyncCycle(ctx)
	}

	return nil
}

// runSyncCycle executa um ciclo de atualização com semântica de pular se
// ocupado: a mutação dos totais acumulados não é segura sob ciclos
// concorrentes
func (s *OrderSyncService) runSyncCycle(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de atualização já em andamento, ignorando tick")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando ciclo de atualização de pedidos")

	snapshot, err := s.monitor.RunCycle(ctx)
	if err != nil {
		if errors.Is(err, earning.ErrCycleInFlight) {
			logrus.Info("Ciclo de atualização já em andamento, ignorando")
			return
		}
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Ciclo de atualização de pedidos falhou")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"total_orders": snapshot.TotalOrders,
	}).Info("Ciclo de atualização de pedidos concluído")
}

// TriggerManualSync inicia manualmente um ciclo de atualização
func (s *OrderSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de atualização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de atualização de pedidos")
	go s.runSyncCycle(s.baseCtx)
}

// GetStatus retorna o status atual do agendador
func (s *OrderSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_minutes":  s.config.IntervalMinutes,
		"run_on_startup":         s.config.RunOnStartup,
		"retention_policy":       "estado em memória, zerado a cada reinício",
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
