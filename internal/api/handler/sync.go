package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-earnings-api/internal/scheduler"
	"github.com/vfg2006/affiliate-earnings-api/pkg/apiErrors"
)

// SyncJobServices contém os serviços de sincronização necessários para
// execução manual e consulta de status
type SyncJobServices struct {
	OrderSyncService *scheduler.OrderSyncService
}

// RunOrderSync dispara manualmente um ciclo de sincronização de pedidos
func RunOrderSync(services SyncJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunOrderSync")

		if services.OrderSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de pedidos não disponível", nil)
			return
		}

		services.OrderSyncService.TriggerManualSync()

		response := map[string]any{
			"message": "Sincronização de pedidos iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetSyncStatus retorna o status do agendador de sincronização
func GetSyncStatus(services SyncJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSyncStatus")

		if services.OrderSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de pedidos não disponível", nil)
			return
		}

		status := map[string]any{
			"orders": services.OrderSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
