package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-earnings-api/internal/usecases/earning"
	"github.com/vfg2006/affiliate-earnings-api/pkg/apiErrors"
)

// GetEarningsSnapshot retorna o último snapshot publicado das métricas de
// comissões. Leitura pura: nunca dispara um ciclo de atualização.
func GetEarningsSnapshot(service earning.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetEarningsSnapshot")

		snapshot := service.Snapshot()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotUnavailable, "Nenhum ciclo de sincronização concluído ainda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	}
}
