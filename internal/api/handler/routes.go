package handler

import (
	"net/http"

	"github.com/vfg2006/affiliate-earnings-api/internal/api/handler/router"
	"github.com/vfg2006/affiliate-earnings-api/internal/usecases/earning"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Earnings(service earning.Monitor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/earnings/snapshot",
			Method:  http.MethodGet,
			Handler: GetEarningsSnapshot(service),
		},
	}
}

func SyncJobs(services SyncJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/orders/run",
			Method:  http.MethodPost,
			Handler: RunOrderSync(services),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(services),
		},
	}
}
