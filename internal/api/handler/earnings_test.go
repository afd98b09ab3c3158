package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
	"github.com/vfg2006/affiliate-earnings-api/internal/usecases/earning/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetEarningsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMonitor := mocks.NewMockMonitor(ctrl)

	snapshot := &domain.Snapshot{
		AffiliateCommissions:  0.50,
		InfluencerCommissions: 0.25,
		TotalCommissions:      0.75,
		TotalPaid:             8.00,
		TotalOrders:           2,
		WindowStart:           time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		LastOrderGroup: &domain.LastOrderGroup{
			TotalCommission: 0.50,
			TotalPaidAmount: 5.00,
			Platform:        domain.PlatformAffiliate,
			PaidTime:        "2024-01-10 08:00:00",
		},
		UpdatedAt: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
	}
	mockMonitor.EXPECT().Snapshot().Return(snapshot)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/earnings/snapshot", nil)

	GetEarningsSnapshot(mockMonitor)(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, 0.75, body["total_commissions"])
	assert.Equal(t, float64(2), body["total_orders"])

	lastOrder, ok := body["last_order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, domain.PlatformAffiliate, lastOrder["platform"])
}

func TestGetEarningsSnapshot_NoSnapshotYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMonitor := mocks.NewMockMonitor(ctrl)
	mockMonitor.EXPECT().Snapshot().Return(nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/earnings/snapshot", nil)

	GetEarningsSnapshot(mockMonitor)(recorder, request)

	// Antes do primeiro ciclo bem-sucedido não há snapshot publicado
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "SYNC_001", body["code"])
}
