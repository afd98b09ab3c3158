package earning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name            string
		orders          []domain.OrderRecord
		lastSeenOrderID *int64
		wantDelta       TotalsDelta
		wantCursor      *int64
	}{
		{
			name:            "Lista vazia produz delta zero e mantém cursor",
			orders:          nil,
			lastSeenOrderID: int64Ptr(42),
			wantDelta:       TotalsDelta{},
			wantCursor:      int64Ptr(42),
		},
		{
			name: "Sem cursor, todos os pedidos entram no delta",
			orders: []domain.OrderRecord{
				{OrderID: 30, PaidAmountCents: 1000, EstimatedCommissionCents: 100, Platform: domain.PlatformAffiliate},
				{OrderID: 20, PaidAmountCents: 2000, EstimatedCommissionCents: 200, NewBuyerBonusCommissionCents: 50, Platform: "influencer_platform"},
				{OrderID: 10, PaidAmountCents: 500, EstimatedCommissionCents: 25, Platform: domain.PlatformAffiliate},
			},
			wantDelta: TotalsDelta{
				AffiliateCommissionCents:  125,
				InfluencerCommissionCents: 250,
				PaidAmountCents:           3500,
				Orders:                    3,
			},
			wantCursor: int64Ptr(30),
		},
		{
			name: "Cursor no meio da lista interrompe a varredura",
			orders: []domain.OrderRecord{
				{OrderID: 30, PaidAmountCents: 1000, EstimatedCommissionCents: 100, Platform: domain.PlatformAffiliate},
				{OrderID: 20, PaidAmountCents: 2000, EstimatedCommissionCents: 200, Platform: domain.PlatformAffiliate},
				{OrderID: 10, PaidAmountCents: 500, EstimatedCommissionCents: 25, Platform: domain.PlatformAffiliate},
			},
			lastSeenOrderID: int64Ptr(20),
			wantDelta: TotalsDelta{
				AffiliateCommissionCents: 100,
				PaidAmountCents:          1000,
				Orders:                   1,
			},
			wantCursor: int64Ptr(30),
		},
		{
			name: "Plataforma desconhecida conta como influenciador",
			orders: []domain.OrderRecord{
				{OrderID: 5, PaidAmountCents: 100, EstimatedCommissionCents: 10, Platform: "something_else"},
			},
			wantDelta: TotalsDelta{
				InfluencerCommissionCents: 10,
				PaidAmountCents:           100,
				Orders:                    1,
			},
			wantCursor: int64Ptr(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, cursor := ComputeTotals(tt.orders, tt.lastSeenOrderID)

			assert.Equal(t, tt.wantDelta, delta)
			require.NotNil(t, cursor)
			assert.Equal(t, *tt.wantCursor, *cursor)
		})
	}
}

func TestComputeTotals_CountsAllOrdersWithoutCursor(t *testing.T) {
	// Sem cursor, o total de pedidos do delta é o tamanho da lista de entrada
	orders := make([]domain.OrderRecord, 37)
	for i := range orders {
		orders[i] = domain.OrderRecord{OrderID: int64(1000 - i), PaidAmountCents: 1}
	}

	delta, _ := ComputeTotals(orders, nil)

	assert.Equal(t, int64(len(orders)), delta.Orders)
}

func TestComputeTotals_IdempotentUnderCursor(t *testing.T) {
	// Reprocessar a mesma lista com o cursor apontando para o pedido mais
	// recente produz delta zero: nada é contado duas vezes
	orders := []domain.OrderRecord{
		{OrderID: 30, PaidAmountCents: 1000, EstimatedCommissionCents: 100, Platform: domain.PlatformAffiliate},
		{OrderID: 20, PaidAmountCents: 2000, EstimatedCommissionCents: 200, Platform: "influencer_platform"},
	}

	_, cursor := ComputeTotals(orders, nil)
	require.NotNil(t, cursor)
	assert.Equal(t, int64(30), *cursor)

	delta, newCursor := ComputeTotals(orders, cursor)

	assert.Equal(t, TotalsDelta{}, delta)
	require.NotNil(t, newCursor)
	assert.Equal(t, *cursor, *newCursor)
}

func TestIngest_SingleDivisionAfterSummation(t *testing.T) {
	// Três pedidos de 1 centavo: somar em centavos e dividir uma única vez
	// dá exatamente 0.03; dividir registro a registro acumula desvio de
	// ponto flutuante
	orders := []domain.OrderRecord{
		{OrderID: 3, PaidAmountCents: 1, EstimatedCommissionCents: 1, Platform: domain.PlatformAffiliate, PaidTime: "2024-01-03"},
		{OrderID: 2, PaidAmountCents: 1, EstimatedCommissionCents: 1, Platform: domain.PlatformAffiliate, PaidTime: "2024-01-02"},
		{OrderID: 1, PaidAmountCents: 1, EstimatedCommissionCents: 1, Platform: domain.PlatformAffiliate, PaidTime: "2024-01-01"},
	}

	perRecord := 0.01 + 0.01 + 0.01
	summedThenDivided := float64(3) / 100.0
	require.NotEqual(t, summedThenDivided, perRecord, "as duas estratégias precisam divergir nesta entrada")

	engine := NewEngine()
	snapshot := engine.Ingest(orders, aliexpress.Window{Start: time.Now(), End: time.Now()})

	assert.Equal(t, summedThenDivided, snapshot.AffiliateCommissions)
	assert.Equal(t, summedThenDivided, snapshot.TotalPaid)
	assert.NotEqual(t, perRecord, snapshot.AffiliateCommissions)
}

func TestComputeLastOrderGroup(t *testing.T) {
	tests := []struct {
		name   string
		orders []domain.OrderRecord
		want   *domain.LastOrderGroup
	}{
		{
			name:   "Lista vazia retorna nil",
			orders: nil,
			want:   nil,
		},
		{
			name: "Pedidos com mesmo paid_time e plataformas diferentes formam grupo mixed",
			orders: []domain.OrderRecord{
				{OrderID: 3, PaidTime: "T1", Platform: "A", PaidAmountCents: 100},
				{OrderID: 2, PaidTime: "T1", Platform: "B", PaidAmountCents: 200},
				{OrderID: 1, PaidTime: "T0", Platform: "A", PaidAmountCents: 50},
			},
			want: &domain.LastOrderGroup{
				TotalCommission: 0,
				TotalPaidAmount: 3.00,
				Platform:        domain.PlatformMixed,
				PaidTime:        "T1",
			},
		},
		{
			name: "Grupo de plataforma única mantém o nome da plataforma",
			orders: []domain.OrderRecord{
				{OrderID: 3, PaidTime: "T1", Platform: domain.PlatformAffiliate, PaidAmountCents: 100, EstimatedCommissionCents: 10},
				{OrderID: 2, PaidTime: "T1", Platform: domain.PlatformAffiliate, PaidAmountCents: 200, EstimatedCommissionCents: 20, NewBuyerBonusCommissionCents: 5},
			},
			want: &domain.LastOrderGroup{
				TotalCommission: 0.35,
				TotalPaidAmount: 3.00,
				Platform:        domain.PlatformAffiliate,
				PaidTime:        "T1",
			},
		},
		{
			name: "Igualdade de paid_time é textual, sem parse de tempo",
			orders: []domain.OrderRecord{
				{OrderID: 2, PaidTime: "2024-01-01 00:00:00", Platform: "A", PaidAmountCents: 100},
				{OrderID: 1, PaidTime: "2024-01-01 00:00:00.0", Platform: "A", PaidAmountCents: 900},
			},
			want: &domain.LastOrderGroup{
				TotalCommission: 0,
				TotalPaidAmount: 1.00,
				Platform:        "A",
				PaidTime:        "2024-01-01 00:00:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := ComputeLastOrderGroup(tt.orders)

			assert.Equal(t, tt.want, group)
		})
	}
}

func TestDetermineWindow(t *testing.T) {
	now := time.Date(2024, time.April, 16, 10, 30, 0, 0, time.UTC)

	t.Run("Primeiro ciclo ancora no início do bimestre corrente", func(t *testing.T) {
		engine := NewEngine()

		window := engine.DetermineWindow(now, config.WindowPolicyBimester)

		// Abril pertence ao bimestre março-abril
		assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), window.Start)
		assert.Equal(t, now, window.End)
	})

	t.Run("Política mensal ancora no primeiro dia do mês", func(t *testing.T) {
		engine := NewEngine()

		window := engine.DetermineWindow(now, config.WindowPolicyMonth)

		assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), window.Start)
	})

	t.Run("Ciclos seguintes rolam a janela a partir do fim anterior", func(t *testing.T) {
		engine := NewEngine()
		engine.Ingest(nil, aliexpress.Window{Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), End: now})

		later := now.Add(5 * time.Minute)
		window := engine.DetermineWindow(later, config.WindowPolicyBimester)

		assert.Equal(t, now, window.Start)
		assert.Equal(t, later, window.End)
	})
}

func TestIngest_EmptyFetchKeepsLastOrderGroup(t *testing.T) {
	engine := NewEngine()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	first := engine.Ingest([]domain.OrderRecord{
		{OrderID: 10, PaidTime: "2024-01-10", Platform: domain.PlatformAffiliate, PaidAmountCents: 500, EstimatedCommissionCents: 50},
	}, aliexpress.Window{Start: start, End: start.Add(time.Hour)})
	require.NotNil(t, first.LastOrderGroup)

	second := engine.Ingest(nil, aliexpress.Window{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)})

	require.NotNil(t, second.LastOrderGroup)
	assert.Equal(t, first.LastOrderGroup, second.LastOrderGroup)
	assert.Equal(t, first.TotalOrders, second.TotalOrders)
}
