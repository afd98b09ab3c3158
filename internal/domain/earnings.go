package domain

import "time"

// AccumulatedTotals guarda os totais acumulados desde a âncora da janela
// contábil. Valores monetários na unidade principal da moeda: a divisão por 100
// acontece uma única vez por ciclo, depois da soma em centavos.
type AccumulatedTotals struct {
	AffiliateCommissions  float64 `json:"affiliate_commissions"`
	InfluencerCommissions float64 `json:"influencer_commissions"`
	TotalPaid             float64 `json:"total_paid"`
	TotalOrders           int64   `json:"total_orders"`
}

// LastOrderGroup agrupa os pedidos que compartilham o paid_time mais recente
// da última busca. Recalculado a cada ciclo, nunca acumulado.
type LastOrderGroup struct {
	TotalCommission float64 `json:"total_commission"`
	TotalPaidAmount float64 `json:"total_paid_amount"`
	Platform        string  `json:"platform"`
	PaidTime        string  `json:"paid_time"`
}

// Snapshot é a cópia imutável das métricas agregadas publicada ao final de
// cada ciclo bem-sucedido. Em caso de falha o snapshot anterior permanece
// visível para a camada de apresentação.
type Snapshot struct {
	AffiliateCommissions  float64         `json:"affiliate_commissions"`
	InfluencerCommissions float64         `json:"influencer_commissions"`
	TotalCommissions      float64         `json:"total_commissions"`
	TotalPaid             float64         `json:"total_paid"`
	TotalOrders           int64           `json:"total_orders"`
	WindowStart           time.Time       `json:"window_start"`
	LastOrderGroup        *LastOrderGroup `json:"last_order"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
