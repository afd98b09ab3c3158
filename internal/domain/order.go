package domain

// Plataformas de origem reportadas pela API de pedidos de afiliados
const (
	PlatformAffiliate = "affiliate_platform"
	PlatformMixed     = "mixed"
)

// OrderRecord representa um pedido de afiliado retornado pela API.
// Os valores monetários chegam em centavos (unidade mínima da moeda) e só são
// convertidos para a unidade principal depois de somados.
type OrderRecord struct {
	OrderID                      int64  `json:"order_id"`
	OrderNumber                  string `json:"order_number,omitempty"`
	PaidAmountCents              int64  `json:"paid_amount"`
	EstimatedCommissionCents     int64  `json:"estimated_paid_commission"`
	NewBuyerBonusCommissionCents int64  `json:"new_buyer_bonus_commission"`
	CreatedTime                  string `json:"created_time,omitempty"`
	PaidTime                     string `json:"paid_time"`
	Platform                     string `json:"order_platform"`
}

// CommissionCents retorna a comissão total do pedido em centavos
func (o OrderRecord) CommissionCents() int64 {
	return o.EstimatedCommissionCents + o.NewBuyerBonusCommissionCents
}

// IsAffiliatePlatform indica se o pedido veio da plataforma de afiliados.
// Qualquer outro valor é tratado como plataforma de influenciadores.
func (o OrderRecord) IsAffiliatePlatform() bool {
	return o.Platform == PlatformAffiliate
}

// PageResponse representa uma página de pedidos retornada pela API
type PageResponse struct {
	CurrentPage      int           `json:"current_page_no"`
	TotalPages       int           `json:"total_page_no"`
	TotalRecordCount int           `json:"total_record_count"`
	Records          []OrderRecord `json:"records"`
}

// LastPage indica se esta é a última página disponível
func (p PageResponse) LastPage() bool {
	return p.CurrentPage >= p.TotalPages
}
