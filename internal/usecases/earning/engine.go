package earning

import (
	"time"

	"github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
)

// TotalsDelta é o resultado de um ciclo de agregação, ainda em centavos.
// A conversão para a unidade principal acontece uma única vez, na aplicação
// do delta, para não acumular erro de ponto flutuante registro a registro.
type TotalsDelta struct {
	AffiliateCommissionCents  int64
	InfluencerCommissionCents int64
	PaidAmountCents           int64
	Orders                    int64
}

// Engine é o núcleo com estado da agregação: guarda os totais acumulados, o
// cursor do último pedido contabilizado e o grupo de pedidos mais recente.
// Vive na memória do processo e é zerado em reinícios — limitação documentada,
// não há camada de persistência.
type Engine struct {
	totals          domain.AccumulatedTotals
	lastSeenOrderID *int64
	windowStart     time.Time
	lastWindowEnd   *time.Time
	lastOrderGroup  *domain.LastOrderGroup
}

func NewEngine() *Engine {
	return &Engine{}
}

// LastSeenOrderID retorna o cursor do último ciclo bem-sucedido
func (e *Engine) LastSeenOrderID() *int64 {
	return e.lastSeenOrderID
}

// DetermineWindow calcula a janela contábil [start, now] do próximo ciclo.
// Depois de um ciclo bem-sucedido a janela rola para frente a partir do fim
// do ciclo anterior; no primeiro ciclo ela ancora no primeiro dia do período
// corrente conforme a política configurada.
func (e *Engine) DetermineWindow(now time.Time, policy string) aliexpress.Window {
	if e.lastWindowEnd != nil {
		return aliexpress.Window{Start: *e.lastWindowEnd, End: now}
	}

	return aliexpress.Window{Start: periodAnchor(now, policy), End: now}
}

// periodAnchor retorna o primeiro dia do período contábil corrente
func periodAnchor(now time.Time, policy string) time.Time {
	month := now.Month()
	if policy != config.WindowPolicyMonth {
		// Bimestre: jan, mar, mai, jul, set, nov
		month = time.Month(((int(now.Month())-1)/2)*2 + 1)
	}

	return time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
}

// ComputeTotals percorre os pedidos na ordem recebida da API (mais recentes
// primeiro) e soma comissões e valores pagos em centavos. Ao encontrar o
// cursor lastSeenOrderID a varredura para: tudo dali em diante já foi
// contabilizado em ciclo anterior. Retorna o delta e o novo cursor (o pedido
// mais recente varrido, ou o cursor de entrada quando nada novo apareceu).
func ComputeTotals(orders []domain.OrderRecord, lastSeenOrderID *int64) (TotalsDelta, *int64) {
	delta := TotalsDelta{}
	newCursor := lastSeenOrderID

	for i, order := range orders {
		if lastSeenOrderID != nil && order.OrderID == *lastSeenOrderID {
			break
		}

		if order.IsAffiliatePlatform() {
			delta.AffiliateCommissionCents += order.CommissionCents()
		} else {
			delta.InfluencerCommissionCents += order.CommissionCents()
		}
		delta.PaidAmountCents += order.PaidAmountCents
		delta.Orders++

		if i == 0 {
			orderID := order.OrderID
			newCursor = &orderID
		}
	}

	return delta, newCursor
}

// ComputeLastOrderGroup retorna o grupo de pedidos que compartilham o
// paid_time mais recente da busca, com comissão e valor pago somados. A
// igualdade é textual: nenhum parse numérico de tempo, sem janela de
// tolerância. Retorna nil para entrada vazia.
func ComputeLastOrderGroup(orders []domain.OrderRecord) *domain.LastOrderGroup {
	if len(orders) == 0 {
		return nil
	}

	lastPaidTime := orders[0].PaidTime

	var commissionCents, paidCents int64
	platforms := map[string]struct{}{}

	for _, order := range orders {
		if order.PaidTime != lastPaidTime {
			continue
		}

		commissionCents += order.CommissionCents()
		paidCents += order.PaidAmountCents
		platforms[order.Platform] = struct{}{}
	}

	platform := orders[0].Platform
	if len(platforms) > 1 {
		platform = domain.PlatformMixed
	}

	return &domain.LastOrderGroup{
		TotalCommission: float64(commissionCents) / 100.0,
		TotalPaidAmount: float64(paidCents) / 100.0,
		Platform:        platform,
		PaidTime:        lastPaidTime,
	}
}

// Ingest aplica o resultado de um ciclo bem-sucedido: soma o delta aos totais,
// avança o cursor e a janela e devolve o snapshot resultante. Só é chamado
// depois que a busca inteira deu certo, então a mutação é tudo-ou-nada por
// ciclo.
func (e *Engine) Ingest(orders []domain.OrderRecord, window aliexpress.Window) *domain.Snapshot {
	delta, newCursor := ComputeTotals(orders, e.lastSeenOrderID)

	e.totals.AffiliateCommissions += float64(delta.AffiliateCommissionCents) / 100.0
	e.totals.InfluencerCommissions += float64(delta.InfluencerCommissionCents) / 100.0
	e.totals.TotalPaid += float64(delta.PaidAmountCents) / 100.0
	e.totals.TotalOrders += delta.Orders

	e.lastSeenOrderID = newCursor
	e.windowStart = window.Start
	windowEnd := window.End
	e.lastWindowEnd = &windowEnd

	// Busca vazia mantém o último grupo conhecido
	if len(orders) > 0 {
		e.lastOrderGroup = ComputeLastOrderGroup(orders)
	}

	return e.buildSnapshot(window.End)
}

func (e *Engine) buildSnapshot(updatedAt time.Time) *domain.Snapshot {
	var group *domain.LastOrderGroup
	if e.lastOrderGroup != nil {
		groupCopy := *e.lastOrderGroup
		group = &groupCopy
	}

	return &domain.Snapshot{
		AffiliateCommissions:  e.totals.AffiliateCommissions,
		InfluencerCommissions: e.totals.InfluencerCommissions,
		TotalCommissions:      e.totals.AffiliateCommissions + e.totals.InfluencerCommissions,
		TotalPaid:             e.totals.TotalPaid,
		TotalOrders:           e.totals.TotalOrders,
		WindowStart:           e.windowStart,
		LastOrderGroup:        group,
		UpdatedAt:             updatedAt,
	}
}
