package aliexpressclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	aliexpressdomain "github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress/domain"
	"github.com/vfg2006/affiliate-earnings-api/internal/credentials"
	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	methodOrderList = "aliexpress.affiliate.order.list"
	signMethod      = "hmac-sha256"
	timeTypePayment = "Payment Completed Time"
	localeGlobal    = "global"

	// Formato de data/hora aceito pela API (UTC)
	APITimeLayout = "2006-01-02 15:04:05"
)

// Campos solicitados por pedido na operação de listagem
var orderListFields = strings.Join([]string{
	"order_id",
	"order_number",
	"paid_amount",
	"estimated_paid_commission",
	"new_buyer_bonus_commission",
	"created_time",
	"paid_time",
	"order_platform",
}, ",")

// flexInt aceita números que a API ora envia como inteiro, ora como string
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return err
	}

	*f = flexInt(value)
	return nil
}

type wireOrder struct {
	OrderID                 flexInt `json:"order_id"`
	OrderNumber             string  `json:"order_number"`
	PaidAmount              flexInt `json:"paid_amount"`
	EstimatedPaidCommission flexInt `json:"estimated_paid_commission"`
	NewBuyerBonusCommission flexInt `json:"new_buyer_bonus_commission"`
	CreatedTime             string  `json:"created_time"`
	PaidTime                string  `json:"paid_time"`
	OrderPlatform           string  `json:"order_platform"`
}

type orderListResult struct {
	CurrentPageNo    flexInt `json:"current_page_no"`
	TotalPageNo      flexInt `json:"total_page_no"`
	TotalRecordCount flexInt `json:"total_record_count"`
	Orders           struct {
		Order jsoniter.RawMessage `json:"order"`
	} `json:"orders"`
}

type respResult struct {
	Result orderListResult `json:"result"`
}

type responseEnvelope struct {
	RespResult *respResult `json:"resp_result"`
}

// GetOrderList executa uma chamada assinada à operação
// aliexpress.affiliate.order.list e retorna uma página normalizada de pedidos.
// Não há retry nesta camada: a política de repetição pertence ao ciclo de
// atualização.
func (c *AliexpressClient) GetOrderList(ctx context.Context, creds credentials.Credentials, params OrderListParams) (*domain.PageResponse, error) {
	requestParams := map[string]string{
		"app_key":     creds.AppKey,
		"timestamp":   strconv.FormatInt(time.Now().UnixMilli(), 10),
		"sign_method": signMethod,
		"method":      methodOrderList,
		"time_type":   timeTypePayment,
		"status":      params.Status,
		"start_time":  params.StartTime.UTC().Format(APITimeLayout),
		"end_time":    params.EndTime.UTC().Format(APITimeLayout),
		"fields":      orderListFields,
		"locale_site": localeGlobal,
		"page_no":     strconv.Itoa(params.PageNo),
		"page_size":   strconv.Itoa(params.PageSize),
	}
	requestParams["sign"] = GenerateSignature(creds.AppSecret, requestParams)

	query := url.Values{}
	for key, value := range requestParams {
		query.Set(key, value)
	}

	endpoint := c.config.Aliexpress.BaseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &aliexpressdomain.TransportError{Op: "build_request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &aliexpressdomain.TransportError{Op: "http_get", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &aliexpressdomain.TransportError{Op: "read_body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &aliexpressdomain.TransportError{
			Op:  "http_status",
			Err: errStatus(resp.Status),
		}
	}

	return parseOrderListResponse(body)
}

type errStatus string

func (e errStatus) Error() string {
	return "requisição falhou com status: " + string(e)
}

// parseOrderListResponse localiza a chave terminada em "_response", extrai
// resp_result.result e normaliza a lista de pedidos.
func parseOrderListResponse(body []byte) (*domain.PageResponse, error) {
	var payload map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &aliexpressdomain.FormatError{
			Message:     "corpo da resposta não é um objeto JSON",
			RawResponse: body,
		}
	}

	var mainKey string
	for key := range payload {
		if strings.HasSuffix(key, "_response") {
			mainKey = key
			break
		}
	}
	if mainKey == "" {
		return nil, &aliexpressdomain.FormatError{
			Message:     "resposta sem chave *_response",
			RawResponse: body,
		}
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(payload[mainKey], &envelope); err != nil || envelope.RespResult == nil {
		return nil, &aliexpressdomain.FormatError{
			Message:     "resposta sem resp_result",
			RawResponse: body,
		}
	}

	result := envelope.RespResult.Result

	records, err := normalizeOrders(result.Orders.Order, body)
	if err != nil {
		return nil, err
	}

	return &domain.PageResponse{
		CurrentPage:      int(result.CurrentPageNo),
		TotalPages:       int(result.TotalPageNo),
		TotalRecordCount: int(result.TotalRecordCount),
		Records:          records,
	}, nil
}

// normalizeOrders aceita tanto uma lista de pedidos quanto um objeto único,
// forma que a API usa quando há exatamente um pedido na página.
func normalizeOrders(raw jsoniter.RawMessage, body []byte) ([]domain.OrderRecord, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []domain.OrderRecord{}, nil
	}

	var wireOrders []wireOrder
	if err := json.Unmarshal(raw, &wireOrders); err != nil {
		var single wireOrder
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, &aliexpressdomain.FormatError{
				Message:     "'orders.order' não é lista nem objeto de pedido",
				RawResponse: body,
			}
		}
		wireOrders = []wireOrder{single}
	}

	records := make([]domain.OrderRecord, 0, len(wireOrders))
	for _, order := range wireOrders {
		records = append(records, domain.OrderRecord{
			OrderID:                      int64(order.OrderID),
			OrderNumber:                  order.OrderNumber,
			PaidAmountCents:              int64(order.PaidAmount),
			EstimatedCommissionCents:     int64(order.EstimatedPaidCommission),
			NewBuyerBonusCommissionCents: int64(order.NewBuyerBonusCommission),
			CreatedTime:                  order.CreatedTime,
			PaidTime:                     order.PaidTime,
			Platform:                     order.OrderPlatform,
		})
	}

	return records, nil
}
