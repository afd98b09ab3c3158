package aliexpressclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	aliexpressdomain "github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress/domain"
	"github.com/vfg2006/affiliate-earnings-api/internal/config"
	"github.com/vfg2006/affiliate-earnings-api/internal/credentials"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Aliexpress.BaseURL = server.URL
	cfg.Aliexpress.RequestTimeoutSeconds = 5

	return NewClient(cfg)
}

func testParams() OrderListParams {
	return OrderListParams{
		Status:    "Completed Settlement",
		StartTime: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, time.January, 15, 12, 30, 0, 0, time.UTC),
		PageNo:    1,
		PageSize:  50,
	}
}

func TestGetOrderList_ParsesResponse(t *testing.T) {
	creds := credentials.Credentials{AppKey: "123456", AppSecret: "app-secret"}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		assert.Equal(t, "aliexpress.affiliate.order.list", query.Get("method"))
		assert.Equal(t, "hmac-sha256", query.Get("sign_method"))
		assert.Equal(t, "Payment Completed Time", query.Get("time_type"))
		assert.Equal(t, "2024-01-01 00:00:00", query.Get("start_time"))
		assert.Equal(t, "2024-01-15 12:30:00", query.Get("end_time"))
		assert.Equal(t, "1", query.Get("page_no"))
		assert.Equal(t, "50", query.Get("page_size"))

		// O servidor recalcula a assinatura a partir dos parâmetros
		// recebidos: a requisição deve chegar assinada de forma consistente
		received := map[string]string{}
		for key := range query {
			if key == "sign" {
				continue
			}
			received[key] = query.Get(key)
		}
		assert.Equal(t, GenerateSignature(creds.AppSecret, received), query.Get("sign"))

		w.Write([]byte(`{
			"aliexpress_affiliate_order_list_response": {
				"resp_result": {
					"resp_code": 200,
					"result": {
						"current_page_no": 1,
						"total_page_no": "3",
						"total_record_count": 120,
						"orders": {
							"order": [
								{
									"order_id": 9001,
									"order_number": "A-9001",
									"paid_amount": "1250",
									"estimated_paid_commission": 80,
									"new_buyer_bonus_commission": "5",
									"paid_time": "2024-01-10 08:00:00",
									"order_platform": "affiliate_platform"
								},
								{
									"order_id": "9000",
									"paid_amount": 300,
									"estimated_paid_commission": "20",
									"paid_time": "2024-01-09 07:00:00",
									"order_platform": "influencer_platform"
								}
							]
						}
					}
				}
			}
		}`))
	})

	page, err := client.GetOrderList(context.Background(), creds, testParams())
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 120, page.TotalRecordCount)

	require.Len(t, page.Records, 2)

	first := page.Records[0]
	assert.Equal(t, int64(9001), first.OrderID)
	assert.Equal(t, "A-9001", first.OrderNumber)
	assert.Equal(t, int64(1250), first.PaidAmountCents)
	assert.Equal(t, int64(80), first.EstimatedCommissionCents)
	assert.Equal(t, int64(5), first.NewBuyerBonusCommissionCents)
	assert.Equal(t, "2024-01-10 08:00:00", first.PaidTime)
	assert.Equal(t, "affiliate_platform", first.Platform)

	// Campos numéricos chegam ora como inteiro, ora como string
	second := page.Records[1]
	assert.Equal(t, int64(9000), second.OrderID)
	assert.Equal(t, int64(300), second.PaidAmountCents)
	assert.Equal(t, int64(20), second.EstimatedCommissionCents)
}

func TestGetOrderList_SingleOrderObject(t *testing.T) {
	// Com um único pedido na página a API devolve um objeto em vez de lista
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"aliexpress_affiliate_order_list_response": {
				"resp_result": {
					"result": {
						"current_page_no": 1,
						"total_page_no": 1,
						"total_record_count": 1,
						"orders": {
							"order": {
								"order_id": 777,
								"paid_amount": 100,
								"order_platform": "affiliate_platform"
							}
						}
					}
				}
			}
		}`))
	})

	page, err := client.GetOrderList(context.Background(), credentials.Credentials{AppKey: "k", AppSecret: "s"}, testParams())
	require.NoError(t, err)

	require.Len(t, page.Records, 1)
	assert.Equal(t, int64(777), page.Records[0].OrderID)
}

func TestGetOrderList_EmptyOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"aliexpress_affiliate_order_list_response": {
				"resp_result": {
					"result": {
						"current_page_no": 1,
						"total_page_no": 1,
						"total_record_count": 0,
						"orders": {"order": null}
					}
				}
			}
		}`))
	})

	page, err := client.GetOrderList(context.Background(), credentials.Credentials{AppKey: "k", AppSecret: "s"}, testParams())
	require.NoError(t, err)

	assert.Empty(t, page.Records)
	assert.Equal(t, 0, page.TotalRecordCount)
}

func TestGetOrderList_MissingRespResult(t *testing.T) {
	rawBody := `{"error_response":{"code":"IllegalSignature","msg":"assinatura inválida"}}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rawBody))
	})

	page, err := client.GetOrderList(context.Background(), credentials.Credentials{AppKey: "k", AppSecret: "s"}, testParams())

	require.Error(t, err)
	assert.Nil(t, page)

	// O corpo original fica preservado para diagnóstico
	var formatErr *aliexpressdomain.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, rawBody, string(formatErr.RawResponse))
}

func TestGetOrderList_NonJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.GetOrderList(context.Background(), credentials.Credentials{AppKey: "k", AppSecret: "s"}, testParams())

	var formatErr *aliexpressdomain.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "<html>gateway error</html>", string(formatErr.RawResponse))
}

func TestGetOrderList_HTTPStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	page, err := client.GetOrderList(context.Background(), credentials.Credentials{AppKey: "k", AppSecret: "s"}, testParams())

	require.Error(t, err)
	assert.Nil(t, page)

	var transportErr *aliexpressdomain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "http_status", transportErr.Op)
}

func TestGetOrderList_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetOrderList(ctx, credentials.Credentials{AppKey: "k", AppSecret: "s"}, testParams())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
