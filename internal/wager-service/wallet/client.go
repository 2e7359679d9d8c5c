package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	walletdto "github.com/fitstake/weight-wager-platform/internal/wager-service/wallet/dto"
)

// Client fala com o coletor de pagamentos externo (wallet). O core nunca
// movimenta dinheiro; ele só pede reserva do stake na criação e, via worker,
// crédito do prêmio ou estorno no desfecho.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

// Reserve bloqueia o valor do stake na carteira do usuário (external_ref = wagerID)
func (c *Client) Reserve(ctx context.Context, userID string, cents int64, externalRef string) (string, error) {
	body, _ := json.Marshal(walletdto.ReserveRequest{UserID: userID, AmountCents: cents, ExternalRef: externalRef})
	res, err := c.post(ctx, "/wallet/reserve", body)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("wallet reserve http %d", res.StatusCode)
	}
	var out walletdto.ReserveResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ReservationID, nil
}

// Deposit credita o prêmio na carteira do usuário
func (c *Client) Deposit(ctx context.Context, userID string, cents int64, externalRef string) error {
	body, _ := json.Marshal(walletdto.DepositRequest{UserID: userID, AmountCents: cents, ExternalRef: externalRef})
	res, err := c.post(ctx, "/wallet/deposit", body)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("wallet deposit http %d", res.StatusCode)
	}
	return nil
}

// Refund desfaz a reserva do stake (cancelamento dentro da janela)
func (c *Client) Refund(ctx context.Context, userID string, externalRef string) error {
	body, _ := json.Marshal(walletdto.RefundRequest{UserID: userID, ExternalRef: externalRef})
	res, err := c.post(ctx, "/wallet/refund", body)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("wallet refund http %d", res.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.HTTP.Do(req)
}
