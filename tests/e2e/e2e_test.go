//go:build integration

package e2e

// End-to-end integration tests against a real Postgres via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Henrique42/mercado-api/internal/config"
	"github.com/Henrique42/mercado-api/internal/infra"
	"github.com/Henrique42/mercado-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("mercado_test"),
		tcPostgres.WithUsername("mercado"),
		tcPostgres.WithPassword("mercado"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{
		Port:            8000,
		Env:             "test",
		DatabaseURL:     pgURL,
		CORSOrigin:      "*",
		RateLimit:       1000,
		RateLimitWindow: 60,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db))
	t.Cleanup(srv.Close)
	return srv
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Full product lifecycle: create with image, duplicate rejected, stock
// updated, removed, gone.
func TestE2E_ProdutoLifecycle(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, srv, "POST", "/api/v1/produtos", jsonBody(t, map[string]any{
		"nome":       "Arroz Integral",
		"preco":      "9.99",
		"cod_barras": "7891234567895",
		"estoque":    50,
		"imagens":    []map[string]any{{"url": "https://cdn.example.com/arroz.jpg"}},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Successo", env.Status)

	var produto struct {
		ID      uint   `json:"id"`
		Preco   string `json:"preco"`
		Estoque int    `json:"estoque"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &produto))
	assert.Equal(t, "9.99", produto.Preco)

	// Same barcode again
	resp = do(t, srv, "POST", "/api/v1/produtos", jsonBody(t, map[string]any{
		"nome": "Outro Arroz", "preco": "1.00", "cod_barras": "7891234567895",
	}))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	assert.Equal(t, "Erro", env.Status)

	// Stock 50 → 40
	resp = do(t, srv, "PATCH", fmt.Sprintf("/api/v1/produtos/%d", produto.ID),
		jsonBody(t, map[string]any{"estoque": 40}))
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	var atualizado struct {
		Estoque int `json:"estoque"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &atualizado))
	assert.Equal(t, 40, atualizado.Estoque)

	// Remove and verify 404
	resp = do(t, srv, "DELETE", fmt.Sprintf("/api/v1/produtos/%d", produto.ID), nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "GET", fmt.Sprintf("/api/v1/produtos/%d", produto.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// Order lifecycle: client + product, order with line item, item replacement
// in a single transaction, cascade on client removal.
func TestE2E_PedidoLifecycle(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, srv, "POST", "/api/v1/clientes", jsonBody(t, map[string]any{
		"nome": "Maria Souza", "email": "maria@e2e.test", "cpf": "123.456.789-00",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cliente struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &cliente))

	resp = do(t, srv, "POST", "/api/v1/produtos", jsonBody(t, map[string]any{
		"nome": "Café Torrado", "preco": "19.90", "cod_barras": "7891000000010",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var produto struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &produto))

	resp = do(t, srv, "POST", "/api/v1/pedidos", jsonBody(t, map[string]any{
		"cliente_id": cliente.ID,
		"produtos":   []map[string]any{{"produto_id": produto.ID, "quantidade": 2}},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var pedido struct {
		ID       uint   `json:"id"`
		Status   string `json:"status"`
		Produtos []struct {
			Quantidade int `json:"quantidade"`
		} `json:"produtos"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &pedido))
	assert.Equal(t, "pendente", pedido.Status)
	require.Len(t, pedido.Produtos, 1)

	// Replace line items and move status in one request
	resp = do(t, srv, "PATCH", fmt.Sprintf("/api/v1/pedidos/%d", pedido.ID),
		jsonBody(t, map[string]any{
			"status":   "enviado",
			"produtos": []map[string]any{{"produto_id": produto.ID, "quantidade": 5}},
		}))
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &pedido))
	assert.Equal(t, "enviado", pedido.Status)
	require.Len(t, pedido.Produtos, 1)
	assert.Equal(t, 5, pedido.Produtos[0].Quantidade)

	// Removing the client takes its orders with it
	resp = do(t, srv, "DELETE", fmt.Sprintf("/api/v1/clientes/%d", cliente.ID), nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "GET", fmt.Sprintf("/api/v1/pedidos/%d", pedido.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// Pagination and search over the product listing.
func TestE2E_ProdutoListagem(t *testing.T) {
	srv := setupServer(t)

	nomes := map[string]string{
		"Arroz":          "7891000000001",
		"Arroz Integral": "7891000000002",
		"Feijão Preto":   "7891000000003",
	}
	for nome, cb := range nomes {
		resp := do(t, srv, "POST", "/api/v1/produtos", jsonBody(t, map[string]any{
			"nome": nome, "preco": "1.00", "cod_barras": cb,
		}))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := do(t, srv, "GET", "/api/v1/produtos?search=arroz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lista []json.RawMessage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &lista))
	assert.Len(t, lista, 2)

	resp = do(t, srv, "GET", "/api/v1/produtos?skip=0&limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &lista))
	assert.Len(t, lista, 2)
}

// Healthcheck endpoints respond once the database is reachable.
func TestE2E_Healthcheck(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, srv, "GET", "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Página inicial da API!!", env.Message)

	resp = do(t, srv, "GET", "/api/healthchecker", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	assert.Equal(t, "API em funcionamento!!", env.Message)
}
