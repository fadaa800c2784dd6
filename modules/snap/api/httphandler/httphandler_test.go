package httphandler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/modules/snap/repository/memory"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gaze-network/nft-snap/pkg/decimals"
	"github.com/gaze-network/nft-snap/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	creator = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	owner   = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	minter  = "0x3C44CdDdB6a900fa2b585dd299e03d12FA6293BC"
)

type testServer struct {
	app   *fiber.App
	repo  *memory.Repository
	clock *snaps.ManualClock
}

func newTestServer(t *testing.T, faucet bool) *testServer {
	t.Helper()
	repo := memory.NewRepository()
	clock := snaps.NewManualClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	registry, err := snaps.NewRegistry(repo, snaps.RegistryConfig{
		Address:      common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		MintFeeFloor: decimals.MustParseEther("0.000001"),
		Clock:        clock,
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	require.NoError(t, New(registry, repo, faucet).Mount(app))
	return &testServer{app: app, repo: repo, clock: clock}
}

func (s *testServer) do(t *testing.T, method string, path string, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func (s *testServer) createSnap(t *testing.T) string {
	t.Helper()
	status, resp := s.do(t, http.MethodPost, "/v1/snaps", `{
		"from": "`+creator+`",
		"collectionName": "Test Snap",
		"symbol": "NFTSNAP",
		"description": "This is a test snap",
		"image": "ipfs://image",
		"sellerFeeBasisPoints": 100,
		"imageUri": "ipfs://image",
		"metadataUri": "ipfs://metadata",
		"mintFee": "0.0000092",
		"owner": "`+owner+`"
	}`)
	require.Equal(t, http.StatusCreated, status, resp)
	return resp["result"].(map[string]any)["id"].(string)
}

func TestSnapEndpoints(t *testing.T) {
	s := newTestServer(t, false)
	id := s.createSnap(t)
	require.NoError(t, s.repo.Credit(context.Background(), common.HexToAddress(minter), decimals.MustParseEther("1")))

	status, resp := s.do(t, http.MethodGet, "/v1/snaps/"+id, "")
	require.Equal(t, http.StatusOK, status)
	snap := resp["result"].(map[string]any)
	assert.Equal(t, "Test Snap", snap["name"])
	assert.Equal(t, "minting_open", snap["phase"])
	assert.Equal(t, creator, snap["feeRecipient"])
	assert.Equal(t, creator, snap["creator"])
	assert.Equal(t, "0.0000092", snap["mintFee"].(map[string]any)["ether"])
	assert.Equal(t, "9200000000000", snap["mintFee"].(map[string]any)["wei"])

	status, resp = s.do(t, http.MethodPost, "/v1/snaps/"+id+"/mint", `{"from":"`+minter+`","payment":"0.0000092"}`)
	require.Equal(t, http.StatusCreated, status, resp)
	assert.EqualValues(t, 1, resp["result"].(map[string]any)["itemId"])

	status, resp = s.do(t, http.MethodGet, "/v1/snaps/"+id+"/items/1", "")
	require.Equal(t, http.StatusOK, status)
	item := resp["result"].(map[string]any)
	assert.Equal(t, minter, item["holder"])
	assert.True(t, strings.HasPrefix(item["tokenUri"].(string), "data:application/json;base64,"))

	status, resp = s.do(t, http.MethodGet, "/v1/ledger/"+creator, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0.0000092", resp["result"].(map[string]any)["balance"].(map[string]any)["ether"])

	status, resp = s.do(t, http.MethodGet, "/v1/snaps/active", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{id}, resp["result"].(map[string]any)["ids"])

	status, resp = s.do(t, http.MethodGet, "/v1/snaps/"+id+"/events?limit=1", "")
	require.Equal(t, http.StatusOK, status)
	events := resp["result"].(map[string]any)["events"].([]any)
	require.Len(t, events, 1)
	assert.Equal(t, "minted", events[0].(map[string]any)["kind"])

	// visible but closed
	s.clock.Advance(24*time.Hour + time.Second)
	status, resp = s.do(t, http.MethodPost, "/v1/snaps/"+id+"/mint", `{"from":"`+minter+`","payment":"0.0000092"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "minting_ended", resp["code"])

	status, resp = s.do(t, http.MethodPost, "/v1/snaps/"+id+"/burn", `{"from":"`+minter+`","itemId":1}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "unauthorized_burn", resp["code"])

	status, resp = s.do(t, http.MethodGet, "/v1/snaps/"+id+"/visible", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, resp["result"].(map[string]any)["value"])

	_, resp = s.do(t, http.MethodGet, "/v1/snaps/active", "")
	assert.Empty(t, resp["result"].(map[string]any)["ids"])
	_, resp = s.do(t, http.MethodGet, "/v1/snaps/visible", "")
	assert.Equal(t, []any{id}, resp["result"].(map[string]any)["ids"])

	// expired
	s.clock.Advance(24 * time.Hour)
	_, resp = s.do(t, http.MethodGet, "/v1/snaps/visible", "")
	assert.Empty(t, resp["result"].(map[string]any)["ids"])
	status, resp = s.do(t, http.MethodPost, "/v1/snaps/"+id+"/burn", `{"from":"`+minter+`","itemId":1}`)
	require.Equal(t, http.StatusOK, status, resp)

	status, resp = s.do(t, http.MethodGet, "/v1/snaps/"+id+"/items/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "item_not_found", resp["code"])

	status, resp = s.do(t, http.MethodGet, "/v1/snaps/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, snaps.ExpiredName, resp["result"].(map[string]any)["name"])
}

func TestCreateSnapErrors(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "below floor",
			body:   `{"from":"` + creator + `","collectionName":"Test","mintFee":"0.00000001","owner":"` + owner + `"}`,
			status: http.StatusBadRequest,
			code:   "mint_fee_too_low",
		},
		{
			name:   "invalid basis points",
			body:   `{"from":"` + creator + `","collectionName":"Test","mintFee":"0.0000092","owner":"` + owner + `","sellerFeeBasisPoints":10001}`,
			status: http.StatusBadRequest,
			code:   "invalid_fee_basis_points",
		},
		{
			name:   "invalid address",
			body:   `{"from":"0x1234","collectionName":"Test","mintFee":"0.0000092","owner":"` + owner + `"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid creator",
			body:   `{"from":"` + creator + `","creator":"0x12","collectionName":"Test","mintFee":"0.0000092","owner":"` + owner + `"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "missing mint fee",
			body:   `{"from":"` + creator + `","collectionName":"Test","owner":"` + owner + `"}`,
			status: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, false)
			status, resp := s.do(t, http.MethodPost, "/v1/snaps", tc.body)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, resp["error"])
			if tc.code != "" {
				assert.Equal(t, tc.code, resp["code"])
			}

			_, resp = s.do(t, http.MethodGet, "/v1/snaps", "")
			assert.Empty(t, resp["result"].(map[string]any)["snaps"])
		})
	}
}

func TestMintErrors(t *testing.T) {
	s := newTestServer(t, false)
	id := s.createSnap(t)

	status, resp := s.do(t, http.MethodPost, "/v1/snaps/"+id+"/mint", `{"from":"`+minter+`","payment":"0.0000092"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "insufficient_funds", resp["code"])
	assert.Equal(t, "can't mint: insufficient funds", resp["error"])

	status, resp = s.do(t, http.MethodPost, "/v1/snaps/"+id+"/mint", `{"from":"`+minter+`","payment":"0.000001"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "insufficient_payment", resp["code"])

	status, resp = s.do(t, http.MethodPost, "/v1/snaps/"+id+"/mint", `{"from":"`+minter+`","payment":"1"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "excess_payment", resp["code"])

	unknown := "0x000000000000000000000000000000000000dEaD"
	status, resp = s.do(t, http.MethodPost, "/v1/snaps/"+unknown+"/mint", `{"from":"`+minter+`","payment":"0.0000092"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "unknown_instance", resp["code"])
}

func TestMalformedRequests(t *testing.T) {
	s := newTestServer(t, true)
	id := s.createSnap(t)

	testCases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{
			name:   "truncated create body",
			method: http.MethodPost,
			path:   "/v1/snaps",
			body:   `{"from":"` + creator + `","collectionName":`,
		},
		{
			name:   "basis points overflow",
			method: http.MethodPost,
			path:   "/v1/snaps",
			body:   `{"from":"` + creator + `","collectionName":"Test","mintFee":"0.0000092","owner":"` + owner + `","sellerFeeBasisPoints":70000}`,
		},
		{
			name:   "truncated mint body",
			method: http.MethodPost,
			path:   "/v1/snaps/" + id + "/mint",
			body:   `{"from":`,
		},
		{
			name:   "mistyped burn item id",
			method: http.MethodPost,
			path:   "/v1/snaps/" + id + "/burn",
			body:   `{"itemId":"one"}`,
		},
		{
			name:   "truncated credit body",
			method: http.MethodPost,
			path:   "/v1/ledger/" + minter + "/credit",
			body:   `[`,
		},
		{
			name:   "non-numeric item id",
			method: http.MethodGet,
			path:   "/v1/snaps/" + id + "/items/abc",
		},
		{
			name:   "non-numeric limit",
			method: http.MethodGet,
			path:   "/v1/snaps/" + id + "/events?limit=x",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := s.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, status, resp)
			assert.Equal(t, "invalid_request", resp["code"])
			assert.Contains(t, resp["error"], "invalid request")
		})
	}
}

func TestLedgerFaucet(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		s := newTestServer(t, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/ledger/"+minter+"/credit", strings.NewReader(`{"amount":"1"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := s.app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("enabled", func(t *testing.T) {
		s := newTestServer(t, true)
		status, resp := s.do(t, http.MethodPost, "/v1/ledger/"+minter+"/credit", `{"amount":"1.5"}`)
		require.Equal(t, http.StatusOK, status, resp)
		balance := resp["result"].(map[string]any)["balance"].(map[string]any)
		assert.Equal(t, "1.5", balance["ether"])
		assert.Equal(t, "1500000000000000000", balance["wei"])

		status, _ = s.do(t, http.MethodPost, "/v1/ledger/"+minter+"/credit", `{"amount":"0"}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
