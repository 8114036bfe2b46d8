// AngelaMos | 2026
// handler_test.go

package proof

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/primebid/auction-api/internal/config"
)

func newTestRouter(repo Repository) chi.Router {
	svc := NewService(repo, &fakeStore{}, config.StorageConfig{
		ProofFolder:   "test/proofs",
		MaxUploadSize: 1 << 20,
	})
	handler := NewHandler(svc, config.StorageConfig{MaxUploadSize: 1 << 20})

	r := chi.NewRouter()
	handler.RegisterAdminRoutes(r)
	return r
}

type responseEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(
	t *testing.T,
	router chi.Router,
	method, path, body string,
) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env responseEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	}
	return rec, env
}

func TestUpdateStatusEndpointMalformedID(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec, env := doRequest(t, router,
		http.MethodPut,
		"/paymentproof/status/update/not-a-uuid",
		`{"status":"Approved","amount":50}`,
	)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestUpdateStatusEndpointInvalidEnum(t *testing.T) {
	existing := pendingProof(25)
	router := newTestRouter(newFakeRepo(existing))

	rec, env := doRequest(t, router,
		http.MethodPut,
		"/paymentproof/status/update/"+existing.ID,
		`{"status":"Archived","amount":25}`,
	)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestUpdateStatusEndpointSuccessEnvelope(t *testing.T) {
	existing := pendingProof(25)
	router := newTestRouter(newFakeRepo(existing))

	rec, env := doRequest(t, router,
		http.MethodPut,
		"/paymentproof/status/update/"+existing.ID,
		`{"status":"Approved","amount":99.5}`,
	)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var got ProofResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Equal(t, StatusApproved, got.Status)
	require.Equal(t, 99.5, got.Amount)
}

func TestGetEndpointUnknownIDIs404(t *testing.T) {
	existing := pendingProof(25)
	router := newTestRouter(newFakeRepo())

	rec, env := doRequest(t, router,
		http.MethodGet,
		"/paymentproof/"+existing.ID,
		"",
	)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestDeleteEndpointRemovesProof(t *testing.T) {
	existing := pendingProof(25)
	repo := newFakeRepo(existing)
	router := newTestRouter(repo)

	rec, _ := doRequest(t, router,
		http.MethodDelete,
		"/paymentproof/delete/"+existing.ID,
		"",
	)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, env := doRequest(t, router,
		http.MethodGet,
		"/paymentproof/"+existing.ID,
		"",
	)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestListEndpointReturnsAllProofs(t *testing.T) {
	router := newTestRouter(newFakeRepo(pendingProof(10), pendingProof(20)))

	rec, env := doRequest(t, router,
		http.MethodGet,
		"/paymentproofs/getall",
		"",
	)

	require.Equal(t, http.StatusOK, rec.Code)

	var got ProofListResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.PaymentProofs, 2)
}
