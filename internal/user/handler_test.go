// AngelaMos | 2026
// handler_test.go

package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/primebid/auction-api/internal/auth"
	"github.com/primebid/auction-api/internal/middleware"
)

type fakeRepo struct {
	Repository

	created     []*User
	emailTaken  bool
	leaderboard []User
}

func (f *fakeRepo) Create(_ context.Context, user *User) error {
	f.created = append(f.created, user)
	return nil
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeRepo) Leaderboard(_ context.Context, _ int) ([]User, error) {
	return f.leaderboard, nil
}

type responseEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(repo Repository) chi.Router {
	handler := NewHandler(NewService(repo))

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	handler.RegisterAdminRoutes(r)
	return r
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

func TestCreateSuperAdminMinimalBody(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)

	rec, env := doRequest(t, router,
		http.MethodPost,
		"/createsuperadmin",
		`{
			"userName": "reviewdesk",
			"email": "Desk@Example.test",
			"password": "sup3r-secret",
			"profileImage": "https://cdn.example.test/admins/desk.png"
		}`,
	)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	require.Equal(t, middleware.RoleSuperAdmin, created.Role)
	require.Equal(t, "desk@example.test", created.Email)
	require.Equal(
		t,
		"https://cdn.example.test/admins/desk.png",
		created.ProfileImageURL,
	)
	require.Empty(t, created.Phone)
	require.Empty(t, created.Address)

	var got auth.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Equal(t, middleware.RoleSuperAdmin, got.Role)
	require.Equal(
		t,
		"https://cdn.example.test/admins/desk.png",
		got.ProfileImage.URL,
	)
}

func TestCreateSuperAdminRequiresProfileImage(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)

	rec, env := doRequest(t, router,
		http.MethodPost,
		"/createsuperadmin",
		`{
			"userName": "reviewdesk",
			"email": "desk@example.test",
			"password": "sup3r-secret"
		}`,
	)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	require.Empty(t, repo.created, "no account may be created")
}

func TestLeaderboardEnvelope(t *testing.T) {
	repo := &fakeRepo{leaderboard: []User{
		{ID: "u1", UserName: "big-spender", MoneySpent: 900},
		{ID: "u2", UserName: "runner-up", MoneySpent: 250},
	}}
	router := newTestRouter(repo)

	rec, env := doRequest(t, router, http.MethodGet, "/leaderboard", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got LeaderboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Leaderboard, 2)
	require.Equal(t, "big-spender", got.Leaderboard[0].UserName)
	require.Equal(t, 900.0, got.Leaderboard[0].MoneySpent)
}

func TestCreateSuperAdminDuplicateEmail(t *testing.T) {
	repo := &fakeRepo{emailTaken: true}
	router := newTestRouter(repo)

	rec, env := doRequest(t, router,
		http.MethodPost,
		"/createsuperadmin",
		`{
			"userName": "reviewdesk",
			"email": "desk@example.test",
			"password": "sup3r-secret",
			"profileImage": "https://cdn.example.test/admins/desk.png"
		}`,
	)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "DUPLICATE", env.Error.Code)
	require.Empty(t, repo.created)
}
