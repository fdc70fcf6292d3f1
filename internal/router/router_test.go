package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/anonto42/inkwell/backend/internal/models"
	"github.com/anonto42/inkwell/backend/internal/testutil"
	"github.com/anonto42/inkwell/backend/pkg/database"
)

func newServer(t *testing.T, opts database.Options) (*echo.Echo, *database.Pool) {
	t.Helper()
	pool := testutil.NewPool(t, opts)
	e, err := New(pool, zap.NewNop())
	require.NoError(t, err)
	return e, pool
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRESTFlow(t *testing.T) {
	e, pool := newServer(t, database.Options{MaxOpenConns: 2})

	rec := do(e, http.MethodPost, "/users", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get(echo.HeaderContentType))
	var u1 models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u1))
	assert.Equal(t, "a@x.com", u1.Email)

	rec = do(e, http.MethodPost, "/users", `{"email":"b@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var u2 models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u2))

	rec = do(e, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Equal(t, []models.User{u1, u2}, all)

	rec = do(e, http.MethodGet, "/users/"+itoa(u2.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":`+itoa(u2.ID)+`,"email":"b@x.com"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/users/"+itoa(u1.ID)+"/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// follow through GraphQL, read back through REST
	q := `{"query":"mutation { follow(follower: ` + itoa(u1.ID) + `, followee: ` + itoa(u2.ID) + `) }"}`
	rec = do(e, http.MethodPost, "/graphql", q)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"follow":true}}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/users/"+itoa(u2.ID)+"/followers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var followers []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &followers))
	assert.Equal(t, []models.User{u1}, followers)

	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestGetUserNotFound(t *testing.T) {
	e, _ := newServer(t, database.Options{})

	rec := do(e, http.MethodGet, "/users/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get(echo.HeaderContentType))

	rec = do(e, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUserValidation(t *testing.T) {
	e, _ := newServer(t, database.Options{})

	rec := do(e, http.MethodPost, "/users", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/users", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGraphQLOverGET(t *testing.T) {
	e, _ := newServer(t, database.Options{})

	rec := do(e, http.MethodPost, "/graphql", `{"query":"mutation($e: String!) { createUser(email: $e) { id } }","variables":{"e":"g@x.com"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		Data struct {
			CreateUser struct {
				ID string `json:"id"`
			} `json:"createUser"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	params := url.Values{}
	params.Set("query", `query($id: Int!) { user(id: $id) { email posts { id } } }`)
	params.Set("variables", `{"id":`+created.Data.CreateUser.ID+`}`)
	rec = do(e, http.MethodGet, "/graphql?"+params.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"user":{"email":"g@x.com","posts":[]}}}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get(echo.HeaderContentType))

	rec = do(e, http.MethodGet, "/graphql", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/graphql?query=x&variables=%7B", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPoolExhaustedIsServiceUnavailable(t *testing.T) {
	e, pool := newServer(t, database.Options{MaxOpenConns: 1})

	held, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(e, http.MethodPost, "/graphql", `{"query":"{ user(id: 1) { id } }"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// routes that do not touch the database keep working
	rec = do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, held.Release())
	rec = do(e, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGraphiQLAtRoot(t *testing.T) {
	e, _ := newServer(t, database.Options{})

	rec := do(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "/graphql")
}

func itoa(id int32) string {
	b, _ := json.Marshal(id)
	return string(b)
}
