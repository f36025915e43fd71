package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/config"
	"github.com/yigit/conexao/internal/pkg/logger"
	"github.com/yigit/conexao/internal/seed"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "production"
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Session.Secret = "integration-test-secret"
	cfg.Session.CookieName = "conexao_session"
	cfg.Session.TTL = time.Hour
	cfg.Session.Issuer = "conexao-test"
	cfg.UI.Locale = "pt-BR"
	cfg.UI.DefaultTheme = "light"
	cfg.UI.PageSize = 9
	return cfg
}

// client follows no redirects so tests can assert on them.
type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newClient(t *testing.T) *client {
	t.Helper()
	srv, err := New(testConfig(), logger.Nop())
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{
		t:    t,
		base: ts.URL,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *client) get(path string) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.http.Get(c.base + path)
	require.NoError(c.t, err)
	return resp, readBody(c.t, resp)
}

func (c *client) post(path string, form url.Values) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.http.PostForm(c.base+path, form)
	require.NoError(c.t, err)
	return resp, readBody(c.t, resp)
}

func (c *client) login(email string) {
	c.t.Helper()
	resp, _ := c.post("/login", url.Values{"email": {email}, "password": {seed.DemoPassword}})
	require.Equal(c.t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(c.t, "/", resp.Header.Get("Location"))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestHealth(t *testing.T) {
	c := newClient(t)

	resp, body := c.get("/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 8, health.Users)
	assert.Equal(t, 9, health.Favors)
}

func TestAnonymousVisitorIsSentToLogin(t *testing.T) {
	c := newClient(t)

	resp, _ := c.get("/favors/f-chuveiro")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Ffavors%2Ff-chuveiro", resp.Header.Get("Location"))

	resp, body := c.get("/login")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/login"`)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	c := newClient(t)

	resp, _ := c.post("/login", url.Values{"email": {"ana@conexao.org"}, "password": {"errada"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = c.get("/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "no session was started")
}

func TestAcceptFavorFlow(t *testing.T) {
	c := newClient(t)
	c.login("diego@conexao.org")

	resp, body := c.get("/favors/f-chuveiro")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/favors/f-chuveiro/accept"`)

	resp, _ = c.post("/favors/f-chuveiro/accept", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/favors/f-chuveiro", resp.Header.Get("Location"))

	_, body = c.get("/favors/f-chuveiro")
	assert.Contains(t, body, "Favor aceito!")
	assert.NotContains(t, body, `action="/favors/f-chuveiro/accept"`)
	assert.Contains(t, body, `action="/favors/f-chuveiro/complete"`)
}

func TestRequesterCannotAcceptOwnFavor(t *testing.T) {
	c := newClient(t)
	c.login("ana@conexao.org")

	_, body := c.get("/favors/f-chuveiro")
	assert.NotContains(t, body, `action="/favors/f-chuveiro/accept"`)
	assert.Contains(t, body, `action="/favors/f-chuveiro/cancel"`)
}

func TestRatingFormDisappearsAfterRating(t *testing.T) {
	c := newClient(t)
	c.login("ana@conexao.org")

	_, body := c.get("/favors/f-prateleira")
	require.Contains(t, body, `action="/favors/f-prateleira/rate"`)

	resp, _ := c.post("/favors/f-prateleira/rate", url.Values{"score": {"5"}, "feedback": {"Ótimo trabalho"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body = c.get("/favors/f-prateleira")
	assert.NotContains(t, body, `action="/favors/f-prateleira/rate"`)
	assert.Contains(t, body, "Ótimo trabalho")
}

func TestCreateFavorValidation(t *testing.T) {
	c := newClient(t)
	c.login("bruno@conexao.org")

	resp, body := c.post("/favors", url.Values{
		"title":         {"Oi"},
		"description":   {"Preciso de ajuda com a pintura da sala."},
		"urgency":       {"low"},
		"location":      {"Centro"},
		"type":          {"paid"},
		"participation": {"individual"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Use pelo menos 5 caracteres.")
	assert.Contains(t, body, "Favores pagos precisam de um valor")

	resp, _ = c.post("/favors", url.Values{
		"title":         {"Pintar a sala"},
		"description":   {"Preciso de ajuda com a pintura da sala."},
		"urgency":       {"low"},
		"location":      {"Centro"},
		"type":          {"paid"},
		"amount":        {"150"},
		"participation": {"individual"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/favors/"))
}

func TestAdminAreaRequiresAdmin(t *testing.T) {
	c := newClient(t)
	c.login("ana@conexao.org")

	resp, _ := c.get("/admin")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := newClient(t)
	admin.login("admin@conexao.org")
	resp, body := admin.get("/admin/reports?status=pending")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/admin/reports/r-1/resolve"`)
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	c := newClient(t)

	resp, body := c.get("/nada-aqui")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Página não encontrada.")
}

func TestServeStopsWhenContextIsDone(t *testing.T) {
	srv, err := New(testConfig(), logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
