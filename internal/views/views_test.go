package views

import (
	"bytes"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/pkg/helpers"
)

func TestNewRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer(helpers.NewFormatter("pt-BR"))
	require.NoError(t, err)

	for _, page := range []string{
		"login", "register", "dashboard", "favors_list", "favors_detail", "favors_new",
		"communities_list", "communities_detail", "communities_new", "users_profile", "users_edit",
		"notifications", "missions_list", "missions_detail", "chat", "error",
		"admin_dashboard", "admin_users", "admin_favors", "admin_communities", "admin_reports", "admin_missions",
	} {
		assert.True(t, r.Has(page), page)
	}
	assert.False(t, r.Has("layout"))
}

func TestRendererFallsBackToErrorPage(t *testing.T) {
	r, err := NewRenderer(helpers.NewFormatter("pt-BR"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance("does_not_exist", nil).Render(w))
	assert.Contains(t, w.Body.String(), "Página inexistente: does_not_exist")

	w = httptest.NewRecorder()
	page := &Page{Title: "Não encontrado", Theme: "dark", Data: ErrorData{Status: 404, Message: "Favor não encontrado"}}
	require.NoError(t, r.Instance("error", page).Render(w))
	assert.Contains(t, w.Body.String(), "Favor não encontrado")
	assert.Contains(t, w.Body.String(), "404")
}

func TestNavActive(t *testing.T) {
	assert.True(t, NavActive("/", "/"))
	assert.False(t, NavActive("/favors", "/"))
	assert.True(t, NavActive("/favors", "/favors"))
	assert.True(t, NavActive("/favors/f-1", "/favors"))
	assert.False(t, NavActive("/favorsx", "/favors"))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(-2))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestPageQuery(t *testing.T) {
	q := url.Values{"status": {"open"}, "page": {"1"}}
	assert.Equal(t, "?page=3&status=open", PageQuery(q, 3))
	assert.Equal(t, "?page=2", PageQuery(nil, 2))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Em andamento", StatusLabel(models.FavorStatusAccepted))
	assert.Equal(t, "Coletivo", ParticipationLabel(models.ParticipationCollective))
	assert.Equal(t, "Pendente", ReportStatusLabel(models.ReportStatusPending))
	assert.Equal(t, "unknown", StatusLabel("unknown"))
}

func TestStylesheet(t *testing.T) {
	raw, err := Stylesheet(false)
	require.NoError(t, err)
	assert.Equal(t, stylesheet, raw)

	minified, err := Stylesheet(true)
	require.NoError(t, err)
	assert.Less(t, len(minified), len(raw))
	assert.False(t, bytes.Contains(minified, []byte("\n  ")))
	assert.True(t, bytes.Contains(minified, []byte("--primary")))
}
