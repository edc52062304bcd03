package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoplend-totem/models"
	"shoplend-totem/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	sessions map[string]*session.OperatorSession
}

func (f *fakeSessions) Get(_ context.Context, id string) (*session.OperatorSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("sessão não encontrada")
	}
	return s, nil
}

type fakeOperators struct {
	list []models.Operator
	err  error
}

func (f *fakeOperators) ListActiveOperators(_ context.Context) ([]models.Operator, error) {
	return f.list, f.err
}

func newGatedRouter(sess *fakeSessions, ops *fakeOperators) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/", OperatorRequired(sess, ops))
	g.GET("/equipamentos", func(c *gin.Context) {
		op, _ := CurrentOperator(c)
		c.JSON(http.StatusOK, H{"rota": "equipamentos", "operador": op.Nome})
	})
	return r
}

func TestOperatorRequired_NoSessionReturnsChooser(t *testing.T) {
	ops := &fakeOperators{list: []models.Operator{
		{ID: "op1", Nome: "Carlos", PostoTrabalho: models.PostFamilyZone},
		{ID: "op2", Nome: "Dena", PostoTrabalho: models.PostPetZone},
	}}
	r := newGatedRouter(&fakeSessions{sessions: map[string]*session.OperatorSession{}}, ops)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/equipamentos", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"selecionar":true`)
	assert.Contains(t, body, "Carlos")
	assert.Contains(t, body, "Dena")
	assert.NotContains(t, body, `"rota"`)
}

func TestOperatorRequired_InvalidCookieReturnsChooser(t *testing.T) {
	r := newGatedRouter(&fakeSessions{sessions: map[string]*session.OperatorSession{}}, &fakeOperators{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/equipamentos", nil)
	req.AddCookie(&http.Cookie{Name: OperatorCookie, Value: "expirada"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"selecionar":true`)
}

func TestOperatorRequired_WithSessionPassesThrough(t *testing.T) {
	sess := &fakeSessions{sessions: map[string]*session.OperatorSession{
		"tok1": {Operator: models.Operator{ID: "op1", Nome: "Carlos"}},
	}}
	r := newGatedRouter(sess, &fakeOperators{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/equipamentos", nil)
	req.AddCookie(&http.Cookie{Name: OperatorCookie, Value: "tok1"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rota":"equipamentos"`)
	assert.Contains(t, w.Body.String(), "Carlos")
}

func TestOperatorRequired_ChooserSurvivesListError(t *testing.T) {
	r := newGatedRouter(
		&fakeSessions{sessions: map[string]*session.OperatorSession{}},
		&fakeOperators{err: errors.New("banco fora")},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/equipamentos", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"selecionar":true`)
}
