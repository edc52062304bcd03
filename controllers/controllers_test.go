package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shoplend-totem/lending"
	"shoplend-totem/models"
	"shoplend-totem/state"
	"shoplend-totem/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterRules(v)
	}
}

// fakeEquipments cobre o recorte de leitura usado pela reserva consultiva.
type fakeEquipments struct {
	units []models.Equipment
}

func (f *fakeEquipments) FirstAvailableByType(_ context.Context, tipo string) (*models.Equipment, error) {
	for _, e := range f.units {
		if e.TipoEquipamento == tipo && e.Status == models.EquipmentAvailable {
			u := e
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEquipments) CountByType(_ context.Context, tipo string) (total, available int64, err error) {
	for _, e := range f.units {
		if e.TipoEquipamento != tipo {
			continue
		}
		total++
		if e.Status == models.EquipmentAvailable {
			available++
		}
	}
	return total, available, nil
}

func (f *fakeEquipments) FindAvailableEquipment(_ context.Context, id string) (*models.Equipment, error) {
	for _, e := range f.units {
		if e.ID == id && e.Status == models.EquipmentAvailable {
			u := e
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestSrv(eq *fakeEquipments) *Srv {
	log := zap.NewNop()
	return &Srv{
		Avail: lending.NewAvailabilityService(eq, log),
		Store: state.NewStore(),
		Log:   log,
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_FieldErrors(t *testing.T) {
	s := newTestSrv(&fakeEquipments{})
	r := gin.New()
	r.POST("/cadastrar-cliente/:equipmentType", NewClientController(s).Register)

	w := doJSON(r, http.MethodPost, "/cadastrar-cliente/carrinho_bebe",
		`{"nome":"","cpf":"529.982.247-24","telefone":"119999","email":"x","categoria":"vip"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"nome":"Nome é obrigatório"`)
	assert.Contains(t, body, `"cpf":"CPF inválido"`)
	assert.Contains(t, body, `"telefone":"Telefone inválido"`)
	assert.Contains(t, body, `"email":"Email inválido"`)
	assert.Contains(t, body, `"categoria":"Selecione uma categoria"`)
}

func TestRegister_ValidDataEchoesMasks(t *testing.T) {
	s := newTestSrv(&fakeEquipments{})
	r := gin.New()
	r.POST("/cadastrar-cliente/:equipmentType", NewClientController(s).Register)

	w := doJSON(r, http.MethodPost, "/cadastrar-cliente/cadeira_rodas",
		`{"nome":"Maria Silva","cpf":"52998224725","telefone":"11987654321","categoria":"idoso"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "529.982.247-25")
	assert.Contains(t, body, "(11) 98765-4321")
	assert.Contains(t, body, "Cadeira de Rodas")
	assert.Contains(t, body, "Idoso")
}

func TestRegister_UnknownTypeRejected(t *testing.T) {
	s := newTestSrv(&fakeEquipments{})
	r := gin.New()
	r.POST("/cadastrar-cliente/:equipmentType", NewClientController(s).Register)

	w := doJSON(r, http.MethodPost, "/cadastrar-cliente/jetski",
		`{"nome":"Maria","cpf":"52998224725","telefone":"11987654321","categoria":"outros"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tipo de equipamento inválido")
}

func TestSelectType_ReturnsReservedUnit(t *testing.T) {
	eq := &fakeEquipments{units: []models.Equipment{
		{ID: "eq1", Codigo: "CB-001", TipoEquipamento: models.TypeBabyStroller, Status: models.EquipmentInUse},
		{ID: "eq2", Codigo: "CB-002", TipoEquipamento: models.TypeBabyStroller, Status: models.EquipmentAvailable},
	}}
	s := newTestSrv(eq)
	r := gin.New()
	r.POST("/selecionar-equipamento", NewEquipmentController(s).SelectType)

	w := doJSON(r, http.MethodPost, "/selecionar-equipamento", `{"tipo":"carrinho_bebe"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"reservedEquipmentId":"eq2"`)
	assert.Contains(t, body, `"availableCount":1`)
}

func TestSelectType_NoneAvailable(t *testing.T) {
	eq := &fakeEquipments{units: []models.Equipment{
		{ID: "eq1", TipoEquipamento: models.TypePetCart, Status: models.EquipmentMaintenance},
	}}
	s := newTestSrv(eq)
	r := gin.New()
	r.POST("/selecionar-equipamento", NewEquipmentController(s).SelectType)

	w := doJSON(r, http.MethodPost, "/selecionar-equipamento", `{"tipo":"carrinho_pet"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Nenhum equipamento disponível")
}

func TestConfirmLoan_MissingDataRedirects(t *testing.T) {
	s := newTestSrv(&fakeEquipments{})
	r := gin.New()
	r.POST("/confirmar-emprestimo", NewLoanController(s).ConfirmLoan)

	w := doJSON(r, http.MethodPost, "/confirmar-emprestimo", `{"equipmentType":"carrinho_bebe"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/selecionar-equipamento"`)
}

func TestSite_NotFound(t *testing.T) {
	s := newTestSrv(&fakeEquipments{})
	r := gin.New()
	sc := NewSiteController(s)
	r.GET("/home", sc.Home)
	r.NoRoute(sc.NotFound)

	w := doJSON(r, http.MethodGet, "/rota-que-nao-existe", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Página não encontrada")

	w = doJSON(r, http.MethodGet, "/home", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Como Funciona")
}

func TestSetOperatorCookie_SignOutDeletes(t *testing.T) {
	s := newTestSrv(&fakeEquipments{})

	w := httptest.NewRecorder()
	s.setOperatorCookie(w, "", -1)
	cks := w.Result().Cookies()
	require.Len(t, cks, 1)
	assert.Empty(t, cks[0].Value)
	// Max-Age=0 no header; o parse devolve -1
	assert.Equal(t, -1, cks[0].MaxAge)

	w = httptest.NewRecorder()
	s.setOperatorCookie(w, "tok1", 8*time.Hour)
	cks = w.Result().Cookies()
	require.Len(t, cks, 1)
	assert.Equal(t, "tok1", cks[0].Value)
	assert.Equal(t, 28800, cks[0].MaxAge)
}

func TestTypePicker_CardsFromSnapshot(t *testing.T) {
	s := newTestSrv(&fakeEquipments{})
	seq := s.Store.Begin()
	s.Store.SetEquipments(seq,
		[]models.Equipment{{ID: "eq1", TipoEquipamento: models.TypeWheelchair, Status: models.EquipmentAvailable}},
		[]models.EquipmentAvailability{{TipoEquipamento: models.TypeWheelchair, Total: 4, Disponiveis: 2}},
	)

	r := gin.New()
	r.GET("/selecionar-equipamento", NewEquipmentController(s).TypePicker)

	w := doJSON(r, http.MethodGet, "/selecionar-equipamento", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"tipo":"cadeira_rodas"`)
	assert.Contains(t, body, `"total":4`)
	assert.Contains(t, body, `"disponiveis":2`)
	assert.Contains(t, body, "Carrinho de Bebê")
}
