// controllers/operator_controller.go
package controllers

import (
	"net/http"

	"shoplend-totem/app"
	"shoplend-totem/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OperatorController struct{ *Srv }

func NewOperatorController(s *Srv) *OperatorController { return &OperatorController{Srv: s} }

// Lista de seguranças ativos para a tela de escolha. Sempre busca direto no
// banco: a lista muda fora do totem (RH cadastra e desativa).
func (oc *OperatorController) ListOperators(c *gin.Context) {
	ops, err := oc.Repo.ListActiveOperators(c.Request.Context())
	if err != nil {
		oc.Log.Error("erro ao listar operadores", zap.Error(err))
		c.JSON(http.StatusInternalServerError, app.H{"error": "Erro ao carregar operadores."})
		return
	}

	type opRow struct {
		models.Operator
		PostoLabel string `json:"posto_label"`
	}
	rows := make([]opRow, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, opRow{Operator: op, PostoLabel: models.WorkPostLabel(op.PostoTrabalho)})
	}
	c.JSON(http.StatusOK, app.H{"operadores": rows})
}

// Escolha do operador no início do expediente: cria a sessão no Redis e grava
// o cookie do totem.
func (oc *OperatorController) SelectOperator(c *gin.Context) {
	var in struct {
		OperatorID string `json:"operatorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Selecione um operador."})
		return
	}

	op, err := oc.Repo.FindOperatorByID(c.Request.Context(), in.OperatorID)
	if err != nil {
		c.JSON(http.StatusNotFound, app.H{"error": "Operador não encontrado."})
		return
	}
	if op.Ativo != nil && !*op.Ativo {
		c.JSON(http.StatusForbidden, app.H{"error": "Operador inativo."})
		return
	}

	id := uuid.NewString()
	if err := oc.Sess.Create(c.Request.Context(), id, *op); err != nil {
		oc.Log.Error("erro ao criar sessão de operador", zap.Error(err))
		c.JSON(http.StatusInternalServerError, app.H{"error": "Erro ao selecionar operador."})
		return
	}
	oc.setOperatorCookie(c.Writer, id, oc.Cfg.OperatorTTL)
	c.JSON(http.StatusOK, app.H{"ok": true, "operador": op})
}

// Saída explícita: apaga a sessão e expira o cookie. É o único ponto do fluxo
// que limpa o operador escolhido.
func (oc *OperatorController) SignOut(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.OperatorCookie); err == nil && ck.Value != "" {
		if err := oc.Sess.Delete(c.Request.Context(), ck.Value); err != nil {
			oc.Log.Warn("erro ao apagar sessão", zap.Error(err))
		}
	}
	oc.setOperatorCookie(c.Writer, "", -1)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
