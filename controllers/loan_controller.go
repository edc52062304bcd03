// controllers/loan_controller.go
package controllers

import (
	"net/http"

	"shoplend-totem/app"
	"shoplend-totem/lending"
	"shoplend-totem/models"

	"github.com/gin-gonic/gin"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

// Confirmação do empréstimo: recebe os dados acumulados nas telas anteriores
// e executa a sequência completa. Se o payload chegou sem cliente ou sem
// equipamento (sessão do totem perdida no meio do fluxo), devolve 422 com a
// dica de voltar para a escolha de tipo.
func (lc *LoanController) ConfirmLoan(c *gin.Context) {
	var in lending.LoanData
	if err := c.ShouldBindJSON(&in); err != nil || in.EquipmentID == "" || in.ClientData.CPF == "" {
		c.JSON(http.StatusUnprocessableEntity, app.H{
			"error":    "Dados do empréstimo incompletos.",
			"redirect": "/selecionar-equipamento",
		})
		return
	}
	if in.EquipmentType == "" {
		in.EquipmentType = c.Query("equipmentType")
	}
	if in.OperatorID == "" {
		if op, ok := app.CurrentOperator(c); ok {
			in.OperatorID = op.ID
		}
	}

	res := lc.Loans.CreateLoan(c.Request.Context(), in)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}

	lc.RefreshEquipments(c.Request.Context())
	c.JSON(http.StatusCreated, res)
}

// Tela de devolução: empréstimos ativos com nomes já juntados pela view.
func (lc *LoanController) ActiveLoans(c *gin.Context) {
	lc.RefreshActiveLoans(c.Request.Context())

	_, errMsg := lc.Store.LoadingError()
	if errMsg != "" {
		c.JSON(http.StatusInternalServerError, app.H{"error": errMsg})
		return
	}
	loans := lc.Store.ActiveLoans()
	if loans == nil {
		loans = []models.ActiveLoan{}
	}
	c.JSON(http.StatusOK, app.H{"emprestimos": loans})
}

// Devolução confirmada pelo operador.
func (lc *LoanController) ConfirmReturn(c *gin.Context) {
	loanID := c.Query("loanId")
	if loanID == "" {
		var in struct {
			LoanID string `json:"loanId"`
		}
		_ = c.ShouldBindJSON(&in)
		loanID = in.LoanID
	}
	if loanID == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "Informe o empréstimo."})
		return
	}

	res := lc.Loans.ReturnLoan(c.Request.Context(), loanID)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}
	lc.RefreshEquipments(c.Request.Context())
	lc.RefreshActiveLoans(c.Request.Context())
	c.JSON(http.StatusOK, res)
}

// Cancelamento de um empréstimo ativo (desistência na conferência final).
func (lc *LoanController) CancelLoan(c *gin.Context) {
	var in struct {
		LoanID string `json:"loanId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Informe o empréstimo."})
		return
	}

	res := lc.Loans.CancelLoan(c.Request.Context(), in.LoanID)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}
	lc.RefreshEquipments(c.Request.Context())
	c.JSON(http.StatusOK, res)
}
