package routes

import (
	"shoplend-totem/app"
	"shoplend-totem/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) *controllers.Srv {
	s := controllers.GetSrv(a)
	eqCtl := controllers.NewEquipmentController(s)
	clientCtl := controllers.NewClientController(s)
	loanCtl := controllers.NewLoanController(s)
	opCtl := controllers.NewOperatorController(s)
	siteCtl := controllers.NewSiteController(s)

	opMW := app.OperatorRequired(s.Sess, s.Repo)

	// ------------------------------
	// Gate do operador (público: sem ele ninguém entra no totem)
	// ------------------------------
	ops := r.Group("/operadores")
	{
		ops.GET("", opCtl.ListOperators)
		ops.POST("/selecionar", opCtl.SelectOperator)
		ops.POST("/sair", opCtl.SignOut)
	}

	// ------------------------------
	// Totem (todas as rotas exigem operador selecionado)
	// ------------------------------
	totem := r.Group("/", opMW)
	{
		totem.GET("", eqCtl.Catalog)
		totem.GET("/equipamentos", eqCtl.Catalog)
		totem.GET("/selecionar-equipamento", eqCtl.TypePicker)
		totem.POST("/selecionar-equipamento", eqCtl.SelectType)
		totem.POST("/cadastrar-cliente/:equipmentType", clientCtl.Register)
		totem.POST("/confirmar-emprestimo", loanCtl.ConfirmLoan)
		totem.GET("/devolver-equipamento", loanCtl.ActiveLoans)
		totem.POST("/confirmar-devolucao", loanCtl.ConfirmReturn)
		totem.POST("/cancelar-emprestimo", loanCtl.CancelLoan)
		totem.PATCH("/equipamentos/:id/status", eqCtl.UpdateStatus)
	}

	// ------------------------------
	// Site institucional (sem gate)
	// ------------------------------
	r.GET("/home", siteCtl.Home)
	r.GET("/como-funciona", siteCtl.HowItWorks)
	r.GET("/contato", siteCtl.Contact)
	r.NoRoute(siteCtl.NotFound)

	return s
}
