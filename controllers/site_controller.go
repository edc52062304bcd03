// controllers/site_controller.go
package controllers

import (
	"net/http"

	"shoplend-totem/app"
	"shoplend-totem/models"

	"github.com/gin-gonic/gin"
)

type SiteController struct{ *Srv }

func NewSiteController(s *Srv) *SiteController { return &SiteController{Srv: s} }

// Envelope comum das páginas institucionais: a barra de navegação é a mesma
// em todas, só o conteúdo muda.
func sitePage(title string, content app.H) app.H {
	return app.H{
		"navbar": []app.H{
			{"label": "Home", "path": "/home"},
			{"label": "Como Funciona", "path": "/como-funciona"},
			{"label": "Contato", "path": "/contato"},
		},
		"title":   title,
		"content": content,
	}
}

func (sc *SiteController) Home(c *gin.Context) {
	tipos := make([]app.H, 0, 3)
	for _, tipo := range []string{models.TypeBabyStroller, models.TypePetCart, models.TypeWheelchair} {
		tipos = append(tipos, app.H{
			"tipo":      tipo,
			"nome":      models.EquipmentTypeName(tipo),
			"descricao": models.EquipmentTypeDescription(tipo),
		})
	}
	c.JSON(http.StatusOK, sitePage("ShopLend", app.H{
		"headline":     "Empréstimo gratuito de equipamentos no shopping",
		"equipamentos": tipos,
	}))
}

func (sc *SiteController) HowItWorks(c *gin.Context) {
	c.JSON(http.StatusOK, sitePage("Como Funciona", app.H{
		"passos": []string{
			"Procure o totem no Espaço Família ou no Espaço Pet.",
			"Escolha o tipo de equipamento e informe seus dados.",
			"Confirme o empréstimo com o segurança responsável.",
			"Devolva o equipamento no mesmo posto ao final do uso.",
		},
	}))
}

func (sc *SiteController) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, sitePage("Contato", app.H{
		"email":    "atendimento@shoplend.com.br",
		"telefone": "(11) 4000-1234",
		"horario":  "Todos os dias, das 10h às 22h",
	}))
}

func (sc *SiteController) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, sitePage("Página não encontrada", app.H{
		"error":    "Página não encontrada",
		"redirect": "/home",
	}))
}
