// controllers/client_controller.go
package controllers

import (
	"errors"
	"net/http"

	"shoplend-totem/app"
	"shoplend-totem/lending"
	"shoplend-totem/models"
	"shoplend-totem/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ClientController struct{ *Srv }

func NewClientController(s *Srv) *ClientController { return &ClientController{Srv: s} }

// Mensagens por campo exibidas no formulário do totem.
func fieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Nome":
		return "Nome é obrigatório"
	case "CPF":
		if fe.Tag() == "required" {
			return "CPF é obrigatório"
		}
		return "CPF inválido"
	case "Telefone":
		if fe.Tag() == "required" {
			return "Telefone é obrigatório"
		}
		return "Telefone inválido"
	case "Email":
		return "Email inválido"
	case "Categoria":
		return "Selecione uma categoria"
	default:
		return "Campo inválido"
	}
}

func fieldKey(fe validator.FieldError) string {
	switch fe.Field() {
	case "Nome":
		return "nome"
	case "CPF":
		return "cpf"
	case "Telefone":
		return "telefone"
	case "Email":
		return "email"
	case "Categoria":
		return "categoria"
	default:
		return fe.Field()
	}
}

// Cadastro do cliente para um tipo de equipamento. Só valida e devolve os
// dados normalizados; a escrita no banco acontece na confirmação do
// empréstimo, junto com todo o resto.
func (cc *ClientController) Register(c *gin.Context) {
	tipo := c.Param("equipmentType")
	if models.EquipmentTypeName(tipo) == tipo {
		c.JSON(http.StatusBadRequest, app.H{"error": "Tipo de equipamento inválido."})
		return
	}

	var in lending.ClientData
	if err := c.ShouldBindJSON(&in); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			fields := make(map[string]string, len(verr))
			for _, fe := range verr {
				fields[fieldKey(fe)] = fieldError(fe)
			}
			c.JSON(http.StatusBadRequest, app.H{"error": "Corrija os campos destacados.", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, app.H{"error": "Dados inválidos."})
		return
	}

	c.JSON(http.StatusOK, app.H{
		"ok":             true,
		"equipmentType":  tipo,
		"equipmentName":  models.EquipmentTypeName(tipo),
		"clientData":     in,
		"cpfFormatado":   validation.FormatCPF(in.CPF),
		"telefoneMask":   validation.FormatPhone(in.Telefone),
		"categoriaLabel": models.CategoryLabel(in.Categoria),
	})
}
