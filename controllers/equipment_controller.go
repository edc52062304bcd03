// controllers/equipment_controller.go
package controllers

import (
	"net/http"

	"shoplend-totem/app"
	"shoplend-totem/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EquipmentController struct{ *Srv }

func NewEquipmentController(s *Srv) *EquipmentController { return &EquipmentController{Srv: s} }

// Catálogo: snapshot do state store com a lista completa e o agregado de
// disponibilidade. `?refresh=1` força a releitura antes de responder; o
// primeiro acesso também recarrega porque o store ainda está vazio.
func (ec *EquipmentController) Catalog(c *gin.Context) {
	if c.Query("refresh") == "1" || ec.Store.Empty() {
		ec.RefreshEquipments(c.Request.Context())
	}

	loading, errMsg := ec.Store.LoadingError()
	eqs, avail := ec.Store.Equipments()
	c.JSON(http.StatusOK, app.H{
		"equipamentos":    eqs,
		"disponibilidade": avail,
		"loading":         loading,
		"error":           errMsg,
	})
}

// Tela de escolha de tipo: um card por tipo com contagens e textos prontos.
func (ec *EquipmentController) TypePicker(c *gin.Context) {
	if ec.Store.Empty() {
		ec.RefreshEquipments(c.Request.Context())
	}

	type card struct {
		Tipo        string `json:"tipo"`
		Nome        string `json:"nome"`
		Descricao   string `json:"descricao"`
		Total       int64  `json:"total"`
		Disponiveis int64  `json:"disponiveis"`
	}
	cards := make([]card, 0, 3)
	for _, tipo := range []string{models.TypeBabyStroller, models.TypePetCart, models.TypeWheelchair} {
		cd := card{
			Tipo:      tipo,
			Nome:      models.EquipmentTypeName(tipo),
			Descricao: models.EquipmentTypeDescription(tipo),
		}
		if row, ok := ec.Store.AvailabilityByType(tipo); ok {
			cd.Total = row.Total
			cd.Disponiveis = row.Disponiveis
		}
		cards = append(cards, cd)
	}
	c.JSON(http.StatusOK, app.H{"tipos": cards})
}

// Escolha de um tipo: verifica e "reserva" uma unidade. A reserva é só uma
// conferência de leitura, então o id devolvido pode não estar mais livre na
// hora de confirmar o empréstimo.
func (ec *EquipmentController) SelectType(c *gin.Context) {
	var in struct {
		Tipo string `json:"tipo" binding:"required,oneof=carrinho_bebe carrinho_pet cadeira_rodas"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Tipo de equipamento inválido."})
		return
	}

	out := ec.Avail.CheckAndReserve(c.Request.Context(), in.Tipo)
	if !out.Success {
		c.JSON(http.StatusConflict, app.H{
			"success":          false,
			"message":          out.Message,
			"availabilityInfo": out.AvailabilityInfo,
		})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"success":             true,
		"message":             out.Message,
		"reservedEquipmentId": out.EquipmentID,
		"availabilityInfo":    out.AvailabilityInfo,
	})
}

// Escrita direta de status (guarita marca manutenção, por exemplo). O repo
// publica a mudança no Redis e o watcher dispara o refresh do snapshot.
func (ec *EquipmentController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var in struct {
		Status string `json:"status" binding:"required,oneof=disponivel em_uso manutencao"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Status inválido."})
		return
	}

	if _, err := ec.Repo.FindEquipmentByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, app.H{"error": "Equipamento não encontrado."})
		return
	}
	if err := ec.Repo.UpdateEquipmentStatus(c.Request.Context(), id, in.Status); err != nil {
		ec.Log.Error("erro ao atualizar status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, app.H{"error": "Erro ao atualizar equipamento."})
		return
	}

	ec.Store.PatchEquipment(id, in.Status)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
