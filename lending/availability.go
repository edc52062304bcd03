// Package lending implementa o fluxo de empréstimo do totem: checagem de
// disponibilidade, a "reserva" consultiva e o processamento de empréstimos.
// Os serviços recebem interfaces estreitas sobre o repo para permitir
// dublês em teste.
package lending

import (
	"context"
	"fmt"

	"shoplend-totem/models"

	"go.uber.org/zap"
)

// EquipmentReader é o recorte do repo que a checagem de disponibilidade usa.
type EquipmentReader interface {
	FirstAvailableByType(ctx context.Context, tipo string) (*models.Equipment, error)
	CountByType(ctx context.Context, tipo string) (total, available int64, err error)
	FindAvailableEquipment(ctx context.Context, id string) (*models.Equipment, error)
}

type AvailabilityResult struct {
	Available      bool              `json:"available"`
	Equipment      *models.Equipment `json:"availableEquipment,omitempty"`
	TotalCount     int64             `json:"totalCount"`
	AvailableCount int64             `json:"availableCount"`
	Message        string            `json:"message"`
}

type ReserveOutcome struct {
	Success          bool               `json:"success"`
	EquipmentID      string             `json:"equipmentId,omitempty"`
	Message          string             `json:"message"`
	AvailabilityInfo AvailabilityResult `json:"availabilityInfo"`
}

type AvailabilityService struct {
	eq  EquipmentReader
	log *zap.Logger
}

func NewAvailabilityService(eq EquipmentReader, log *zap.Logger) *AvailabilityService {
	return &AvailabilityService{eq: eq, log: log}
}

// CheckAvailability busca uma unidade disponível do tipo mais as contagens.
// Qualquer erro do serviço vira indisponível com mensagem genérica.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, tipo string) AvailabilityResult {
	unit, err := s.eq.FirstAvailableByType(ctx, tipo)
	if err != nil && !isNotFound(err) {
		s.log.Error("erro ao verificar disponibilidade", zap.String("tipo", tipo), zap.Error(err))
		return AvailabilityResult{Message: "Erro ao verificar disponibilidade do equipamento."}
	}

	total, available, err := s.eq.CountByType(ctx, tipo)
	if err != nil {
		s.log.Error("erro ao contar equipamentos", zap.String("tipo", tipo), zap.Error(err))
		return AvailabilityResult{Message: "Erro ao verificar disponibilidade do equipamento."}
	}

	if unit == nil {
		return AvailabilityResult{
			TotalCount:     total,
			AvailableCount: available,
			Message:        fmt.Sprintf("Nenhum equipamento disponível no momento. %d de %d disponíveis.", available, total),
		}
	}
	return AvailabilityResult{
		Available:      true,
		Equipment:      unit,
		TotalCount:     total,
		AvailableCount: available,
		Message:        fmt.Sprintf("Equipamento disponível! %d de %d disponíveis.", available, total),
	}
}

// ReserveEquipment relê a unidade filtrando por status. Não escreve nada:
// a reserva é só consultiva e a disponibilidade é checada de novo na hora
// de criar o empréstimo.
func (s *AvailabilityService) ReserveEquipment(ctx context.Context, id string) (bool, string) {
	if _, err := s.eq.FindAvailableEquipment(ctx, id); err != nil {
		if isNotFound(err) {
			return false, "Equipamento não está mais disponível."
		}
		s.log.Error("erro ao verificar equipamento", zap.String("id", id), zap.Error(err))
		return false, "Erro inesperado ao verificar equipamento."
	}
	return true, "Equipamento verificado e disponível!"
}

// ReleaseReservation não tem nada a desfazer porque nada foi reservado de
// fato; existe para o fluxo das telas ter onde "liberar".
func (s *AvailabilityService) ReleaseReservation(ctx context.Context, id string) (bool, string) {
	return true, "Verificação liberada com sucesso!"
}

// CheckAndReserve compõe as duas acima e devolve o id escolhido.
func (s *AvailabilityService) CheckAndReserve(ctx context.Context, tipo string) ReserveOutcome {
	info := s.CheckAvailability(ctx, tipo)
	if !info.Available || info.Equipment == nil {
		return ReserveOutcome{Message: info.Message, AvailabilityInfo: info}
	}

	ok, msg := s.ReserveEquipment(ctx, info.Equipment.ID)
	out := ReserveOutcome{Success: ok, Message: msg, AvailabilityInfo: info}
	if ok {
		out.EquipmentID = info.Equipment.ID
	}
	return out
}
