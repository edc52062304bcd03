// models/operator.go
package models

import "time"

const OperatorTable = "segurancas"

// Postos de trabalho
const (
	PostFamilyZone = "espaco_familia"
	PostPetZone    = "espaco_pet"
)

// Operator é o funcionário de segurança que media empréstimos no totem.
// Criação e desativação acontecem fora deste serviço.
type Operator struct {
	ID            string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome          string     `gorm:"column:nome;size:200;not null" json:"nome"`
	PostoTrabalho string     `gorm:"column:posto_trabalho;size:30;not null" json:"posto_trabalho"`
	Ativo         *bool      `gorm:"column:ativo;default:true" json:"ativo"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (Operator) TableName() string { return OperatorTable }

func WorkPostLabel(posto string) string {
	switch posto {
	case PostFamilyZone:
		return "Espaço Família"
	case PostPetZone:
		return "Espaço Pet"
	default:
		return posto
	}
}
