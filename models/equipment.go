// models/equipment.go
package models

import "time"

const EquipmentTable = "equipamentos"
const AvailabilityView = "vw_disponibilidade_equipamentos"

// Status do equipamento
const (
	EquipmentAvailable   = "disponivel"
	EquipmentInUse       = "em_uso"
	EquipmentMaintenance = "manutencao"
)

// Tipos de equipamento
const (
	TypeBabyStroller = "carrinho_bebe"
	TypePetCart      = "carrinho_pet"
	TypeWheelchair   = "cadeira_rodas"
)

type Equipment struct {
	ID              string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Codigo          string     `gorm:"column:codigo;size:20;uniqueIndex;not null" json:"codigo"`
	TipoEquipamento string     `gorm:"column:tipo_equipamento;size:30;index;not null" json:"tipo_equipamento"`
	Localizacao     string     `gorm:"column:localizacao;size:100;not null" json:"localizacao"`
	Status          string     `gorm:"size:20;not null;default:'disponivel'" json:"status"`
	Observacoes     *string    `gorm:"column:observacoes" json:"observacoes"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

func (Equipment) TableName() string { return EquipmentTable }

// EquipmentAvailability é uma linha da view agregada, recalculada pelo banco.
type EquipmentAvailability struct {
	TipoEquipamento string `gorm:"column:tipo_equipamento" json:"tipo_equipamento"`
	Localizacao     string `gorm:"column:localizacao" json:"localizacao"`
	Total           int64  `gorm:"column:total" json:"total"`
	Disponiveis     int64  `gorm:"column:disponiveis" json:"disponiveis"`
	EmUso           int64  `gorm:"column:em_uso" json:"em_uso"`
	EmManutencao    int64  `gorm:"column:em_manutencao" json:"em_manutencao"`
}

func (EquipmentAvailability) TableName() string { return AvailabilityView }

// EquipmentTypeName devolve o nome de exibição do tipo.
func EquipmentTypeName(tipo string) string {
	switch tipo {
	case TypeBabyStroller:
		return "Carrinho de Bebê"
	case TypePetCart:
		return "Carrinho de Pet"
	case TypeWheelchair:
		return "Cadeira de Rodas"
	default:
		return tipo
	}
}

func EquipmentTypeDescription(tipo string) string {
	switch tipo {
	case TypeBabyStroller:
		return "Carrinho para facilitar compras com crianças"
	case TypePetCart:
		return "Carrinho especial para transporte de pets pequenos"
	case TypeWheelchair:
		return "Cadeira de rodas manual para maior mobilidade"
	default:
		return "Equipamento disponível para empréstimo"
	}
}
