// models/queue.go
package models

import "time"

const QueueTable = "fila_espera"
const QueueView = "vw_fila_espera_ordenada"

// QueueEntry existe no schema e na view ordenada, mas nenhum fluxo do totem
// lê ou escreve nela hoje. O modelo fica para manter o schema compatível.
type QueueEntry struct {
	ID                        string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClienteID                 string     `gorm:"column:cliente_id;type:uuid;index;not null" json:"cliente_id"`
	TipoEquipamentoSolicitado string     `gorm:"column:tipo_equipamento_solicitado;size:30;not null" json:"tipo_equipamento_solicitado"`
	TempoUsoEstimado          int        `gorm:"column:tempo_uso_estimado;not null" json:"tempo_uso_estimado"`
	Posicao                   int        `gorm:"column:posicao;not null" json:"posicao"`
	Status                    string     `gorm:"size:20;not null;default:'aguardando'" json:"status"`
	DataEntradaFila           *time.Time `gorm:"column:data_entrada_fila" json:"data_entrada_fila"`
	NotificadoEm              *time.Time `gorm:"column:notificado_em" json:"notificado_em"`
	ExpiresAt                 *time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt                 *time.Time `json:"created_at"`
	UpdatedAt                 *time.Time `json:"updated_at"`
}

func (QueueEntry) TableName() string { return QueueTable }

// QueueRow é uma linha da view ordenada da fila.
type QueueRow struct {
	ID                        string     `gorm:"column:id" json:"id"`
	Posicao                   int        `gorm:"column:posicao" json:"posicao"`
	Status                    string     `gorm:"column:status" json:"status"`
	TempoUsoEstimado          int        `gorm:"column:tempo_uso_estimado" json:"tempo_uso_estimado"`
	TipoEquipamentoSolicitado string     `gorm:"column:tipo_equipamento_solicitado" json:"tipo_equipamento_solicitado"`
	DataEntradaFila           *time.Time `gorm:"column:data_entrada_fila" json:"data_entrada_fila"`
	ClienteNome               string     `gorm:"column:cliente_nome" json:"cliente_nome"`
	ClienteTelefone           string     `gorm:"column:cliente_telefone" json:"cliente_telefone"`
	CategoriaCliente          string     `gorm:"column:categoria_cliente" json:"categoria_cliente"`
}

func (QueueRow) TableName() string { return QueueView }
