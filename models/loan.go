// models/loan.go
package models

import "time"

const LoanTable = "emprestimos"
const ActiveLoansView = "vw_emprestimos_ativos"

// Status do empréstimo
const (
	LoanActive    = "ativo"
	LoanReturned  = "devolvido"
	LoanCancelled = "cancelado"
)

// DefaultLoanHours é o tempo de uso estimado quando o totem não informa outro.
const DefaultLoanHours = 3

type Loan struct {
	ID                    string     `gorm:"type:uuid;primaryKey" json:"id"`
	ClienteID             string     `gorm:"column:cliente_id;type:uuid;index;not null" json:"cliente_id"`
	EquipamentoID         string     `gorm:"column:equipamento_id;type:uuid;index;not null" json:"equipamento_id"`
	SegurancaID           string     `gorm:"column:seguranca_id;type:uuid;not null" json:"seguranca_id"`
	DataEmprestimo        *time.Time `gorm:"column:data_emprestimo;index" json:"data_emprestimo"`
	TempoUsoEstimado      int        `gorm:"column:tempo_uso_estimado;not null" json:"tempo_uso_estimado"`
	DataDevolucaoPrevista time.Time  `gorm:"column:data_devolucao_prevista;not null" json:"data_devolucao_prevista"`
	DataDevolucaoReal     *time.Time `gorm:"column:data_devolucao_real" json:"data_devolucao_real"`
	Status                string     `gorm:"size:20;index;not null;default:'ativo'" json:"status"`
	Observacoes           *string    `gorm:"column:observacoes" json:"observacoes"`
	TermoAceito           *bool      `gorm:"column:termo_aceito" json:"termo_aceito"`
	CreatedAt             *time.Time `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

func (Loan) TableName() string { return LoanTable }

// ActiveLoan é uma linha da view de empréstimos ativos com nomes já juntados.
type ActiveLoan struct {
	ID                    string     `gorm:"column:id" json:"id"`
	ClienteNome           string     `gorm:"column:cliente_nome" json:"cliente_nome"`
	ClienteTelefone       string     `gorm:"column:cliente_telefone" json:"cliente_telefone"`
	CategoriaCliente      string     `gorm:"column:categoria_cliente" json:"categoria_cliente"`
	EquipamentoCodigo     string     `gorm:"column:equipamento_codigo" json:"equipamento_codigo"`
	TipoEquipamento       string     `gorm:"column:tipo_equipamento" json:"tipo_equipamento"`
	DataEmprestimo        *time.Time `gorm:"column:data_emprestimo" json:"data_emprestimo"`
	DataDevolucaoPrevista *time.Time `gorm:"column:data_devolucao_prevista" json:"data_devolucao_prevista"`
	TempoUsoEstimado      int        `gorm:"column:tempo_uso_estimado" json:"tempo_uso_estimado"`
	SegurancaNome         string     `gorm:"column:seguranca_nome" json:"seguranca_nome"`
	StatusAtual           string     `gorm:"column:status_atual" json:"status_atual"`
}

func (ActiveLoan) TableName() string { return ActiveLoansView }
