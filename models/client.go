// models/client.go
package models

import "time"

const ClientTable = "clientes"

// Categorias de cliente
const (
	CategoryPregnant = "gestante"
	CategoryElderly  = "idoso"
	CategoryOther    = "outros"
)

// Client guarda CPF e telefone somente com dígitos; máscaras são aplicadas
// apenas na exibição. O CPF é a chave natural do upsert, o id é só a PK.
type Client struct {
	ID               string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome             string     `gorm:"column:nome;size:200;not null" json:"nome"`
	CPF              string     `gorm:"column:cpf;size:11;uniqueIndex;not null" json:"cpf"`
	Telefone         string     `gorm:"column:telefone;size:11;not null" json:"telefone"`
	Email            *string    `gorm:"column:email;size:255" json:"email"`
	CategoriaCliente string     `gorm:"column:categoria_cliente;size:20;not null" json:"categoria_cliente"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

func (Client) TableName() string { return ClientTable }

func CategoryLabel(categoria string) string {
	switch categoria {
	case CategoryPregnant:
		return "Gestante"
	case CategoryElderly:
		return "Idoso"
	default:
		return "Outros"
	}
}
