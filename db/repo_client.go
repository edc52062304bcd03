package db

import (
	"context"

	"shoplend-totem/models"

	"gorm.io/gorm"
)

// FindClientByCPF busca pela chave natural (CPF só com dígitos).
func (r *Repo) FindClientByCPF(ctx context.Context, cpf string) (*models.Client, error) {
	var c models.Client
	if err := r.DB.WithContext(ctx).Where("cpf = ?", cpf).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) FindClientByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) CreateClient(ctx context.Context, c *models.Client) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

// UpdateClient atualiza o cadastro de um cliente já existente; o CPF não muda.
func (r *Repo) UpdateClient(ctx context.Context, id string, c *models.Client) error {
	return r.DB.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"nome":              c.Nome,
			"telefone":          c.Telefone,
			"email":             c.Email,
			"categoria_cliente": c.CategoriaCliente,
			"updated_at":        gorm.Expr("NOW()"),
		}).Error
}
