package db

import (
	"context"

	"shoplend-totem/models"
)

// ListActiveOperators devolve os funcionários ativos ordenados por nome,
// buscados sempre frescos para a tela de seleção.
func (r *Repo) ListActiveOperators(ctx context.Context) ([]models.Operator, error) {
	var ops []models.Operator
	err := r.DB.WithContext(ctx).
		Where("ativo = ?", true).
		Order("nome ASC").
		Find(&ops).Error
	return ops, err
}

func (r *Repo) FindOperatorByID(ctx context.Context, id string) (*models.Operator, error) {
	var op models.Operator
	if err := r.DB.WithContext(ctx).First(&op, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}
