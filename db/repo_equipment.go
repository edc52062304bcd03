package db

import (
	"context"

	"shoplend-totem/models"

	"gorm.io/gorm"
)

// ListEquipments devolve todos os equipamentos ordenados por tipo e código.
func (r *Repo) ListEquipments(ctx context.Context) ([]models.Equipment, error) {
	var eqs []models.Equipment
	err := r.DB.WithContext(ctx).
		Order("tipo_equipamento ASC").
		Order("codigo ASC").
		Find(&eqs).Error
	return eqs, err
}

// ListAvailability lê a view agregada de disponibilidade.
func (r *Repo) ListAvailability(ctx context.Context) ([]models.EquipmentAvailability, error) {
	var rows []models.EquipmentAvailability
	err := r.DB.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *Repo) FindEquipmentByID(ctx context.Context, id string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.DB.WithContext(ctx).First(&eq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

// FindAvailableEquipment relê o equipamento filtrando pelo status
// 'disponivel'. É a checagem consultiva da "reserva": nada é escrito.
func (r *Repo) FindAvailableEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.DB.WithContext(ctx).
		First(&eq, "id = ? AND status = ?", id, models.EquipmentAvailable).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

// FirstAvailableByType pega uma unidade disponível do tipo pedido.
func (r *Repo) FirstAvailableByType(ctx context.Context, tipo string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.DB.WithContext(ctx).
		Where("tipo_equipamento = ? AND status = ?", tipo, models.EquipmentAvailable).
		Order("codigo ASC").
		First(&eq).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

// CountByType conta total e disponíveis do tipo.
func (r *Repo) CountByType(ctx context.Context, tipo string) (total, available int64, err error) {
	tx := r.DB.WithContext(ctx).Model(&models.Equipment{}).
		Where("tipo_equipamento = ?", tipo)
	if err = tx.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.DB.WithContext(ctx).Model(&models.Equipment{}).
		Where("tipo_equipamento = ? AND status = ?", tipo, models.EquipmentAvailable).
		Count(&available).Error
	return total, available, err
}

// UpdateEquipmentStatus escreve o status direto e anuncia a mudança.
func (r *Repo) UpdateEquipmentStatus(ctx context.Context, id, status string) error {
	err := r.DB.WithContext(ctx).Model(&models.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return err
	}
	r.publishEquipmentChange(ctx, "UPDATE")
	return nil
}
