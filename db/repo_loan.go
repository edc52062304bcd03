package db

import (
	"context"
	"time"

	"shoplend-totem/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateLoan(ctx context.Context, l *models.Loan) error {
	return r.DB.WithContext(ctx).Create(l).Error
}

// FindActiveLoanByID devolve o empréstimo só se ainda estiver ativo.
func (r *Repo) FindActiveLoanByID(ctx context.Context, id string) (*models.Loan, error) {
	var l models.Loan
	if err := r.DB.WithContext(ctx).
		First(&l, "id = ? AND status = ?", id, models.LoanActive).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// CloseLoan marca o empréstimo como 'devolvido' ou 'cancelado' com a data
// real de devolução. A liberação do equipamento é uma escrita separada,
// sem transação envolvendo as duas.
func (r *Repo) CloseLoan(ctx context.Context, id, status string, when time.Time) error {
	return r.DB.WithContext(ctx).Model(&models.Loan{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              status,
			"data_devolucao_real": when,
			"updated_at":          gorm.Expr("NOW()"),
		}).Error
}

// ListActiveLoans lê a view de empréstimos ativos, mais recentes primeiro.
func (r *Repo) ListActiveLoans(ctx context.Context) ([]models.ActiveLoan, error) {
	var rows []models.ActiveLoan
	err := r.DB.WithContext(ctx).
		Order("data_emprestimo DESC").
		Find(&rows).Error
	return rows, err
}
