package lending

import (
	"context"
	"errors"
	"time"

	"shoplend-totem/models"

	"gorm.io/gorm"
)

// fakeStore é um dublê em memória do recorte do repo.
type fakeStore struct {
	clients    map[string]*models.Client // por id
	equipments map[string]*models.Equipment
	operators  map[string]*models.Operator
	loans      map[string]*models.Loan

	failOn string // nome do método que deve falhar
}

var errBoom = errors.New("boom")

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients:    map[string]*models.Client{},
		equipments: map[string]*models.Equipment{},
		operators:  map[string]*models.Operator{},
		loans:      map[string]*models.Loan{},
	}
}

func (f *fakeStore) addEquipment(id, tipo, status string) {
	f.equipments[id] = &models.Equipment{ID: id, Codigo: "EQ-" + id, TipoEquipamento: tipo, Status: status}
}

func (f *fakeStore) FindClientByCPF(ctx context.Context, cpf string) (*models.Client, error) {
	if f.failOn == "FindClientByCPF" {
		return nil, errBoom
	}
	for _, c := range f.clients {
		if c.CPF == cpf {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindClientByID(ctx context.Context, id string) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateClient(ctx context.Context, c *models.Client) error {
	if f.failOn == "CreateClient" {
		return errBoom
	}
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateClient(ctx context.Context, id string, c *models.Client) error {
	existing, ok := f.clients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Nome = c.Nome
	existing.Telefone = c.Telefone
	existing.Email = c.Email
	existing.CategoriaCliente = c.CategoriaCliente
	return nil
}

func (f *fakeStore) FindAvailableEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	if f.failOn == "FindAvailableEquipment" {
		return nil, errBoom
	}
	if eq, ok := f.equipments[id]; ok && eq.Status == models.EquipmentAvailable {
		cp := *eq
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindEquipmentByID(ctx context.Context, id string) (*models.Equipment, error) {
	if eq, ok := f.equipments[id]; ok {
		cp := *eq
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateEquipmentStatus(ctx context.Context, id, status string) error {
	if f.failOn == "UpdateEquipmentStatus" {
		return errBoom
	}
	eq, ok := f.equipments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	eq.Status = status
	return nil
}

func (f *fakeStore) FirstAvailableByType(ctx context.Context, tipo string) (*models.Equipment, error) {
	if f.failOn == "FirstAvailableByType" {
		return nil, errBoom
	}
	for _, eq := range f.equipments {
		if eq.TipoEquipamento == tipo && eq.Status == models.EquipmentAvailable {
			cp := *eq
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CountByType(ctx context.Context, tipo string) (total, available int64, err error) {
	if f.failOn == "CountByType" {
		return 0, 0, errBoom
	}
	for _, eq := range f.equipments {
		if eq.TipoEquipamento != tipo {
			continue
		}
		total++
		if eq.Status == models.EquipmentAvailable {
			available++
		}
	}
	return total, available, nil
}

func (f *fakeStore) FindOperatorByID(ctx context.Context, id string) (*models.Operator, error) {
	if op, ok := f.operators[id]; ok {
		cp := *op
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateLoan(ctx context.Context, l *models.Loan) error {
	if f.failOn == "CreateLoan" {
		return errBoom
	}
	cp := *l
	f.loans[l.ID] = &cp
	return nil
}

func (f *fakeStore) FindActiveLoanByID(ctx context.Context, id string) (*models.Loan, error) {
	if l, ok := f.loans[id]; ok && l.Status == models.LoanActive {
		cp := *l
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CloseLoan(ctx context.Context, id, status string, when time.Time) error {
	l, ok := f.loans[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Status = status
	l.DataDevolucaoReal = &when
	return nil
}
