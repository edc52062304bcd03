package lending

import (
	"context"
	"errors"
	"time"

	"shoplend-totem/models"
	"shoplend-totem/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func isNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }

// Store é o recorte do repo que o processamento de empréstimos usa.
type Store interface {
	FindClientByCPF(ctx context.Context, cpf string) (*models.Client, error)
	FindClientByID(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, id string, c *models.Client) error

	FindAvailableEquipment(ctx context.Context, id string) (*models.Equipment, error)
	FindEquipmentByID(ctx context.Context, id string) (*models.Equipment, error)
	UpdateEquipmentStatus(ctx context.Context, id, status string) error

	FindOperatorByID(ctx context.Context, id string) (*models.Operator, error)

	CreateLoan(ctx context.Context, l *models.Loan) error
	FindActiveLoanByID(ctx context.Context, id string) (*models.Loan, error)
	CloseLoan(ctx context.Context, id, status string, when time.Time) error
}

type ClientData struct {
	Nome      string `json:"nome" binding:"required"`
	CPF       string `json:"cpf" binding:"required,cpf"`
	Telefone  string `json:"telefone" binding:"required,br_phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Categoria string `json:"categoria" binding:"required,oneof=gestante idoso outros"`
}

type LoanData struct {
	ClientData             ClientData `json:"clientData"`
	EquipmentID            string     `json:"equipmentId"`
	EquipmentType          string     `json:"equipmentType"`
	OperatorID             string     `json:"operatorId"`
	EstimatedDurationHours int        `json:"estimatedDurationHours"`
}

type LoanDetails struct {
	Loan           models.Loan      `json:"loan"`
	Client         models.Client    `json:"client"`
	Equipment      models.Equipment `json:"equipment"`
	Operator       models.Operator  `json:"operator"`
	ReturnDeadline time.Time        `json:"returnDeadline"`
}

type LoanResult struct {
	Success  bool         `json:"success"`
	LoanID   string       `json:"loanId,omitempty"`
	ClientID string       `json:"clientId,omitempty"`
	Message  string       `json:"message"`
	Details  *LoanDetails `json:"loanDetails,omitempty"`
}

type LoanService struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewLoanService(store Store, log *zap.Logger) *LoanService {
	return &LoanService{store: store, log: log, now: time.Now}
}

// ReturnDeadline calcula o prazo em relógio de parede: agora + horas.
func (s *LoanService) ReturnDeadline(durationHours int) time.Time {
	if durationHours <= 0 {
		durationHours = models.DefaultLoanHours
	}
	return s.now().Add(time.Duration(durationHours) * time.Hour)
}

// upsertClient acha o cliente pelo CPF limpo, atualizando o cadastro, ou
// cria um novo. O CPF é a chave natural mesmo com id sendo a PK.
func (s *LoanService) upsertClient(ctx context.Context, data ClientData) (string, bool) {
	cleanCPF := validation.Digits(data.CPF)
	cleanPhone := validation.Digits(data.Telefone)
	var email *string
	if data.Email != "" {
		email = &data.Email
	}

	existing, err := s.store.FindClientByCPF(ctx, cleanCPF)
	if err != nil && !isNotFound(err) {
		s.log.Error("erro ao buscar cliente", zap.Error(err))
		return "", false
	}

	if existing != nil {
		updated := &models.Client{
			Nome:             data.Nome,
			Telefone:         cleanPhone,
			Email:            email,
			CategoriaCliente: data.Categoria,
		}
		if err := s.store.UpdateClient(ctx, existing.ID, updated); err != nil {
			s.log.Error("erro ao atualizar cliente", zap.String("clientId", existing.ID), zap.Error(err))
			return "", false
		}
		return existing.ID, true
	}

	c := &models.Client{
		ID:               uuid.NewString(),
		Nome:             data.Nome,
		CPF:              cleanCPF,
		Telefone:         cleanPhone,
		Email:            email,
		CategoriaCliente: data.Categoria,
	}
	if err := s.store.CreateClient(ctx, c); err != nil {
		s.log.Error("erro ao criar cliente", zap.Error(err))
		return "", false
	}
	return c.ID, true
}

// CreateLoan executa a sequência do empréstimo, na ordem, sem transação e
// sem compensação: upsert do cliente, recheque do equipamento, prazo,
// insert do empréstimo, flip do status e releitura dos dados para exibição.
// Uma falha depois do insert deixa empréstimo e equipamento inconsistentes;
// essa lacuna é conhecida e aceita.
func (s *LoanService) CreateLoan(ctx context.Context, data LoanData) LoanResult {
	// 1. cliente
	clientID, ok := s.upsertClient(ctx, data.ClientData)
	if !ok {
		return LoanResult{Message: "Erro ao processar dados do cliente."}
	}

	// 2. o equipamento ainda está disponível?
	if _, err := s.store.FindAvailableEquipment(ctx, data.EquipmentID); err != nil {
		if !isNotFound(err) {
			s.log.Error("erro ao verificar equipamento", zap.String("id", data.EquipmentID), zap.Error(err))
		}
		return LoanResult{Message: "Equipamento não está mais disponível ou não foi encontrado."}
	}

	// 3. prazo de devolução
	hours := data.EstimatedDurationHours
	if hours <= 0 {
		hours = models.DefaultLoanHours
	}
	now := s.now()
	deadline := now.Add(time.Duration(hours) * time.Hour)

	// 4. empréstimo
	loan := &models.Loan{
		ID:                    uuid.NewString(),
		ClienteID:             clientID,
		EquipamentoID:         data.EquipmentID,
		SegurancaID:           data.OperatorID,
		DataEmprestimo:        &now,
		TempoUsoEstimado:      hours,
		DataDevolucaoPrevista: deadline,
		Status:                models.LoanActive,
	}
	if err := s.store.CreateLoan(ctx, loan); err != nil {
		s.log.Error("erro ao criar empréstimo", zap.Error(err))
		return LoanResult{Message: "Erro inesperado ao processar empréstimo. Tente novamente."}
	}

	// 5. equipamento passa a em_uso
	if err := s.store.UpdateEquipmentStatus(ctx, data.EquipmentID, models.EquipmentInUse); err != nil {
		s.log.Error("erro ao atualizar status do equipamento",
			zap.String("loanId", loan.ID), zap.Error(err))
		return LoanResult{Message: "Erro inesperado ao processar empréstimo. Tente novamente."}
	}

	// 6. releitura para o comprovante
	client, err := s.store.FindClientByID(ctx, clientID)
	if err != nil {
		s.log.Error("erro ao reler cliente", zap.Error(err))
		return LoanResult{Message: "Erro inesperado ao processar empréstimo. Tente novamente."}
	}
	operator, err := s.store.FindOperatorByID(ctx, data.OperatorID)
	if err != nil {
		s.log.Error("erro ao reler operador", zap.Error(err))
		return LoanResult{Message: "Erro inesperado ao processar empréstimo. Tente novamente."}
	}
	equipment, err := s.store.FindEquipmentByID(ctx, data.EquipmentID)
	if err != nil {
		s.log.Error("erro ao reler equipamento", zap.Error(err))
		return LoanResult{Message: "Erro inesperado ao processar empréstimo. Tente novamente."}
	}

	return LoanResult{
		Success:  true,
		LoanID:   loan.ID,
		ClientID: clientID,
		Message:  "Empréstimo criado com sucesso!",
		Details: &LoanDetails{
			Loan:           *loan,
			Client:         *client,
			Equipment:      *equipment,
			Operator:       *operator,
			ReturnDeadline: deadline,
		},
	}
}

// CancelLoan flipa o empréstimo ativo para 'cancelado' e libera o
// equipamento. Duas escritas separadas, mesmo risco sem rollback do create.
func (s *LoanService) CancelLoan(ctx context.Context, loanID string) LoanResult {
	return s.closeLoan(ctx, loanID, models.LoanCancelled,
		"Empréstimo cancelado com sucesso!",
		"Empréstimo não encontrado ou já foi cancelado.",
		"Erro ao cancelar empréstimo.")
}

// ReturnLoan é a devolução de fato: status 'devolvido' e equipamento livre.
func (s *LoanService) ReturnLoan(ctx context.Context, loanID string) LoanResult {
	return s.closeLoan(ctx, loanID, models.LoanReturned,
		"Equipamento devolvido com sucesso!",
		"Empréstimo não encontrado ou já foi devolvido.",
		"Erro ao devolver equipamento.")
}

func (s *LoanService) closeLoan(ctx context.Context, loanID, status, okMsg, notFoundMsg, errMsg string) LoanResult {
	loan, err := s.store.FindActiveLoanByID(ctx, loanID)
	if err != nil {
		if isNotFound(err) {
			return LoanResult{Message: notFoundMsg}
		}
		s.log.Error("erro ao buscar empréstimo", zap.String("loanId", loanID), zap.Error(err))
		return LoanResult{Message: errMsg}
	}

	if err := s.store.CloseLoan(ctx, loanID, status, s.now()); err != nil {
		s.log.Error("erro ao fechar empréstimo", zap.String("loanId", loanID), zap.Error(err))
		return LoanResult{Message: errMsg}
	}

	if err := s.store.UpdateEquipmentStatus(ctx, loan.EquipamentoID, models.EquipmentAvailable); err != nil {
		s.log.Error("erro ao liberar equipamento",
			zap.String("equipamentoId", loan.EquipamentoID), zap.Error(err))
		return LoanResult{Message: errMsg}
	}

	return LoanResult{Success: true, LoanID: loanID, Message: okMsg}
}
