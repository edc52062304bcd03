// Package state guarda o snapshot em memória que os handlers do totem
// servem: equipamentos, agregado de disponibilidade, empréstimos ativos e
// fila, com um flag compartilhado de loading/erro. Tudo some num restart do
// processo; a fonte de verdade continua sendo o banco.
package state

import (
	"sync"

	"shoplend-totem/models"
)

// Store é o estado de sessão do totem. Cada ciclo de fetch pede um número
// de sequência com Begin; um Set com sequência menor que a última aplicada é
// descartado, então uma resposta lenta nunca sobrescreve uma mais nova.
type Store struct {
	mu sync.RWMutex

	equipments   []models.Equipment
	availability []models.EquipmentAvailability
	activeLoans  []models.ActiveLoan
	queue        []models.QueueRow

	loading bool
	err     string

	nextSeq    uint64
	appliedSeq uint64
	loansSeq   uint64
}

func NewStore() *Store { return &Store{} }

// Begin reserva a sequência do próximo fetch.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// SetEquipments aplica o resultado de um fetch; devolve false se uma
// resposta mais nova já tiver sido aplicada.
func (s *Store) SetEquipments(seq uint64, eqs []models.Equipment, avail []models.EquipmentAvailability) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.equipments = eqs
	s.availability = avail
	s.loading = false
	s.err = ""
	return true
}

func (s *Store) SetActiveLoans(seq uint64, loans []models.ActiveLoan) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.loansSeq {
		return false
	}
	s.loansSeq = seq
	s.activeLoans = loans
	s.err = ""
	return true
}

func (s *Store) SetQueue(rows []models.QueueRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = rows
}

func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.loading = false
}

// PatchEquipment aplica um update otimista de status num único equipamento.
func (s *Store) PatchEquipment(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.equipments {
		if s.equipments[i].ID == id {
			s.equipments[i].Status = status
			return
		}
	}
}

// --- acessores estreitos ---

// Equipments devolve cópias: PatchEquipment muda as linhas no lugar, então
// entregar o slice interno deixaria o chamador lendo fora do lock.
func (s *Store) Equipments() ([]models.Equipment, []models.EquipmentAvailability) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eqs := make([]models.Equipment, len(s.equipments))
	copy(eqs, s.equipments)
	avail := make([]models.EquipmentAvailability, len(s.availability))
	copy(avail, s.availability)
	return eqs, avail
}

// AvailabilityByType acha a linha do agregado para um tipo.
func (s *Store) AvailabilityByType(tipo string) (models.EquipmentAvailability, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, av := range s.availability {
		if av.TipoEquipamento == tipo {
			return av, true
		}
	}
	return models.EquipmentAvailability{}, false
}

// AvailableByType filtra os equipamentos disponíveis de um tipo.
func (s *Store) AvailableByType(tipo string) []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Equipment
	for _, eq := range s.equipments {
		if eq.TipoEquipamento == tipo && eq.Status == models.EquipmentAvailable {
			out = append(out, eq)
		}
	}
	return out
}

func (s *Store) ActiveLoans() []models.ActiveLoan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loans := make([]models.ActiveLoan, len(s.activeLoans))
	copy(loans, s.activeLoans)
	return loans
}

func (s *Store) Queue() []models.QueueRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]models.QueueRow, len(s.queue))
	copy(rows, s.queue)
	return rows
}

func (s *Store) LoadingError() (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading, s.err
}

// Empty indica que nenhum fetch de equipamentos foi aplicado ainda.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appliedSeq == 0
}
