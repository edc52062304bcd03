// controllers/srv.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"shoplend-totem/app"
	"shoplend-totem/db"
	"shoplend-totem/lending"
	"shoplend-totem/session"
	"shoplend-totem/state"

	"go.uber.org/zap"
)

type Srv struct {
	Repo  *db.Repo
	Sess  *session.OperatorSessionStore
	Avail *lending.AvailabilityService
	Loans *lending.LoanService
	Store *state.Store
	Log   *zap.Logger
	Cfg   app.Config
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB, a.RDB)
	return &Srv{
		Repo:  repo,
		Sess:  a.OperatorSessions(),
		Avail: lending.NewAvailabilityService(repo, a.Log),
		Loans: lending.NewLoanService(repo, a.Log),
		Store: state.NewStore(),
		Log:   a.Log,
		Cfg:   a.Config,
	}
}

// --- helpers ---

// setOperatorCookie grava o cookie da sessão; maxAge negativo apaga o
// cookie no navegador (Max-Age=0 no header).
func (s *Srv) setOperatorCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	seconds := int(maxAge / time.Second)
	if maxAge < 0 {
		seconds = -1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     app.OperatorCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   seconds,
	})
}

// RefreshEquipments recarrega o snapshot de equipamentos. A sequência obtida
// antes das consultas descarta respostas que cheguem depois de um refresh
// mais novo.
func (s *Srv) RefreshEquipments(ctx context.Context) {
	seq := s.Store.Begin()
	s.Store.SetLoading(true)

	eqs, err := s.Repo.ListEquipments(ctx)
	if err != nil {
		s.Log.Error("erro ao listar equipamentos", zap.Error(err))
		s.Store.SetError("Erro ao carregar equipamentos.")
		return
	}
	avail, err := s.Repo.ListAvailability(ctx)
	if err != nil {
		s.Log.Error("erro ao carregar disponibilidade", zap.Error(err))
		s.Store.SetError("Erro ao carregar equipamentos.")
		return
	}
	if !s.Store.SetEquipments(seq, eqs, avail) {
		s.Log.Debug("snapshot de equipamentos descartado", zap.Uint64("seq", seq))
	}
}

// RefreshActiveLoans recarrega a lista de empréstimos ativos da view.
func (s *Srv) RefreshActiveLoans(ctx context.Context) {
	seq := s.Store.Begin()

	loans, err := s.Repo.ListActiveLoans(ctx)
	if err != nil {
		s.Log.Error("erro ao listar empréstimos ativos", zap.Error(err))
		s.Store.SetError("Erro ao carregar empréstimos.")
		return
	}
	if !s.Store.SetActiveLoans(seq, loans) {
		s.Log.Debug("snapshot de empréstimos descartado", zap.Uint64("seq", seq))
	}
}
