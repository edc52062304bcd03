package app

import (
	"context"
	"net/http"

	"shoplend-totem/models"
	"shoplend-totem/session"

	"github.com/gin-gonic/gin"
)

const OperatorCookie = "totem_operator"

// OperatorSessions é o recorte do session.OperatorSessionStore que o
// middleware precisa; testes usam um dublê.
type OperatorSessions interface {
	Get(ctx context.Context, id string) (*session.OperatorSession, error)
}

// OperatorLister fornece a lista de seguranças ativos para o seletor
// devolvido junto do 401.
type OperatorLister interface {
	ListActiveOperators(ctx context.Context) ([]models.Operator, error)
}

// OperatorRequired bloqueia as rotas do totem enquanto nenhum operador foi
// escolhido. O 401 já carrega os operadores ativos para o cliente montar a
// tela de escolha em vez de renderizar a rota pedida.
func OperatorRequired(sess OperatorSessions, ops OperatorLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(OperatorCookie)
		if err == nil && ck.Value != "" {
			if os, err := sess.Get(c.Request.Context(), ck.Value); err == nil {
				c.Set("operator", os.Operator)
				c.Next()
				return
			}
		}

		list, lerr := ops.ListActiveOperators(c.Request.Context())
		if lerr != nil {
			list = nil
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, H{
			"error":      "operador não selecionado",
			"selecionar": true,
			"operadores": list,
		})
	}
}

// CurrentOperator lê o operador colocado no contexto pelo middleware.
func CurrentOperator(c *gin.Context) (models.Operator, bool) {
	v, ok := c.Get("operator")
	if !ok {
		return models.Operator{}, false
	}
	op, ok := v.(models.Operator)
	return op, ok
}
