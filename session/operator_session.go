package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shoplend-totem/models"

	"github.com/redis/go-redis/v9"
)

// OperatorSessionStore guarda no Redis qual operador está logado em cada
// totem. A sessão nasce na escolha do operador e só morre na ação explícita
// de sair (o TTL é um limite de segurança, não um auto-logout do fluxo).
type OperatorSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOperatorSessionStore(rdb *redis.Client, ttl time.Duration) *OperatorSessionStore {
	return &OperatorSessionStore{rdb: rdb, ttl: ttl}
}

type OperatorSession struct {
	Operator  models.Operator `json:"operator"`
	IssuedAt  int64           `json:"iat"`
	ExpiresAt int64           `json:"exp"`
}

func key(id string) string { return fmt.Sprintf("totem:sess:%s", id) }

func (s *OperatorSessionStore) Create(ctx context.Context, id string, op models.Operator) error {
	now := time.Now()
	b, _ := json.Marshal(OperatorSession{
		Operator:  op,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	return s.rdb.Set(ctx, key(id), b, s.ttl).Err()
}

func (s *OperatorSessionStore) Get(ctx context.Context, id string) (*OperatorSession, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var os OperatorSession
	if err := json.Unmarshal(b, &os); err != nil {
		return nil, err
	}
	return &os, nil
}

func (s *OperatorSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}
