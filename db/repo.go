package db

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EquipmentChannel é o canal Redis onde o repo anuncia qualquer escrita na
// tabela de equipamentos; quem assina refaz a leitura completa.
const EquipmentChannel = "equipamentos:changes"

type Repo struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewRepo(db *gorm.DB, rdb *redis.Client) *Repo { return &Repo{DB: db, RDB: rdb} }

// publishEquipmentChange notifica os totens assinantes. Falha de publish não
// bloqueia a escrita que já aconteceu.
func (r *Repo) publishEquipmentChange(ctx context.Context, op string) {
	if r.RDB == nil {
		return
	}
	_ = r.RDB.Publish(ctx, EquipmentChannel, op).Err()
}
