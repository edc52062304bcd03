// Package notify liga o canal de mudanças de equipamentos ao refetch do
// snapshot do totem.
package notify

import (
	"context"

	"shoplend-totem/db"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Subscriber é o recorte do *redis.Client que o watcher usa.
type Subscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// EquipmentWatcher assina o canal Redis da tabela de equipamentos e dispara
// um refetch completo a cada mensagem, sem filtrar por relevância — qualquer
// insert/update na tabela conta. O descarte de respostas atrasadas fica por
// conta do sequenciamento do state.Store, não daqui.
type EquipmentWatcher struct {
	sub     Subscriber
	log     *zap.Logger
	refetch func(ctx context.Context)
}

func NewEquipmentWatcher(sub Subscriber, log *zap.Logger, refetch func(ctx context.Context)) *EquipmentWatcher {
	return &EquipmentWatcher{sub: sub, log: log, refetch: refetch}
}

// Subscribe abre a assinatura e devolve a função que a encerra. O loop
// termina quando o contexto é cancelado ou quando stop é chamado; sem isso
// o listener ficaria pendurado depois do teardown.
func (w *EquipmentWatcher) Subscribe(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	ps := w.sub.Subscribe(ctx, db.EquipmentChannel)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.loop(ctx, ps.Channel())
	}()

	return func() {
		cancel()
		if err := ps.Close(); err != nil {
			w.log.Warn("erro ao fechar assinatura", zap.Error(err))
		}
		<-done
	}
}

// loop consome as mensagens até o cancelamento do contexto ou o fechamento
// do canal pela própria assinatura.
func (w *EquipmentWatcher) loop(ctx context.Context, ch <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			w.log.Debug("mudança em equipamentos", zap.String("payload", msg.Payload))
			w.refetch(ctx)
		}
	}
}
