package earning

import (
	"sync/atomic"

	"github.com/vfg2006/affiliate-earnings-api/internal/domain"
)

// SnapshotStore guarda o último snapshot publicado com sucesso. A publicação
// é uma troca atômica de ponteiro, então leitores nunca observam um agregado
// parcialmente atualizado; em caso de falha de ciclo o snapshot anterior
// continua visível.
type SnapshotStore struct {
	current atomic.Pointer[domain.Snapshot]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish substitui o snapshot corrente
func (s *SnapshotStore) Publish(snapshot *domain.Snapshot) {
	s.current.Store(snapshot)
}

// Latest retorna o último snapshot publicado, ou nil antes do primeiro ciclo
// bem-sucedido
func (s *SnapshotStore) Latest() *domain.Snapshot {
	return s.current.Load()
}
