package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrLeaseLost indica que a lease expirou ou foi tomada por outro dono
var ErrLeaseLost = errors.New("lease perdida")

// Locker concede leases exclusivos e temporários por chave
type Locker interface {
	// TryLock tenta adquirir a chave sem bloquear; ok=false quando outro dono detém a lease
	TryLock(ctx context.Context, key string, ttl time.Duration) (lease Lease, ok bool, err error)
}

// Lease representa uma chave adquirida; expira sozinha após o TTL
type Lease interface {
	Key() string
	// Refresh renova o TTL se a lease ainda for nossa; caso contrário retorna ErrLeaseLost
	Refresh(ctx context.Context, ttl time.Duration) error
	Release(ctx context.Context) error
}

// ExperimentKey é a chave usada para serializar a avaliação de um experimento
func ExperimentKey(experimentID string) string {
	return fmt.Sprintf("optimizer:experiment:%s", experimentID)
}
