package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Record is an entity kept in sync. RecordID is zero until the remote
// service assigns one; WithID returns a copy carrying the given id. The sync
// layer never looks at any other field.
type Record[T any] interface {
	RecordID() int64
	WithID(id int64) T
}

// LocalStore is the persistent local cache of records.
type LocalStore[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (T, error)
	Upsert(ctx context.Context, record T) (int64, error)
	UpsertAll(ctx context.Context, records []T) error
	Delete(ctx context.Context, record T) error
	UpdateInPlace(ctx context.Context, record T) error
}

// RemoteService is the authoritative remote copy of records. A returned
// error means the exchange itself failed; any status the server answered
// with comes back in the [models.Response].
type RemoteService[T any] interface {
	List(ctx context.Context) (models.Response[[]T], error)
	Create(ctx context.Context, record T) (models.Response[T], error)
	Update(ctx context.Context, id int64, record T) (models.Response[T], error)
	Delete(ctx context.Context, id int64) (models.Response[models.Unit], error)
}
