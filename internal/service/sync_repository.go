package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/workers"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// ErrRepositoryClosed is the panic value for operations started after Close.
var ErrRepositoryClosed = errors.New("sync repository is closed")

// storeQueueSize bounds how many local store tasks may wait for the writer.
const storeQueueSize = 64

// SyncRepository keeps a [LocalStore] in step with a [RemoteService].
//
// Reads are served from the local store first and then refreshed from the
// remote service. Writes go to the remote service first; only the record the
// remote service returns is mirrored locally, and only after that does the
// caller hear about success.
//
// Every operation returns immediately and runs on its own goroutine. Results
// reach the caller through a [Callback] invoked via the [Dispatcher]. All
// local store access goes through a single writer goroutine, so overlapping
// operations never touch the store concurrently. Remote calls are not
// serialised.
//
// A local store error is treated as a broken invariant: the fatal handler is
// called (by default it panics) and the operation delivers nothing.
type SyncRepository[T Record[T]] struct {
	local      LocalStore[T]
	remote     RemoteService[T]
	dispatcher Dispatcher
	logger     *logger.Logger

	store *workers.Serial
	fatal func(error)

	mu       sync.Mutex
	closed   bool
	inFlight sync.WaitGroup
}

// SyncRepositoryOption customises a [SyncRepository].
type SyncRepositoryOption func(*syncRepositoryOptions)

type syncRepositoryOptions struct {
	fatal func(error)
}

// WithFatalHandler replaces the default panic on local store failure.
// The handler runs on the operation's goroutine.
func WithFatalHandler(fn func(error)) SyncRepositoryOption {
	return func(o *syncRepositoryOptions) {
		o.fatal = fn
	}
}

// NewSyncRepository wires a repository. A nil dispatcher delivers inline and
// a nil logger discards output.
func NewSyncRepository[T Record[T]](
	local LocalStore[T],
	remote RemoteService[T],
	dispatcher Dispatcher,
	log *logger.Logger,
	opts ...SyncRepositoryOption,
) *SyncRepository[T] {
	o := syncRepositoryOptions{
		fatal: func(err error) {
			panic(fmt.Errorf("local store failure: %w", err))
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if dispatcher == nil {
		dispatcher = InlineDispatcher{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &SyncRepository[T]{
		local:      local,
		remote:     remote,
		dispatcher: dispatcher,
		logger:     log,
		store:      workers.NewSerial(storeQueueSize),
		fatal:      o.fatal,
	}
}

// List delivers the locally cached records, then asks the remote service for
// the authoritative list. On success every returned record is upserted and
// the whole cache is delivered a second time. Records missing remotely stay
// in the cache. A remote failure is delivered through OnFailure and leaves
// the cache untouched; a successful answer without a body delivers nothing
// more.
func (r *SyncRepository[T]) List(ctx context.Context, onResult Callback[[]T]) {
	sink := dispatchTo(r.dispatcher, onResult)
	r.spawn(ctx, func(ctx context.Context) { r.list(ctx, sink) })
}

// Create sends record to the remote service and mirrors the stored copy it
// returns into the local cache. The delivered record is re-read from the
// cache, so it carries the remote id.
func (r *SyncRepository[T]) Create(ctx context.Context, record T, onResult Callback[T]) {
	sink := dispatchTo(r.dispatcher, onResult)
	r.spawn(ctx, func(ctx context.Context) { r.create(ctx, record, sink) })
}

// Update sends record to the remote service under its id, replaces the cached
// row with the remote result and delivers that result.
func (r *SyncRepository[T]) Update(ctx context.Context, record T, onResult Callback[T]) {
	sink := dispatchTo(r.dispatcher, onResult)
	r.spawn(ctx, func(ctx context.Context) { r.update(ctx, record, sink) })
}

// Delete asks the remote service to delete record and removes the cached row
// once it agrees. Success depends on the status only; the remote answer has
// no body.
func (r *SyncRepository[T]) Delete(ctx context.Context, record T, onResult Callback[models.Unit]) {
	sink := dispatchTo(r.dispatcher, onResult)
	r.spawn(ctx, func(ctx context.Context) { r.delete(ctx, record, sink) })
}

// Close waits for running operations to finish and stops the store writer.
// Starting an operation after Close panics with [ErrRepositoryClosed].
func (r *SyncRepository[T]) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.inFlight.Wait()
	r.store.Stop()
}

func (r *SyncRepository[T]) list(ctx context.Context, emit func(Result[[]T])) {
	log := r.logger.With().Str("func", "SyncRepository.List").Logger()

	var cached []T
	if !r.onStore(ctx, func(ctx context.Context) (err error) {
		cached, err = r.local.FindAll(ctx)
		return err
	}) {
		return
	}
	emit(success(cached))

	resp, err := r.remote.List(ctx)
	if msg, failed := remoteFailure(resp, err, false); failed {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("remote list failed")
		emit(failure[[]T](msg))
		return
	}
	if !resp.HasBody() {
		log.Debug().Int("status", resp.StatusCode).Msg("remote list answered without body")
		return
	}

	var refreshed []T
	if !r.onStore(ctx, func(ctx context.Context) (err error) {
		if err = r.local.UpsertAll(ctx, *resp.Body); err != nil {
			return err
		}
		refreshed, err = r.local.FindAll(ctx)
		return err
	}) {
		return
	}
	log.Debug().Int("remote", len(*resp.Body)).Int("cached", len(refreshed)).Msg("local cache refreshed")

	emit(success(refreshed))
}

func (r *SyncRepository[T]) create(ctx context.Context, record T, emit func(Result[T])) {
	log := r.logger.With().Str("func", "SyncRepository.Create").Logger()

	resp, err := r.remote.Create(ctx, record)
	if msg, failed := remoteFailure(resp, err, true); failed {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("remote create failed")
		emit(failure[T](msg))
		return
	}

	var stored T
	if !r.onStore(ctx, func(ctx context.Context) error {
		id, err := r.local.Upsert(ctx, *resp.Body)
		if err != nil {
			return err
		}
		stored, err = r.local.FindByID(ctx, id)
		return err
	}) {
		return
	}

	emit(success(stored))
}

func (r *SyncRepository[T]) update(ctx context.Context, record T, emit func(Result[T])) {
	log := r.logger.With().Str("func", "SyncRepository.Update").Int64("id", record.RecordID()).Logger()

	resp, err := r.remote.Update(ctx, record.RecordID(), record)
	if msg, failed := remoteFailure(resp, err, true); failed {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("remote update failed")
		emit(failure[T](msg))
		return
	}

	updated := *resp.Body
	if updated.RecordID() == 0 {
		updated = updated.WithID(record.RecordID())
	}

	if !r.onStore(ctx, func(ctx context.Context) error {
		return r.local.UpdateInPlace(ctx, updated)
	}) {
		return
	}

	emit(success(updated))
}

func (r *SyncRepository[T]) delete(ctx context.Context, record T, emit func(Result[models.Unit])) {
	log := r.logger.With().Str("func", "SyncRepository.Delete").Int64("id", record.RecordID()).Logger()

	resp, err := r.remote.Delete(ctx, record.RecordID())
	if msg, failed := remoteFailure(resp, err, false); failed {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("remote delete failed")
		emit(failure[models.Unit](msg))
		return
	}

	if !r.onStore(ctx, func(ctx context.Context) error {
		return r.local.Delete(ctx, record)
	}) {
		return
	}

	emit(success(models.Unit{}))
}

// onStore runs fn on the store writer and waits for it. Cancellation of the
// caller's context does not interrupt local writes. Reports false after
// handing a failure to the fatal handler.
func (r *SyncRepository[T]) onStore(ctx context.Context, fn func(ctx context.Context) error) bool {
	storeCtx := context.WithoutCancel(ctx)

	var err error
	if doErr := r.store.Do(func() { err = fn(storeCtx) }); doErr != nil {
		err = doErr
	}
	if err != nil {
		r.logger.Error().Err(err).Str("func", "SyncRepository.onStore").Msg("local store failure")
		r.fatal(err)
		return false
	}

	return true
}

// spawn runs op on its own goroutine. The repository logger is attached to
// ctx unless the caller attached one, so the store and the remote service log
// through it.
func (r *SyncRepository[T]) spawn(ctx context.Context, op func(ctx context.Context)) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		panic(ErrRepositoryClosed)
	}
	r.inFlight.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.inFlight.Done()
		op(logger.WithLogger(ctx, r.logger))
	}()
}

// dispatchTo turns results into callback invocations on d. A nil callback
// discards results.
func dispatchTo[V any](d Dispatcher, cb Callback[V]) func(Result[V]) {
	if cb == nil {
		cb = CallbackFuncs[V]{}
	}
	return func(res Result[V]) {
		d.Dispatch(func() { res.Deliver(cb) })
	}
}
