package service

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// item is a minimal record used to exercise the repository independently of
// products.
type item struct {
	ID    int64
	Label string
}

func (i item) RecordID() int64      { return i.ID }
func (i item) WithID(id int64) item { i.ID = id; return i }

// memStore is an in-memory LocalStore that also tracks how many calls overlap.
type memStore[T Record[T]] struct {
	mu      sync.Mutex
	rows    map[int64]T
	nextID  int64
	active  atomic.Int32
	overlap atomic.Bool
}

func newMemStore[T Record[T]](seed ...T) *memStore[T] {
	s := &memStore[T]{rows: make(map[int64]T)}
	for _, r := range seed {
		s.rows[r.RecordID()] = r
		s.nextID = max(s.nextID, r.RecordID())
	}
	return s
}

func (s *memStore[T]) enter() func() {
	if s.active.Add(1) > 1 {
		s.overlap.Store(true)
	}
	time.Sleep(time.Millisecond)
	return func() { s.active.Add(-1) }
}

func (s *memStore[T]) snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b T) int { return int(a.RecordID() - b.RecordID()) })
	return out
}

func (s *memStore[T]) FindAll(context.Context) ([]T, error) {
	defer s.enter()()
	return s.snapshot(), nil
}

func (s *memStore[T]) FindByID(_ context.Context, id int64) (T, error) {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		return r, errors.New("not found")
	}
	return r, nil
}

func (s *memStore[T]) Upsert(_ context.Context, r T) (int64, error) {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.RecordID() == 0 {
		s.nextID++
		r = r.WithID(s.nextID)
	}
	s.rows[r.RecordID()] = r
	s.nextID = max(s.nextID, r.RecordID())
	return r.RecordID(), nil
}

func (s *memStore[T]) UpsertAll(ctx context.Context, rs []T) error {
	for _, r := range rs {
		if _, err := s.Upsert(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore[T]) Delete(_ context.Context, r T) error {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, r.RecordID())
	return nil
}

func (s *memStore[T]) UpdateInPlace(_ context.Context, r T) error {
	defer s.enter()()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[r.RecordID()] = r
	return nil
}

// scriptedRemote answers every call with the configured outcome.
type scriptedRemote[T Record[T]] struct {
	list      models.Response[[]T]
	listErr   error
	nextID    atomic.Int64
	status    int
	deleteErr error
}

func (r *scriptedRemote[T]) List(context.Context) (models.Response[[]T], error) {
	return r.list, r.listErr
}

func (r *scriptedRemote[T]) Create(_ context.Context, rec T) (models.Response[T], error) {
	stored := rec.WithID(r.nextID.Add(1))
	return models.Response[T]{StatusCode: http.StatusCreated, Body: &stored}, nil
}

func (r *scriptedRemote[T]) Update(_ context.Context, _ int64, rec T) (models.Response[T], error) {
	return models.Response[T]{StatusCode: http.StatusOK, Body: &rec}, nil
}

func (r *scriptedRemote[T]) Delete(context.Context, int64) (models.Response[models.Unit], error) {
	return models.Response[models.Unit]{StatusCode: r.status}, r.deleteErr
}

func itemGen() *rapid.Generator[item] {
	return rapid.Custom(func(t *rapid.T) item {
		return item{
			ID:    rapid.Int64Range(1, 50).Draw(t, "id"),
			Label: rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "label"),
		}
	})
}

func itemsGen(minLen int) *rapid.Generator[[]item] {
	return rapid.SliceOfNDistinct(itemGen(), minLen, 8, item.RecordID)
}

func collect[T any](ch <-chan Result[T]) []Result[T] {
	var out []Result[T]
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func TestSyncRepository_Property_ListDeliversCacheFirst(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cached := itemsGen(1).Draw(rt, "cached")
		remoteItems := itemsGen(0).Draw(rt, "remote")

		remote := &scriptedRemote[item]{}
		switch rapid.IntRange(0, 3).Draw(rt, "remote behaviour") {
		case 0:
			remote.listErr = errors.New("unreachable")
		case 1:
			remote.list = models.Response[[]item]{StatusCode: http.StatusInternalServerError}
		case 2:
			remote.list = models.Response[[]item]{StatusCode: http.StatusOK}
		default:
			remote.list = models.Response[[]item]{StatusCode: http.StatusOK, Body: &remoteItems}
		}

		local := newMemStore(cached...)
		before := local.snapshot()

		repo := NewSyncRepository[item](local, remote, nil, nil)
		results := collect(repo.ListStream(context.Background()))
		repo.Close()

		if len(results) == 0 || results[0].Failed {
			rt.Fatalf("first delivery must be the cache, got %+v", results)
		}
		if !slices.Equal(before, results[0].Value) {
			rt.Fatalf("first delivery %v, cache %v", results[0].Value, before)
		}
		if len(results) > 2 {
			rt.Fatalf("at most two deliveries, got %d", len(results))
		}
	})
}

func TestSyncRepository_Property_FailedListKeepsCache(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cached := itemsGen(0).Draw(rt, "cached")
		remote := &scriptedRemote[item]{listErr: errors.New("timeout")}
		if rapid.Bool().Draw(rt, "status failure") {
			remote.listErr = nil
			remote.list = models.Response[[]item]{StatusCode: rapid.IntRange(400, 599).Draw(rt, "status")}
		}

		local := newMemStore(cached...)
		before := local.snapshot()

		repo := NewSyncRepository[item](local, remote, nil, nil)
		results := collect(repo.ListStream(context.Background()))
		repo.Close()

		if len(results) != 2 || !results[1].Failed {
			rt.Fatalf("expected cache then failure, got %+v", results)
		}
		if after := local.snapshot(); !slices.Equal(before, after) {
			rt.Fatalf("cache changed: before %v after %v", before, after)
		}
	})
}

func TestSyncRepository_Property_CreateStoresExactlyOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cached := itemsGen(0).Draw(rt, "cached")
		label := rapid.StringMatching(`[a-z]{1,6}`).Draw(rt, "label")

		remote := &scriptedRemote[item]{}
		remote.nextID.Store(100)
		local := newMemStore(cached...)

		repo := NewSyncRepository[item](local, remote, nil, nil)
		rec := newRecorder[item]()
		repo.Create(context.Background(), item{Label: label}, rec)
		got := rec.next(rt)
		repo.Close()

		if got.failed {
			rt.Fatalf("create failed: %s", got.message)
		}

		var matches []item
		for _, r := range local.snapshot() {
			if r.ID == got.value.ID {
				matches = append(matches, r)
			}
		}
		if len(matches) != 1 || matches[0] != got.value {
			rt.Fatalf("delivered %+v, stored %+v", got.value, matches)
		}
		if len(local.snapshot()) != len(cached)+1 {
			rt.Fatalf("expected %d rows, got %d", len(cached)+1, len(local.snapshot()))
		}
	})
}

func TestSyncRepository_Property_DeleteRemovesExactlyOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cached := itemsGen(1).Draw(rt, "cached")
		target := rapid.SampledFrom(cached).Draw(rt, "target")

		remote := &scriptedRemote[item]{status: rapid.SampledFrom([]int{http.StatusOK, http.StatusNoContent}).Draw(rt, "status")}
		local := newMemStore(cached...)

		repo := NewSyncRepository[item](local, remote, nil, nil)
		rec := newRecorder[models.Unit]()
		repo.Delete(context.Background(), target, rec)
		got := rec.next(rt)
		repo.Close()

		if got.failed {
			rt.Fatalf("delete failed: %s", got.message)
		}

		want := slices.DeleteFunc(newMemStore(cached...).snapshot(), func(r item) bool { return r.ID == target.ID })
		if after := local.snapshot(); !slices.Equal(want, after) {
			rt.Fatalf("want %v, got %v", want, after)
		}
	})
}

func TestSyncRepository_Property_MergeIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cached := itemsGen(0).Draw(rt, "cached")
		payload := itemsGen(0).Draw(rt, "payload")

		remote := &scriptedRemote[item]{list: models.Response[[]item]{StatusCode: http.StatusOK, Body: &payload}}
		local := newMemStore(cached...)
		repo := NewSyncRepository[item](local, remote, nil, nil)

		once := collect(repo.ListStream(context.Background()))
		afterOnce := local.snapshot()
		twice := collect(repo.ListStream(context.Background()))
		repo.Close()

		if !slices.Equal(afterOnce, local.snapshot()) {
			rt.Fatalf("second merge changed the cache")
		}
		if len(once) != 2 || len(twice) != 2 || !slices.Equal(once[1].Value, twice[1].Value) {
			rt.Fatalf("refreshed deliveries differ: %v vs %v", once, twice)
		}
	})
}

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestSyncRepository_Scenario_ListMergesRemote(t *testing.T) {
	remoteItems := []item{{ID: 1, Label: "A2"}, {ID: 2, Label: "B"}}
	remote := &scriptedRemote[item]{list: models.Response[[]item]{StatusCode: http.StatusOK, Body: &remoteItems}}
	local := newMemStore(item{ID: 1, Label: "A"})

	repo := NewSyncRepository[item](local, remote, nil, nil)
	defer repo.Close()

	results := collect(repo.ListStream(context.Background()))

	require.Len(t, results, 2)
	assert.Equal(t, []item{{ID: 1, Label: "A"}}, results[0].Value)
	assert.Equal(t, remoteItems, results[1].Value)
}

func TestSyncRepository_Scenario_CreateAssignsRemoteID(t *testing.T) {
	remote := &scriptedRemote[item]{}
	remote.nextID.Store(2)
	local := newMemStore[item]()

	repo := NewSyncRepository[item](local, remote, nil, nil)
	defer repo.Close()

	rec := newRecorder[item]()
	repo.Create(context.Background(), item{Label: "C"}, rec)

	got := rec.next(t)
	require.False(t, got.failed)
	assert.Equal(t, item{ID: 3, Label: "C"}, got.value)
	assert.Equal(t, []item{{ID: 3, Label: "C"}}, local.snapshot())
}

func TestSyncRepository_Scenario_RejectedDeleteKeepsRow(t *testing.T) {
	remote := &scriptedRemote[item]{status: http.StatusInternalServerError}
	local := newMemStore(item{ID: 2, Label: "B"})

	repo := NewSyncRepository[item](local, remote, nil, nil)
	defer repo.Close()

	rec := newRecorder[models.Unit]()
	repo.Delete(context.Background(), item{ID: 2}, rec)

	got := rec.next(t)
	assert.True(t, got.failed)
	assert.Equal(t, app.MsgUnexpectedServerResponse, got.message)
	assert.Equal(t, []item{{ID: 2, Label: "B"}}, local.snapshot())
}

func TestSyncRepository_OverlappingOperations_SerialiseStoreAccess(t *testing.T) {
	remoteItems := []item{{ID: 1, Label: "x"}, {ID: 2, Label: "y"}}
	remote := &scriptedRemote[item]{
		list:   models.Response[[]item]{StatusCode: http.StatusOK, Body: &remoteItems},
		status: http.StatusNoContent,
	}
	remote.nextID.Store(10)
	local := newMemStore(item{ID: 1, Label: "a"}, item{ID: 2, Label: "b"})

	repo := NewSyncRepository[item](local, remote, nil, nil)

	for i := range 8 {
		repo.List(context.Background(), nil)
		repo.Create(context.Background(), item{Label: "n"}, nil)
		repo.Update(context.Background(), item{ID: int64(i%2 + 1), Label: "u"}, nil)
		repo.Delete(context.Background(), item{ID: 99}, nil)
	}
	repo.Close()

	assert.False(t, local.overlap.Load(), "local store calls overlapped")
	assert.Len(t, local.snapshot(), 2+8)
}
