package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const defaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	products ClientProductService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls products.List on a
// ticker. The job is idle until Start is called.
func NewClientRefreshJob(products ClientProductService) ClientRefreshJob {
	return &clientRefreshJob{products: products}
}

// Start implements ClientRefreshJob. Each tick issues a List; results go to
// onResult exactly as for a user-initiated refresh.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration, onResult Callback[[]models.Product]) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.products.List(jobCtx, onResult)
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
