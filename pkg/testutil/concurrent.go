package testutil

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"agerange/internal/agerange/providers"
)

// ConcurrentResult tracks outcomes of concurrent age range requests.
type ConcurrentResult struct {
	Successes      int32
	NotAvailable   int32
	InvalidRequest int32
	Unknown        int32
	Cancelled      int32
	Errors         int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.NotAvailable + r.InvalidRequest + r.Unknown + r.Cancelled + r.Errors
}

// RunConcurrent executes fn in parallel goroutines and buckets each result by
// provider error kind. Context errors count as Cancelled; anything else
// unclassified lands in Errors.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, notAvailable, invalid, unknown, cancelled, errs atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := fn(idx)
			if err == nil {
				successes.Add(1)
				return
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				cancelled.Add(1)
				return
			}
			kind, _ := providers.KindOf(err)
			switch kind {
			case providers.KindNotAvailable:
				notAvailable.Add(1)
			case providers.KindInvalidRequest:
				invalid.Add(1)
			case providers.KindUnknown:
				unknown.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}

	wg.Wait()

	return &ConcurrentResult{
		Successes:      successes.Load(),
		NotAvailable:   notAvailable.Load(),
		InvalidRequest: invalid.Load(),
		Unknown:        unknown.Load(),
		Cancelled:      cancelled.Load(),
		Errors:         errs.Load(),
	}
}
