// Package batch validates many untrusted inputs concurrently.
//
// The safeinput core never starts goroutines; callers that receive several values at
// once (a form, a bulk API request, lines piped into the CLI) use this package to fan
// the pipeline out. Each input gets its own goroutine wrapped in a Future, an optional
// semaphore bounds parallelism, and results come back in input order with one error
// per item.
//
// # Usage
//
//	items := batch.ValidateAll(ctx, inputs, validator.Email{}, safeinput.Default(),
//	    batch.WithConcurrency(8),
//	    batch.WithTimeout(2*time.Second),
//	)
//	for _, it := range batch.Failed(items) {
//	    log.Printf("input %d rejected: %v", it.Index, it.Err)
//	}
//
// Lower-level helpers Go and Future are exported for callers that need a single
// asynchronous computation.
package batch
