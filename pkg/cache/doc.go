// Package cache provides a generic, thread-safe LRU cache with built-in
// loading of missing values.
//
// The engine uses it to keep word-list validators alive for the whole
// process: building one means parsing a large word corpus, so each validator
// is loaded once per source and then shared.
//
// # Usage
//
//	validators := cache.NewLRU[string, *caesar.WordListValidator](4)
//
//	v, err := validators.GetOrLoad(ctx, src.Name(), func(ctx context.Context) (*caesar.WordListValidator, error) {
//		lex, err := src.Load(ctx)
//		if err != nil {
//			return nil, err
//		}
//		return caesar.NewWordListValidator(lex), nil
//	})
//
// Concurrent GetOrLoad calls for the same key share one load, which keeps
// running when the caller that started it gives up. Failed loads are not
// cached, and a panicking loader surfaces as ErrLoadPanicked. When the cache is full the least recently used entry is
// evicted and the optional eviction callback is invoked.
package cache
