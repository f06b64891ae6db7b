// Package engine is the shared entry point to the cipher for the HTTP API and
// the command line tool.
//
// An Engine bundles a frequency table, a default word list source and a small
// cache of word list validators. The first English search (or an explicit
// Init) loads the word list; later searches reuse it. Each search locks its
// validator while applying the caller's threshold and trying keys, so
// concurrent callers with different thresholds never see each other's value.
//
//	eng := engine.New(engine.WithLogger(log))
//	if err := eng.Init(ctx); err != nil {
//		return err
//	}
//	res, err := eng.DecryptEnglish(ctx, ciphertext, 0.6)
//	if err != nil {
//		fmt.Println(engine.Message(err))
//		return
//	}
//	fmt.Println(engine.SuccessMessage(res))
//
// Every automatic search runs with a fresh run id in its context, which the
// logger attaches to all records it emits.
package engine
