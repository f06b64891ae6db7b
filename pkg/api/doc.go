// Package api exposes the cipher engine over HTTP.
//
// Router returns a chi router with JSON endpoints for manual encryption and
// decryption, crib and word list key recovery and a ranked list of all
// candidate decryptions. Successful responses wrap their payload in
// {"data": ...}; failures return {"error": {"code", "message"}} where code is
// one of the Code* constants:
//
//	non-ASCII input            422 non_ascii
//	no key accepted            422 plaintext_invalid
//	empty crib                 400 empty_crib
//	malformed body             400 bad_request
//	word list not loadable     503 validator_unavailable
//
// Server runs the handler with graceful shutdown on context cancellation,
// SIGINT or SIGTERM:
//
//	srv := api.NewServerFromConfig(cfg.HTTP, api.WithLogger(log))
//	err := srv.Run(ctx, api.Router(eng, api.WithRouterLogger(log)))
package api
