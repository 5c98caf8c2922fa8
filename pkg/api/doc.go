// Package api exposes the safeinput pipeline over HTTP.
//
// Every response uses the JSONResponse envelope. Rejected inputs answer 422 with
// error.code set to the safeinput.Kind; unknown validator names answer 404 and
// malformed bodies 400. Rejections are logged with their kind, the validator
// target type and the input length, never the input itself.
//
//	h := api.New(validator.DefaultRegistry(), cfg, api.WithLogger(log))
//	srv := httpserver.New(httpserver.WithLogger(log))
//	err := srv.Run(ctx, h.Router())
package api
