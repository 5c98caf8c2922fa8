// Package requestid attaches correlation IDs to HTTP requests.
//
// Middleware reuses a client "X-Request-ID" header when it survives the safeinput
// pipeline with IDValidator, and otherwise generates a UUIDv4. The ID is stored in
// the request context (FromContext) and echoed in the response header.
//
// LoggerExtractor plugs the ID into pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	router.Use(requestid.Middleware)
package requestid
