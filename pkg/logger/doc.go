// Package logger builds log/slog loggers for the safeinput binaries.
//
// New returns a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, static attributes and context extractors.
// The handler is wrapped with LogHandlerDecorator which adds attributes taken
// from the record's context, so a request id stored by requestid.Middleware
// shows up on every line logged with InfoContext/ErrorContext.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "safeinput"),
//	    logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	res, err := c.Check(ctx, input, cfg)
//	if err != nil {
//	    log.WarnContext(ctx, "input rejected",
//	        logger.TargetType(c.TargetType()),
//	        logger.InputLength(input),
//	        logger.Rejection(err),
//	    )
//	}
//
// # Attributes
//
// Helpers in attr.go keep attribute names consistent. Rejection turns a
// safeinput.ValidationError into a "rejection" group with its kind and count or
// message. Untrusted input is never logged verbatim; InputLength records only its size.
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// without a nil check.
package logger
