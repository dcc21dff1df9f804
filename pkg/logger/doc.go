// Package logger builds the service's *slog.Logger and provides attribute
// helpers so keys stay consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "taskapi"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(
//	        logger.StringExtractor("request_id", middleware.GetReqID),
//	    ),
//	)
//	log.WarnContext(ctx, "invalid request", logger.Codes(codes...), logger.Status(400))
//
// Context extractors run on every *Context call, after the request id or user
// id has been stored, and add their attributes to the record. Error and the
// id helpers return an empty slog.Attr for zero inputs; slog omits those.
package logger
