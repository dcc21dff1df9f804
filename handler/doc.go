// Package handler adapts typed handlers to net/http and owns the JSON error
// boundary of the API.
//
// A HandlerFunc receives a Context carrying the request, the negotiated
// locale and the rendering location, and returns a Response:
//
//	func (h *Handler) get(ctx handler.Context) handler.Response {
//		task, err := h.repo.FindByID(ctx, id)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(render(task, ctx.Location()))
//	}
//
// Errors returned through Error reach the ErrorHandler built by
// NewErrorHandler, which classifies them and writes
//
//	{"errors": [{"field": "title", "type": "validation.is_empty", "message": "..."}]}
//
// Validation failures yield 400 with one entry per failed field in input
// order. Token failures keep the status and code chosen by package jwt.
// HTTPError values use their own status and key. Anything else is a 500
// "internal_server_error". Messages are translated once, here, using the
// locale stored by i18n.Middleware.
package handler
