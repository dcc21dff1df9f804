package handler

import "net/http"

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc handles a request with a typed context. Errors are returned as
// responses with Error, so every failure flows through one ErrorHandler.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler writes the response for a failed request.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to WithDecorators
// is the outermost.
type Decorator[C Context] func(HandlerFunc[C]) HandlerFunc[C]

// WrapOption configures Wrap.
type WrapOption[C Context] func(*wrapConfig[C])

type wrapConfig[C Context] struct {
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C]
}

// WithErrorHandler sets the error handler. Without it errors become plain-text
// responses with the HTTPError status, or 500.
func WithErrorHandler[C Context](h ErrorHandler[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets the constructor of custom contexts.
func WithContextFactory[C Context](f func(http.ResponseWriter, *http.Request) C) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[C Context](decorators ...Decorator[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

func defaultErrorHandler[C Context](ctx C, err error) {
	status, key := statusOf(err)
	http.Error(ctx.ResponseWriter(), key, status)
}

// Wrap converts a HandlerFunc into an http.HandlerFunc.
//
//	r.Post("/tasks", handler.Wrap(h.create, handler.WithErrorHandler(errorHandler)))
func Wrap[C Context](h HandlerFunc[C], opts ...WrapOption[C]) http.HandlerFunc {
	cfg := &wrapConfig[C]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := any(NewContext(w, r)).(C); ok {
				return c
			}
			panic("handler: custom context type requires WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		response := final(ctx)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if er, ok := response.(errorResponse); ok {
			cfg.errorHandler(ctx, er.err)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// errorResponse carries a failure out of a handler to the ErrorHandler.
type errorResponse struct{ err error }

func (e errorResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	return e.err
}

// Error turns err into a Response handled by the configured ErrorHandler.
func Error(err error) Response {
	if err == nil {
		err = ErrNilError
	}
	return errorResponse{err: err}
}
