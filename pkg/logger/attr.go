package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil err yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// UserID records the authenticated user; uuid.Nil yields an empty Attr.
func UserID(id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String("user_id", id.String())
}

// RequestID records the request identifier; "" yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the logical name of a request field.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Code records a stable message code such as "validation.is_uuid".
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// Codes records several message codes, in order.
func Codes(codes ...string) slog.Attr {
	return slog.Any("codes", codes)
}

func Status(status int) slog.Attr {
	return slog.Int("status", status)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
