package validator

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// ListSeparator splits delimited list inputs such as tag_ids=a,b,c.
const ListSeparator = ","

// UUID parses the canonical 36-character hyphenated form.
// uuid.Parse alone also accepts urn: and braced forms, which are not valid API input.
func UUID(_ context.Context, raw string) (uuid.UUID, error) {
	id, ok := parseCanonicalUUID(strings.TrimSpace(raw))
	if !ok {
		return uuid.Nil, Fail(CodeUUID, raw)
	}
	return id, nil
}

// UUIDList parses a comma-delimited list of UUIDs. Items are trimmed and
// de-duplicated keeping the first occurrence. A blank input yields an empty,
// non-nil list, which PATCH callers use to clear an association.
func UUIDList(_ context.Context, raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return []uuid.UUID{}, nil
	}

	parts := strings.Split(raw, ListSeparator)
	ids := make([]uuid.UUID, 0, len(parts))
	seen := make(map[uuid.UUID]struct{}, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		id, ok := parseCanonicalUUID(item)
		if !ok {
			return nil, Fail(CodeUUIDList, item)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// NotNilUUID rejects the all-zero UUID.
func NotNilUUID(_ context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return Fail(CodeUUID, id.String())
	}
	return nil
}

func parseCanonicalUUID(s string) (uuid.UUID, bool) {
	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
