package validator

import (
	"context"
	"fmt"
	"strings"
)

// Lookup rules consult read-only collaborators (repositories). A lookup error is
// returned untouched and therefore treated as a fault, not as invalid input.
// Lookups must not write: the same input may be validated again on retry.

// Exists fails with CodeDoesNotExist when exists reports the id as unknown.
func Exists[ID any](exists func(ctx context.Context, id ID) (bool, error)) Check[ID] {
	return func(ctx context.Context, id ID) error {
		ok, err := exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return Fail(CodeDoesNotExist, id)
		}
		return nil
	}
}

// Resolve turns an id into its entity for use with Map.
func Resolve[ID, E any](find func(ctx context.Context, id ID) (E, bool, error)) func(context.Context, ID) (E, error) {
	return func(ctx context.Context, id ID) (E, error) {
		e, ok, err := find(ctx, id)
		if err != nil {
			var zero E
			return zero, err
		}
		if !ok {
			var zero E
			return zero, Fail(CodeDoesNotExist, id)
		}
		return e, nil
	}
}

// ResolveAll turns a list of ids into entities for use with Map. find returns
// the entities that exist (in any order); idOf extracts an entity's id. Every
// missing id is reported in a single CodeDoesNotExistList failure, and the
// resolved entities keep the order of ids.
func ResolveAll[ID comparable, E any](
	find func(ctx context.Context, ids []ID) ([]E, error),
	idOf func(E) ID,
) func(context.Context, []ID) ([]E, error) {
	return func(ctx context.Context, ids []ID) ([]E, error) {
		if len(ids) == 0 {
			return []E{}, nil
		}

		entities, err := find(ctx, ids)
		if err != nil {
			return nil, err
		}

		byID := make(map[ID]E, len(entities))
		for _, e := range entities {
			byID[idOf(e)] = e
		}

		out := make([]E, 0, len(ids))
		var missing []string
		for _, id := range ids {
			e, ok := byID[id]
			if !ok {
				missing = append(missing, fmt.Sprint(id))
				continue
			}
			out = append(out, e)
		}
		if len(missing) > 0 {
			return nil, Fail(CodeDoesNotExistList, strings.Join(missing, ", "))
		}
		return out, nil
	}
}
