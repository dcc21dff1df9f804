package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskapi/pkg/validator"
)

type tag struct {
	ID   uuid.UUID
	Name string
}

func tagID(t tag) uuid.UUID { return t.ID }

type tagStore map[uuid.UUID]tag

func (s tagStore) findAll(_ context.Context, ids []uuid.UUID) ([]tag, error) {
	var out []tag
	// reverse order on purpose: results must follow the requested order
	for i := len(ids) - 1; i >= 0; i-- {
		if t, ok := s[ids[i]]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s tagStore) find(_ context.Context, id uuid.UUID) (tag, bool, error) {
	t, ok := s[id]
	return t, ok, nil
}

func (s tagStore) exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s[id]
	return ok, nil
}

var errStoreDown = errors.New("store unavailable")

func TestExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	known := uuid.New()
	store := tagStore{known: {ID: known}}

	check := validator.Exists(store.exists)
	assert.NoError(t, check(ctx, known))

	unknown := uuid.New()
	f, ok := validator.AsFailure(check(ctx, unknown))
	require.True(t, ok)
	assert.Equal(t, validator.CodeDoesNotExist, f.Code)
	assert.Equal(t, []any{unknown}, f.Args)

	t.Run("lookup errors are faults", func(t *testing.T) {
		failing := validator.Exists(func(context.Context, uuid.UUID) (bool, error) { return false, errStoreDown })
		err := failing(ctx, known)
		assert.ErrorIs(t, err, errStoreDown)
		assert.False(t, validator.IsFailure(err))
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	known := uuid.New()
	store := tagStore{known: {ID: known, Name: "home"}}

	rule := validator.Map(validator.UUID, validator.Resolve(store.find))
	got, err := rule(ctx, known.String())
	require.NoError(t, err)
	assert.Equal(t, "home", got.Name)

	_, err = rule(ctx, uuid.NewString())
	f, ok := validator.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, validator.CodeDoesNotExist, f.Code)
}

func TestResolveAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	store := tagStore{a: {ID: a, Name: "a"}, b: {ID: b, Name: "b"}}
	rule := validator.Map(validator.UUIDList, validator.ResolveAll(store.findAll, tagID))

	t.Run("keeps requested order", func(t *testing.T) {
		tags, err := rule(ctx, a.String()+","+b.String())
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "a", tags[0].Name)
		assert.Equal(t, "b", tags[1].Name)
	})

	t.Run("empty list skips lookup", func(t *testing.T) {
		resolve := validator.ResolveAll(func(context.Context, []uuid.UUID) ([]tag, error) {
			t.Fatal("lookup must not be called")
			return nil, nil
		}, tagID)
		tags, err := resolve(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("reports every missing id", func(t *testing.T) {
		x, y := uuid.New(), uuid.New()
		_, err := rule(ctx, x.String()+","+a.String()+","+y.String())
		f, ok := validator.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, validator.CodeDoesNotExistList, f.Code)
		assert.Equal(t, []any{x.String() + ", " + y.String()}, f.Args)
	})

	t.Run("lookup errors are faults", func(t *testing.T) {
		resolve := validator.ResolveAll(func(context.Context, []uuid.UUID) ([]tag, error) {
			return nil, errStoreDown
		}, tagID)
		_, err := resolve(ctx, []uuid.UUID{a})
		assert.ErrorIs(t, err, errStoreDown)
	})
}
