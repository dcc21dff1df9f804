package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	defaultListLimit     = 50
	maxListLimit         = 200
)

var (
	titleRule       = validator.Chain(validator.Pre(validator.NotEmpty, sanitizer.SingleLine), validator.MaxLength(maxTitleLength))
	descriptionRule = validator.Chain(validator.Pre(validator.String, sanitizer.Trim), validator.MaxLength(maxDescriptionLength))
	priorityRule    = validator.OneOf(Priorities...)
	limitRule       = validator.Chain(validator.Int, validator.Positive[int64], validator.Between[int64](1, maxListLimit))
	idRule          = validator.Chain(validator.UUID, validator.NotNilUUID)
)

// ownerRules holds the rules that consult repositories on behalf of one owner.
type ownerRules struct {
	project validator.Rule[uuid.UUID]
	tags    validator.Rule[[]Tag]
	dueAt   validator.Rule[time.Time]
}

func (h *Handler) rulesFor(ownerID uuid.UUID) ownerRules {
	projectExists := func(ctx context.Context, id uuid.UUID) (bool, error) {
		return h.projects.ExistsByID(ctx, ownerID, id)
	}
	findTags := func(ctx context.Context, ids []uuid.UUID) ([]Tag, error) {
		return h.tags.FindAllByID(ctx, ownerID, ids)
	}
	return ownerRules{
		project: validator.Chain(idRule, validator.Exists(projectExists)),
		tags:    validator.Map(validator.UUIDList, validator.ResolveAll(findTags, tagID)),
		dueAt:   validator.Chain(validator.DateTime, validator.PresentOrFuture(h.now)),
	}
}

func tagID(t Tag) uuid.UUID { return t.ID }

func tagIDs(tags []Tag) []uuid.UUID {
	ids := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}
