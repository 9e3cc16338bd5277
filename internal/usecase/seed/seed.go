package seed

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

const CodeSeedFailed = "failed_to_seed"

// schema is satisfied by every seedable input type.
type schema[R any] interface {
	Record() R
}

type collectionSeed struct {
	collection string
	records    func() ([]any, error)
}

type Seed struct {
	store document.Store
	audit *audit.Dispatcher
}

func NewSeed(store document.Store, audit *audit.Dispatcher) *Seed {
	return &Seed{store: store, audit: audit}
}

// Execute fills each seedable collection with the demo documents, skipping
// any collection that already holds data. It returns the number of
// documents inserted per collection.
func (uc *Seed) Execute(ctx context.Context) (map[string]int, error) {
	if uc.store == nil {
		return nil, httperr.ErrBusiness(httperr.CodeDatabaseNotConfigured)
	}

	plan := []collectionSeed{
		{models.CollectionBarber, normalize[models.Barber](barbers())},
		{models.CollectionService, normalize[models.Service](services())},
		{models.CollectionTestimonial, normalize[models.Testimonial](testimonials())},
		{models.CollectionShopInfo, normalize[models.ShopInfo]([]models.ShopInfoInput{{}})},
	}

	inserted := make(map[string]int, len(plan))
	for _, step := range plan {
		n, err := uc.seedCollection(ctx, step)
		if err != nil {
			return inserted, httperr.WrapBusiness(CodeSeedFailed, err)
		}
		inserted[step.collection] = n
	}

	total := 0
	for _, n := range inserted {
		total += n
	}
	if total > 0 {
		meta := make(map[string]any, len(inserted))
		for k, v := range inserted {
			meta[k] = v
		}
		uc.audit.Dispatch(ctx, audit.Event{
			Action:   "content_seeded",
			Entity:   "seed",
			Metadata: meta,
		})
	}

	return inserted, nil
}

func (uc *Seed) seedCollection(ctx context.Context, step collectionSeed) (int, error) {
	count, err := uc.store.CountDocuments(ctx, step.collection)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	records, err := step.records()
	if err != nil {
		return 0, err
	}

	for i, rec := range records {
		if _, err := uc.store.CreateDocument(ctx, step.collection, rec); err != nil {
			return i, err
		}
	}
	return len(records), nil
}

// normalize validates the fixtures and applies defaults.
func normalize[R any, S schema[R]](inputs []S) func() ([]any, error) {
	return func() ([]any, error) {
		out := make([]any, 0, len(inputs))
		for _, in := range inputs {
			if err := validators.Validate(in); err != nil {
				return nil, fmt.Errorf("invalid seed fixture: %w", err)
			}
			out = append(out, in.Record())
		}
		return out, nil
	}
}
