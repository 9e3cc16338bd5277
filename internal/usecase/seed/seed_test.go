package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type countFailStore struct {
	*repository.DocumentMemoryRepository
}

func (countFailStore) CountDocuments(context.Context, string) (int64, error) {
	return 0, errors.New("no reachable servers")
}

func newSeed(store document.Store) *Seed {
	return NewSeed(store, audit.NewDispatcher(audit.New(store)))
}

func TestFixturesAreValid(t *testing.T) {
	for _, in := range barbers() {
		assert.NoError(t, validators.Validate(in))
	}
	for _, in := range services() {
		assert.NoError(t, validators.Validate(in))
	}
	for _, in := range testimonials() {
		assert.NoError(t, validators.Validate(in))
	}
}

func TestSeed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewDocumentMemoryRepository("test")

	inserted, err := newSeed(store).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		models.CollectionBarber:      2,
		models.CollectionService:     3,
		models.CollectionTestimonial: 2,
		models.CollectionShopInfo:    1,
	}, inserted)

	svcs, err := document.GetDocuments[models.Service](ctx, store, models.CollectionService, 0)
	require.NoError(t, err)
	require.Len(t, svcs, 3)
	assert.Equal(t, "Skin Fade", svcs[0].Name)
	assert.Equal(t, 45, svcs[0].DurationMinutes)
	assert.Equal(t, 35.0, svcs[0].Price)
	assert.True(t, svcs[0].Popular)
	assert.False(t, svcs[2].Popular)

	barbers, err := document.GetDocuments[models.Barber](ctx, store, models.CollectionBarber, 0)
	require.NoError(t, err)
	require.Len(t, barbers, 2)
	assert.Equal(t, 8, barbers[0].ExperienceYears)
	assert.Equal(t, models.DefaultBarberRating, barbers[0].Rating)

	n, err := store.CountDocuments(ctx, models.CollectionAuditLog)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewDocumentMemoryRepository("test")
	uc := newSeed(store)

	_, err := uc.Execute(ctx)
	require.NoError(t, err)

	before := map[string]int64{}
	for _, c := range []string{models.CollectionBarber, models.CollectionService, models.CollectionTestimonial, models.CollectionShopInfo} {
		before[c], _ = store.CountDocuments(ctx, c)
	}

	inserted, err := uc.Execute(ctx)
	require.NoError(t, err)
	for c, n := range inserted {
		assert.Zero(t, n, c)
		after, _ := store.CountDocuments(ctx, c)
		assert.Equal(t, before[c], after, c)
	}

	audits, _ := store.CountDocuments(ctx, models.CollectionAuditLog)
	assert.EqualValues(t, 1, audits, "a no-op seed is not audited")
}

func TestSeed_LeavesPopulatedCollectionsAlone(t *testing.T) {
	ctx := context.Background()
	store := repository.NewDocumentMemoryRepository("test")

	_, err := store.CreateDocument(ctx, models.CollectionBarber, models.BarberInput{Name: "Rico"}.Record())
	require.NoError(t, err)

	inserted, err := newSeed(store).Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted[models.CollectionBarber])
	assert.Equal(t, 3, inserted[models.CollectionService])

	barbers, err := document.GetDocuments[models.Barber](ctx, store, models.CollectionBarber, 0)
	require.NoError(t, err)
	require.Len(t, barbers, 1)
	assert.Equal(t, "Rico", barbers[0].Name)
}

func TestSeed_Unconfigured(t *testing.T) {
	_, err := NewSeed(nil, nil).Execute(context.Background())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDatabaseNotConfigured))
}

func TestSeed_StoreFailure(t *testing.T) {
	store := countFailStore{repository.NewDocumentMemoryRepository("test")}

	_, err := NewSeed(store, nil).Execute(context.Background())
	assert.True(t, httperr.IsBusiness(err, CodeSeedFailed))
	assert.ErrorContains(t, err, "no reachable servers")
}
