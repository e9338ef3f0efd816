package repository_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	infraRepo "storefront/internal/infra/repository"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMemory_ListProducts_OnlyActiveInOrder(t *testing.T) {
	r := infraRepo.NewCatalogMemoryRepository([]model.Product{
		{ID: "a", IsActive: true},
		{ID: "b", IsActive: false},
		{ID: "c", IsActive: true},
	}, nil)

	got, err := r.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

// postgres側と同じくposition順、同じpositionは渡された順
func TestCatalogMemory_OrdersByPosition(t *testing.T) {
	r := infraRepo.NewCatalogMemoryRepository([]model.Product{
		{ID: "c", IsActive: true, Position: 3},
		{ID: "a", IsActive: true, Position: 1},
		{ID: "b2", IsActive: true, Position: 2},
		{ID: "b1", IsActive: true, Position: 2},
	}, []model.Category{
		{ID: "food", Name: "Food", Position: 2},
		{ID: "home", Name: "Home", Position: 1},
	})

	ps, err := r.ListProducts(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "b2", "b1", "c"}, ids)

	cats, err := r.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "home", cats[0].ID)
	assert.Equal(t, "food", cats[1].ID)
}

func TestSampleCatalog_PositionsFollowListOrder(t *testing.T) {
	for i, p := range infraRepo.SampleProducts() {
		assert.Equal(t, i+1, p.Position, p.ID)
	}
	for i, c := range infraRepo.SampleCategories() {
		assert.Equal(t, i+1, c.Position, c.ID)
	}
}

func TestCatalogMemory_FindProductByID(t *testing.T) {
	r := infraRepo.NewCatalogMemoryRepository([]model.Product{
		{ID: "a", IsActive: true},
		{ID: "hidden", IsActive: false},
	}, nil)

	p, err := r.FindProductByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.ID)

	_, err = r.FindProductByID(context.Background(), "hidden")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = r.FindProductByID(context.Background(), "zzz")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSampleCatalog_CategoryCountsMatchProducts(t *testing.T) {
	products := infraRepo.SampleProducts()
	cats := infraRepo.SampleCategories()

	total := 0
	for _, c := range cats {
		total += c.ProductCount
	}
	assert.Equal(t, len(products), total)

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Images, p.ID)
	}
}

func TestUserMemory_CreateFindUpdate(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewUserMemoryRepository()

	u := &model.User{ID: "u1", Email: "Abebe@Example.com", FirstName: "Abebe"}
	require.NoError(t, r.Create(ctx, u))

	assert.ErrorIs(t, r.Create(ctx, &model.User{ID: "u2", Email: "abebe@example.com"}), repo.ErrDuplicateEmail)

	found, err := r.FindByEmail(ctx, "  abebe@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)

	found.LastName = "Bikila"
	require.NoError(t, r.Update(ctx, found))

	again, _ := r.FindByEmail(ctx, "abebe@example.com")
	assert.Equal(t, "Bikila", again.LastName)

	_, err = r.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)

	byID, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bikila", byID.LastName)

	_, err = r.FindByID(ctx, "u9")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}
