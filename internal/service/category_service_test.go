package service

import (
	"context"
	"errors"
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateAndGet(t *testing.T) {
	categories, _, _ := newServices(t)
	ctx := context.Background()

	created, err := categories.Create(ctx, model.CategoryRequest{Name: "Tools", Description: "Hand tools"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := categories.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tools", got.Name)
	assert.Equal(t, "Hand tools", got.Description)
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	categories, _, _ := newServices(t)
	ctx := context.Background()

	_, err := categories.Create(ctx, model.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)

	_, err = categories.Create(ctx, model.CategoryRequest{Name: "Tools"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "category", svcErr.Entity)
	assert.Equal(t, "name", svcErr.Field)
}

func TestCategoryCreateValidation(t *testing.T) {
	categories, _, _ := newServices(t)
	ctx := context.Background()

	_, err := categories.Create(ctx, model.CategoryRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrValidation)

	// A bad payload must not cost a write.
	listed, err := categories.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCategoryGetNotFound(t *testing.T) {
	categories, _, _ := newServices(t)

	_, err := categories.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryUpdatePartial(t *testing.T) {
	categories, _, _ := newServices(t)
	ctx := context.Background()

	created, err := categories.Create(ctx, model.CategoryRequest{Name: "Tools", Description: "old"})
	require.NoError(t, err)

	// Only description present: name must survive.
	updated, err := categories.Update(ctx, created.ID, model.CategoryPatch{Description: ptr("new")})
	require.NoError(t, err)
	assert.Equal(t, "Tools", updated.Name)
	assert.Equal(t, "new", updated.Description)
}

func TestCategoryUpdateNameUniqueness(t *testing.T) {
	categories, _, _ := newServices(t)
	ctx := context.Background()

	_, err := categories.Create(ctx, model.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)
	second, err := categories.Create(ctx, model.CategoryRequest{Name: "Hardware"})
	require.NoError(t, err)

	_, err = categories.Update(ctx, second.ID, model.CategoryPatch{Name: ptr("Tools")})
	assert.ErrorIs(t, err, ErrConflict)

	// Re-submitting the current name is not a collision.
	updated, err := categories.Update(ctx, second.ID, model.CategoryPatch{Name: ptr("Hardware")})
	require.NoError(t, err)
	assert.Equal(t, "Hardware", updated.Name)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	categories, _, _ := newServices(t)

	_, err := categories.Update(context.Background(), 99, model.CategoryPatch{Name: ptr("Anything")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDeleteGuard(t *testing.T) {
	categories, _, products := newServices(t)
	ctx := context.Background()

	category, err := categories.Create(ctx, model.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)

	req := productRequest("T-001", "Hammer")
	req.CategoryID = &category.ID
	product, err := products.Create(ctx, req)
	require.NoError(t, err)

	err = categories.Delete(ctx, category.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "has associated products")

	// Removing the referencing product lifts the guard.
	require.NoError(t, products.Delete(ctx, product.ID))
	require.NoError(t, categories.Delete(ctx, category.ID))

	_, err = categories.Get(ctx, category.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	categories, _, _ := newServices(t)

	err := categories.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryListPagination(t *testing.T) {
	categories, _, _ := newServices(t)
	ctx := context.Background()

	names := []string{"Tools", "Hardware", "Paint", "Garden", "Electrical"}
	for _, name := range names {
		_, err := categories.Create(ctx, model.CategoryRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := categories.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Hardware", page[0].Name)
	assert.Equal(t, "Paint", page[1].Name)
}

func TestCategoryErrorKinds(t *testing.T) {
	// Sentinels stay distinct so the boundary layer can map them.
	assert.False(t, errors.Is(ErrConflict, ErrNotFound))
	assert.False(t, errors.Is(ErrValidation, ErrConflict))
	assert.False(t, errors.Is(ErrStorage, ErrValidation))
}
