package pro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

func TestRepository_GetByID(t *testing.T) {
	repo := NewRepository(Seed())

	p, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "Robert Fox", p.Name)
	assert.Equal(t, model.CategoryElectrician, p.Category)
	assert.Equal(t, 45.0, p.HourlyRate)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(Seed())

	_, err := repo.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrProNotFound)
}

func TestRepository_Create_HeadInsertion(t *testing.T) {
	repo := NewRepository(Seed())
	ctx := context.Background()

	err := repo.Create(ctx, &model.ProProfile{ID: "p_new", Name: "New Pro"})
	require.NoError(t, err)

	pros, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, pros)

	assert.Equal(t, "p_new", pros[0].ID)
}

func TestRepository_FilterByCategory(t *testing.T) {
	repo := NewRepository(Seed())

	pros, err := repo.FilterByCategory(context.Background(), model.CategoryElectrician)
	require.NoError(t, err)
	require.NotEmpty(t, pros)

	for _, p := range pros {
		assert.Equal(t, model.CategoryElectrician, p.Category)
	}
}

func TestRepository_FilterByText_CaseInsensitive(t *testing.T) {
	repo := NewRepository(Seed())

	pros, err := repo.FilterByText(context.Background(), "ROBERT")
	require.NoError(t, err)
	require.Len(t, pros, 1)

	assert.Equal(t, "p1", pros[0].ID)
}

func TestRepository_FilterByText_MatchesDescription(t *testing.T) {
	repo := NewRepository(Seed())

	pros, err := repo.FilterByText(context.Background(), "leaky tap")
	require.NoError(t, err)
	require.NotEmpty(t, pros)

	assert.Equal(t, model.CategoryPlumber, pros[0].Category)
}

func TestRepository_FilterByText_NoMatch(t *testing.T) {
	repo := NewRepository(Seed())

	pros, err := repo.FilterByText(context.Background(), "quantum chromodynamics")
	require.NoError(t, err)

	assert.Empty(t, pros)
}
