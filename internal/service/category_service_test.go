package service

import (
	"testing"

	"eventhub/internal/model"
	"eventhub/internal/repository/mocks"
	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_AddCategory(t *testing.T) {
	t.Run("Success - add category", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		repo.EXPECT().Create(mock.Anything, "Concerts").Return(&model.Category{ID: 1, Name: "Concerts"}, nil).Once()

		category, err := svc.AddCategory(t.Context(), model.CategoryRequest{Name: "Concerts"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), category.ID)
	})

	t.Run("Failed - duplicate name", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		repo.EXPECT().Create(mock.Anything, "Concerts").Return(nil, apperrors.Conflict("Category name already exists")).Once()

		_, err := svc.AddCategory(t.Context(), model.CategoryRequest{Name: "Concerts"})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("Failed - delete while referenced", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		repo.EXPECT().Delete(mock.Anything, int64(1)).Return(apperrors.Conflict("The category is not empty")).Once()

		err := svc.DeleteCategory(t.Context(), 1)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestCategoryService_GetCategory(t *testing.T) {
	t.Run("Failed - unknown category", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		repo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, apperrors.NotFound("Category with id=9 was not found")).Once()

		_, err := svc.GetCategory(t.Context(), 9)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
