package service

import (
	"context"

	"eventhub/internal/model"
	"eventhub/internal/repository"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

type CategoryService interface {
	AddCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	GetCategories(ctx context.Context, page model.PageRequest) ([]*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
}

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.Create(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	logger.WithComponent("service").Info("category created", zap.Int64("category_id", category.ID))
	return category, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (*model.Category, error) {
	return s.categoryRepo.Update(ctx, id, req.Name)
}

// DeleteCategory fails with a conflict while events still reference the category.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.WithComponent("service").Info("category deleted", zap.Int64("category_id", id))
	return nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context, page model.PageRequest) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx, page)
}

func (s *CategoryServiceImpl) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}
