package forum

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService handles topic category management
type CategoryService struct {
	categoryRepo forum.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo forum.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, logger: logger}
}

// Create adds a new category (admin)
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*CategoryInfo, error) {
	category, err := forum.NewCategory(input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsBySlug(ctx, category.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SLUG_TAKEN", "A category with this name already exists")
	}

	category.SetSortOrder(input.SortOrder)

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Error("Failed to save category", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}

	s.logger.Info("Category created", zap.String("slug", category.Slug))

	info := ToCategoryInfo(category)
	return &info, nil
}

// Update edits a category (admin)
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*CategoryInfo, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousSlug := category.Slug
	if err := category.Update(input.Name, input.Description); err != nil {
		return nil, err
	}

	if category.Slug != previousSlug {
		exists, err := s.categoryRepo.ExistsBySlug(ctx, category.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("SLUG_TAKEN", "A category with this name already exists")
		}
	}

	category.SetSortOrder(input.SortOrder)

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Error("Failed to save category update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
	}

	info := ToCategoryInfo(category)
	return &info, nil
}

// List returns all categories in display order. activeOnly hides
// deactivated ones for public pickers.
func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]CategoryInfo, error) {
	categories, err := s.categoryRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	infos := make([]CategoryInfo, len(categories))
	for i := range categories {
		infos[i] = ToCategoryInfo(&categories[i])
	}
	return infos, nil
}

// GetBySlug resolves a category by its slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*CategoryInfo, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	info := ToCategoryInfo(category)
	return &info, nil
}

// SetActive toggles a category's visibility in pickers (admin)
func (s *CategoryService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*CategoryInfo, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		err = category.Activate()
	} else {
		err = category.Deactivate()
	}
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Error("Failed to save category state", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
	}

	info := ToCategoryInfo(category)
	return &info, nil
}
