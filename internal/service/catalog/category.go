package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// ListCategories returns categories matching the search, for anyone.
func (s *Service) ListCategories(ctx context.Context, input ListInput) ([]domain.Category, error) {
	input.normalize()

	result, err := s.catalog.ListCategories(ctx, input.Search, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCategories: %w", err)
	}

	return result, nil
}

// CreateCategory creates a new category. Admin only.
func (s *Service) CreateCategory(ctx context.Context, input EntityInput) (*domain.Category, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceCategory}); err != nil {
		return nil, err
	}

	input.normalize()
	if err := validateNameSlug(input.Name, input.Slug); err != nil {
		return nil, err
	}

	category, err := s.catalog.CreateCategory(ctx, input.Name, input.Slug)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("actor_id", actor.ID.String()),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// DeleteCategory removes a category by slug. Admin only. Titles that pointed
// at it keep a null category.
func (s *Service) DeleteCategory(ctx context.Context, slug string) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return err
	}
	if err := domain.Require(actor, domain.ActionDelete, domain.Resource{Kind: domain.ResourceCategory}); err != nil {
		return err
	}

	if err := s.catalog.DeleteCategoryBySlug(ctx, slug); err != nil {
		return fmt.Errorf("catalog.DeleteCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("slug", slug),
	)

	return nil
}
