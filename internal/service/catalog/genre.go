package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// ListGenres returns genres matching the search, for anyone.
func (s *Service) ListGenres(ctx context.Context, input ListInput) ([]domain.Genre, error) {
	input.normalize()

	result, err := s.catalog.ListGenres(ctx, input.Search, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListGenres: %w", err)
	}

	return result, nil
}

// CreateGenre creates a new genre. Admin only.
func (s *Service) CreateGenre(ctx context.Context, input EntityInput) (*domain.Genre, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceGenre}); err != nil {
		return nil, err
	}

	input.normalize()
	if err := validateNameSlug(input.Name, input.Slug); err != nil {
		return nil, err
	}

	genre, err := s.catalog.CreateGenre(ctx, input.Name, input.Slug)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateGenre: %w", err)
	}

	s.log.InfoContext(ctx, "genre created",
		slog.String("actor_id", actor.ID.String()),
		slog.String("slug", genre.Slug),
	)

	return genre, nil
}

// DeleteGenre removes a genre by slug and unlinks it from titles. Admin only.
func (s *Service) DeleteGenre(ctx context.Context, slug string) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return err
	}
	if err := domain.Require(actor, domain.ActionDelete, domain.Resource{Kind: domain.ResourceGenre}); err != nil {
		return err
	}

	if err := s.catalog.DeleteGenreBySlug(ctx, slug); err != nil {
		return fmt.Errorf("catalog.DeleteGenre: %w", err)
	}

	s.log.InfoContext(ctx, "genre deleted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("slug", slug),
	)

	return nil
}
