package title

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// CreateTitle registers a new work with optional category and genres. Admin
// only. The (name, year) pair must be unique across the catalog.
func (s *Service) CreateTitle(ctx context.Context, input CreateTitleInput) (*domain.Title, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceTitle}); err != nil {
		return nil, err
	}

	if err := input.Validate(s.minYear, s.now()); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	taken, err := s.titles.ExistsByNameYear(ctx, name, input.Year, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("title.CreateTitle: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("title %q (%d): %w", name, input.Year, domain.ErrAlreadyExists)
	}

	category, err := s.resolveCategory(ctx, input.CategorySlug)
	if err != nil {
		return nil, fmt.Errorf("title.CreateTitle: %w", err)
	}
	genres, err := s.resolveGenres(ctx, input.GenreSlugs)
	if err != nil {
		return nil, fmt.Errorf("title.CreateTitle: %w", err)
	}

	t := &domain.Title{
		ID:          uuid.New(),
		Name:        name,
		Year:        input.Year,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Genres:      genres,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.titles.Create(txCtx, t); createErr != nil {
			return createErr
		}
		return s.titles.SetGenres(txCtx, t.ID, genreIDs(genres))
	})
	if err != nil {
		return nil, fmt.Errorf("title.CreateTitle: %w", err)
	}

	s.log.InfoContext(ctx, "title created",
		slog.String("actor_id", actor.ID.String()),
		slog.String("title_id", t.ID.String()),
		slog.String("name", t.Name),
	)

	return t, nil
}

// UpdateTitle applies a partial update to a work. Admin only.
func (s *Service) UpdateTitle(ctx context.Context, input UpdateTitleInput) (*domain.Title, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionUpdate, domain.Resource{Kind: domain.ResourceTitle}); err != nil {
		return nil, err
	}

	if err := input.Validate(s.minYear, s.now()); err != nil {
		return nil, err
	}

	current, err := s.titles.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("title.UpdateTitle: %w", err)
	}

	if input.Name != nil {
		current.Name = strings.TrimSpace(*input.Name)
	}
	if input.Year != nil {
		current.Year = *input.Year
	}
	if input.Description != nil {
		current.Description = strings.TrimSpace(*input.Description)
	}
	if input.CategorySlug != nil {
		category, resolveErr := s.resolveCategory(ctx, input.CategorySlug)
		if resolveErr != nil {
			return nil, fmt.Errorf("title.UpdateTitle: %w", resolveErr)
		}
		current.Category = category
	}
	if input.GenreSlugs != nil {
		genres, resolveErr := s.resolveGenres(ctx, input.GenreSlugs)
		if resolveErr != nil {
			return nil, fmt.Errorf("title.UpdateTitle: %w", resolveErr)
		}
		current.Genres = genres
	}

	if input.Name != nil || input.Year != nil {
		taken, existsErr := s.titles.ExistsByNameYear(ctx, current.Name, current.Year, current.ID)
		if existsErr != nil {
			return nil, fmt.Errorf("title.UpdateTitle: %w", existsErr)
		}
		if taken {
			return nil, fmt.Errorf("title %q (%d): %w", current.Name, current.Year, domain.ErrAlreadyExists)
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.titles.Update(txCtx, current); updateErr != nil {
			return updateErr
		}
		if input.GenreSlugs == nil {
			return nil
		}
		return s.titles.SetGenres(txCtx, current.ID, genreIDs(current.Genres))
	})
	if err != nil {
		return nil, fmt.Errorf("title.UpdateTitle: %w", err)
	}

	s.log.InfoContext(ctx, "title updated",
		slog.String("actor_id", actor.ID.String()),
		slog.String("title_id", current.ID.String()),
	)

	return current, nil
}

// DeleteTitle removes a work and, through the store, its reviews and their
// comments. Admin only.
func (s *Service) DeleteTitle(ctx context.Context, id uuid.UUID) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return err
	}
	if err := domain.Require(actor, domain.ActionDelete, domain.Resource{Kind: domain.ResourceTitle}); err != nil {
		return err
	}

	if err := s.titles.Delete(ctx, id); err != nil {
		return fmt.Errorf("title.DeleteTitle: %w", err)
	}

	s.log.InfoContext(ctx, "title deleted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("title_id", id.String()),
	)

	return nil
}

// resolveCategory maps an optional slug to its category.
// Returns domain.ErrNotFound when the slug is unknown.
func (s *Service) resolveCategory(ctx context.Context, slug *string) (*domain.Category, error) {
	if slug == nil || *slug == "" {
		return nil, nil
	}
	return s.catalog.GetCategoryBySlug(ctx, *slug)
}

// resolveGenres maps slugs to genres, requiring every slug to resolve.
func (s *Service) resolveGenres(ctx context.Context, slugs []string) ([]domain.Genre, error) {
	if len(slugs) == 0 {
		return []domain.Genre{}, nil
	}

	genres, err := s.catalog.GetGenresBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(genres))
	for _, g := range genres {
		known[g.Slug] = true
	}
	for _, slug := range slugs {
		if !known[slug] {
			return nil, fmt.Errorf("genre %s: %w", slug, domain.ErrNotFound)
		}
	}

	return genres, nil
}

func genreIDs(genres []domain.Genre) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}
