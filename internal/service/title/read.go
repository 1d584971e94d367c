package title

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	repo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/title"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// GetTitle returns one work with its category, genres and derived rating.
// Open to anyone.
func (s *Service) GetTitle(ctx context.Context, id uuid.UUID) (*domain.Title, error) {
	t, err := s.titles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("title.GetTitle: %w", err)
	}

	return t, nil
}

// ListTitles returns works matching the filters. Open to anyone.
func (s *Service) ListTitles(ctx context.Context, input ListTitlesInput) ([]*domain.Title, error) {
	result, err := s.titles.List(ctx, repo.Filter{
		CategorySlug: input.CategorySlug,
		GenreSlug:    input.GenreSlug,
		Name:         input.Name,
		Year:         input.Year,
		Limit:        input.Limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("title.ListTitles: %w", err)
	}

	return result, nil
}
