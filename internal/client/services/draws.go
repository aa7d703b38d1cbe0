package services

import (
	"context"
	"sort"

	"github.com/lotterich/cli/internal/client/api"
	"github.com/lotterich/cli/internal/client/models"
)

// DrawService defines draw-result operations for the CLI.
//
// Contract:
//   - Latest: most recent published draw; ok=false when none exists yet.
//   - List: full history, newest first.
//   - the Admin* methods mirror List/Add/Update/Delete for administrators
//     and refetch the history after each mutation.
//
// All methods must honor context cancellation/timeouts.
type DrawService interface {
	Latest(ctx context.Context) (models.Draw, bool, error)
	List(ctx context.Context) ([]models.Draw, error)
	AdminList(ctx context.Context) ([]models.Draw, error)
	AdminAdd(ctx context.Context, d models.Draw) ([]models.Draw, error)
	AdminUpdate(ctx context.Context, id string, d models.Draw) ([]models.Draw, error)
	AdminDelete(ctx context.Context, id string) ([]models.Draw, error)
}

type drawService struct {
	api api.Client
}

// NewDrawService constructs a DrawService bound to the given API client.
func NewDrawService(client api.Client) DrawService {
	return &drawService{api: client}
}

func sortDrawsDesc(draws []models.Draw) []models.Draw {
	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].Date > draws[j].Date
	})
	return draws
}

// Latest returns the most recent draw. The backend answers null before the
// first draw is published, which decodes to a zero record.
func (s *drawService) Latest(ctx context.Context) (models.Draw, bool, error) {
	d, err := s.api.LatestDraw(ctx)
	if err != nil {
		return models.Draw{}, false, err
	}
	if d.Date == "" {
		return models.Draw{}, false, nil
	}
	return d, true, nil
}

func (s *drawService) List(ctx context.Context) ([]models.Draw, error) {
	draws, err := s.api.ListDraws(ctx)
	if err != nil {
		return nil, err
	}
	return sortDrawsDesc(draws), nil
}

func (s *drawService) AdminList(ctx context.Context) ([]models.Draw, error) {
	draws, err := s.api.AdminListDraws(ctx)
	if err != nil {
		return nil, err
	}
	return sortDrawsDesc(draws), nil
}

func (s *drawService) AdminAdd(ctx context.Context, d models.Draw) ([]models.Draw, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if _, err := s.api.AdminCreateDraw(ctx, d); err != nil {
		return nil, err
	}
	return s.AdminList(ctx)
}

func (s *drawService) AdminUpdate(ctx context.Context, id string, d models.Draw) ([]models.Draw, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.api.AdminUpdateDraw(ctx, id, d); err != nil {
		return nil, err
	}
	return s.AdminList(ctx)
}

func (s *drawService) AdminDelete(ctx context.Context, id string) ([]models.Draw, error) {
	if err := s.api.AdminDeleteDraw(ctx, id); err != nil {
		return nil, err
	}
	return s.AdminList(ctx)
}
