package services

import (
	"context"

	"eon-tracker.com/eon-tracker/internal/clock"
	model "eon-tracker.com/eon-tracker/internal/models"
	repository "eon-tracker.com/eon-tracker/internal/repositories"
)

type DropService struct {
	repo  *repository.DropRepository
	clock clock.Clock
}

func NewDropService(repo *repository.DropRepository, clk clock.Clock) *DropService {
	return &DropService{
		repo:  repo,
		clock: clk,
	}
}

// CreateDrop requires both title and content; an incomplete submission is
// ignored without error, like empty task titles.
func (s *DropService) CreateDrop(ctx context.Context, title, content string) (*model.Drop, error) {
	if title == "" || content == "" {
		return nil, nil
	}
	return s.repo.CreateDrop(ctx, title, content, clock.Timestamp(s.clock.Now()))
}

func (s *DropService) GetDrop(ctx context.Context, id int64) (*model.Drop, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DropService) ListDrops(ctx context.Context) ([]model.Drop, error) {
	return s.repo.List(ctx)
}

func (s *DropService) DeleteDrop(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
