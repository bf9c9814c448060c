package service

import (
	"context"
	"fmt"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

type CandidateRepository interface {
	ListByName(ctx context.Context, category domain.Category) ([]domain.Candidate, error)
	ListByID(ctx context.Context, category domain.Category) ([]domain.Candidate, error)
	ListByVotes(ctx context.Context, category domain.Category) ([]domain.Candidate, error)
}

type CandidateService struct {
	repo CandidateRepository
}

func NewCandidateService(repo CandidateRepository) *CandidateService {
	return &CandidateService{
		repo: repo,
	}
}

// ListCandidates returns kings and queens ordered by name for the
// candidates page.
func (s *CandidateService) ListCandidates(ctx context.Context) ([]domain.Candidate, []domain.Candidate, error) {
	kings, err := s.repo.ListByName(ctx, domain.CategoryKing)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.ListByName -> %w", err)
	}

	queens, err := s.repo.ListByName(ctx, domain.CategoryQueen)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.ListByName -> %w", err)
	}

	return kings, queens, nil
}

func (s *CandidateService) ListLanterns(ctx context.Context) ([]domain.Candidate, error) {
	lanterns, err := s.repo.ListByID(ctx, domain.CategoryLantern)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByID -> %w", err)
	}

	return lanterns, nil
}

// Results returns kings and queens ordered by vote count, highest
// first. Plain reads; staleness within a request is fine.
func (s *CandidateService) Results(ctx context.Context) ([]domain.Candidate, []domain.Candidate, error) {
	kings, err := s.repo.ListByVotes(ctx, domain.CategoryKing)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.ListByVotes -> %w", err)
	}

	queens, err := s.repo.ListByVotes(ctx, domain.CategoryQueen)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.ListByVotes -> %w", err)
	}

	return kings, queens, nil
}
