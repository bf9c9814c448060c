package service

import (
	"context"
	"fmt"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository"
)

var (
	ErrInvalidCategory   = repository.ErrInvalidCategory
	ErrCandidateNotFound = repository.ErrCandidateNotFound
	ErrAlreadyVoted      = repository.ErrAlreadyVoted
)

type VoteRepository interface {
	CastVote(ctx context.Context, subjectID string, category domain.Category, candidateID uint) error
	FindBySubject(ctx context.Context, subjectID string) ([]domain.Vote, error)
}

type VotingService struct {
	repo VoteRepository
}

func NewVotingService(repo VoteRepository) *VotingService {
	return &VotingService{
		repo: repo,
	}
}

// CastVote records one identity-gated vote. The repository runs the
// check-increment-insert sequence atomically; a duplicate surfaces
// as ErrAlreadyVoted regardless of which step detects it.
func (s *VotingService) CastVote(ctx context.Context, subjectID string, category domain.Category, candidateID uint) error {
	if !category.IsVotable() {
		return ErrInvalidCategory
	}

	if err := s.repo.CastVote(ctx, subjectID, category, candidateID); err != nil {
		return fmt.Errorf("s.repo.CastVote -> %w", err)
	}

	return nil
}

// CastLanternVote is the lantern-only entrypoint. It shares the vote
// primitive with CastVote; the separate path exists because lantern
// voting has its own page and payload shape.
func (s *VotingService) CastLanternVote(ctx context.Context, subjectID string, lanternID uint) error {
	return s.CastVote(ctx, subjectID, domain.CategoryLantern, lanternID)
}

func (s *VotingService) GetVotes(ctx context.Context, subjectID string) ([]domain.Vote, error) {
	votes, err := s.repo.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySubject -> %w", err)
	}

	return votes, nil
}
