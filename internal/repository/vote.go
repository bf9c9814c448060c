package repository

import (
	"context"
	"fmt"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository/dao"
)

var ErrAlreadyVoted = dao.ErrAlreadyVoted

type VoteDAO interface {
	CastVote(ctx context.Context, subjectID string, category domain.Category, candidateID uint) error
	FindBySubject(ctx context.Context, subjectID string) ([]dao.Vote, error)
}

type VoteRepository struct {
	dao VoteDAO
}

func NewVoteRepository(dao VoteDAO) *VoteRepository {
	return &VoteRepository{
		dao: dao,
	}
}

func (r *VoteRepository) CastVote(ctx context.Context, subjectID string, category domain.Category, candidateID uint) error {
	if err := r.dao.CastVote(ctx, subjectID, category, candidateID); err != nil {
		return fmt.Errorf("r.dao.CastVote -> %w", err)
	}

	return nil
}

func (r *VoteRepository) FindBySubject(ctx context.Context, subjectID string) ([]domain.Vote, error) {
	found, err := r.dao.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySubject -> %w", err)
	}

	votes := make([]domain.Vote, len(found))
	for i, v := range found {
		votes[i] = domain.Vote{
			ID:          v.ID,
			SubjectID:   v.SubjectID,
			Category:    domain.Category(v.Category),
			CandidateID: v.CandidateID,
			CreatedAt:   v.CreatedAt,
		}
	}

	return votes, nil
}
