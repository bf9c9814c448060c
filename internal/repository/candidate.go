package repository

import (
	"context"
	"fmt"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository/dao"
)

var (
	ErrInvalidCategory   = dao.ErrInvalidCategory
	ErrCandidateNotFound = dao.ErrCandidateNotFound
)

type CandidateDAO interface {
	ListByName(ctx context.Context, category domain.Category) ([]dao.Candidate, error)
	ListByID(ctx context.Context, category domain.Category) ([]dao.Candidate, error)
	ListByVotes(ctx context.Context, category domain.Category) ([]dao.Candidate, error)
	ListFinal(ctx context.Context, category domain.Category) ([]dao.Candidate, error)
}

type CandidateRepository struct {
	dao CandidateDAO
}

func NewCandidateRepository(dao CandidateDAO) *CandidateRepository {
	return &CandidateRepository{
		dao: dao,
	}
}

func (r *CandidateRepository) ListByName(ctx context.Context, category domain.Category) ([]domain.Candidate, error) {
	found, err := r.dao.ListByName(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByName -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CandidateRepository) ListByID(ctx context.Context, category domain.Category) ([]domain.Candidate, error) {
	found, err := r.dao.ListByID(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CandidateRepository) ListByVotes(ctx context.Context, category domain.Category) ([]domain.Candidate, error) {
	found, err := r.dao.ListByVotes(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByVotes -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CandidateRepository) ListFinal(ctx context.Context, category domain.Category) ([]domain.FinalCandidate, error) {
	found, err := r.dao.ListFinal(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListFinal -> %w", err)
	}

	candidates := make([]domain.FinalCandidate, len(found))
	for i, c := range found {
		candidates[i] = domain.FinalCandidate{
			ID:    c.ID,
			Name:  c.Name,
			Batch: c.Batch,
		}
	}

	return candidates, nil
}

func (r *CandidateRepository) daosToDomain(candidates []dao.Candidate) []domain.Candidate {
	result := make([]domain.Candidate, len(candidates))
	for i, c := range candidates {
		result[i] = domain.Candidate{
			ID:        c.ID,
			Name:      c.Name,
			Batch:     c.Batch,
			Bio:       c.Bio,
			ImagePath: c.ImagePath,
			VoteCount: c.VoteCount,
			CreatedAt: c.CreatedAt,
		}
	}
	return result
}
