package service

import (
	"context"
	"fmt"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository"
)

var (
	ErrMalformedToken      = domain.ErrMalformedToken
	ErrTokenNotFound       = repository.ErrTokenNotFound
	ErrTokenUsed           = repository.ErrTokenUsed
	ErrTokenClaimedByOther = repository.ErrTokenClaimedByOther
)

type TokenRepository interface {
	FindByToken(ctx context.Context, token string) (domain.FinalToken, error)
	Redeem(ctx context.Context, token string, category domain.Category, candidateID uint, subjectID string) error
	ClaimReward(ctx context.Context, token, subjectID string) (string, bool, error)
}

type FinalCandidateRepository interface {
	ListFinal(ctx context.Context, category domain.Category) ([]domain.FinalCandidate, error)
}

type FinalService struct {
	repo          TokenRepository
	candidateRepo FinalCandidateRepository
}

func NewFinalService(repo TokenRepository, candidateRepo FinalCandidateRepository) *FinalService {
	return &FinalService{
		repo:          repo,
		candidateRepo: candidateRepo,
	}
}

// CastFinalVote redeems one category slot of a token. Token format
// is rejected before any store access. Reward redemptions are a
// terminal branch inside the repository and never touch candidates.
func (s *FinalService) CastFinalVote(ctx context.Context, subjectID, rawToken string, category domain.Category, candidateID uint) error {
	token, err := domain.NormalizeToken(rawToken)
	if err != nil {
		return err
	}

	if !category.IsRedeemable() {
		return ErrInvalidCategory
	}

	if err := s.repo.Redeem(ctx, token, category, candidateID, subjectID); err != nil {
		return fmt.Errorf("s.repo.Redeem -> %w", err)
	}

	return nil
}

// ClaimReward redeems the reward slot and returns the reward value.
// The original claimant may call again and gets the same value back
// with no new writes; the second return reports that case.
func (s *FinalService) ClaimReward(ctx context.Context, subjectID, rawToken string) (string, bool, error) {
	token, err := domain.NormalizeToken(rawToken)
	if err != nil {
		return "", false, err
	}

	reward, already, err := s.repo.ClaimReward(ctx, token, subjectID)
	if err != nil {
		return "", false, fmt.Errorf("s.repo.ClaimReward -> %w", err)
	}

	return reward, already, nil
}

// TokenStatus reports which category slots a token has already
// spent, so the final page can grey them out.
func (s *FinalService) TokenStatus(ctx context.Context, rawToken string) (domain.FinalToken, error) {
	token, err := domain.NormalizeToken(rawToken)
	if err != nil {
		return domain.FinalToken{}, err
	}

	found, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return domain.FinalToken{}, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	return found, nil
}

// FinalCandidates lists the final-round kings and queens.
func (s *FinalService) FinalCandidates(ctx context.Context) ([]domain.FinalCandidate, []domain.FinalCandidate, error) {
	kings, err := s.candidateRepo.ListFinal(ctx, domain.CategoryKing)
	if err != nil {
		return nil, nil, fmt.Errorf("s.candidateRepo.ListFinal -> %w", err)
	}

	queens, err := s.candidateRepo.ListFinal(ctx, domain.CategoryQueen)
	if err != nil {
		return nil, nil, fmt.Errorf("s.candidateRepo.ListFinal -> %w", err)
	}

	return kings, queens, nil
}
