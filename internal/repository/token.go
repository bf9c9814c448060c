package repository

import (
	"context"
	"fmt"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository/dao"
)

var (
	ErrTokenNotFound       = dao.ErrTokenNotFound
	ErrTokenUsed           = dao.ErrTokenUsed
	ErrTokenClaimedByOther = dao.ErrTokenClaimedByOther
)

type TokenDAO interface {
	FindByToken(ctx context.Context, token string) (dao.FinalToken, error)
	Redeem(ctx context.Context, token string, category domain.Category, candidateID uint, subjectID string) error
	ClaimReward(ctx context.Context, token, subjectID string) (string, bool, error)
	ReplaceAll(ctx context.Context, tokens []dao.FinalToken) error
	CountTokens(ctx context.Context) (int64, error)
}

type TokenRepository struct {
	dao TokenDAO
}

func NewTokenRepository(dao TokenDAO) *TokenRepository {
	return &TokenRepository{
		dao: dao,
	}
}

func (r *TokenRepository) FindByToken(ctx context.Context, token string) (domain.FinalToken, error) {
	found, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.FinalToken{}, fmt.Errorf("r.dao.FindByToken -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TokenRepository) Redeem(ctx context.Context, token string, category domain.Category, candidateID uint, subjectID string) error {
	if err := r.dao.Redeem(ctx, token, category, candidateID, subjectID); err != nil {
		return fmt.Errorf("r.dao.Redeem -> %w", err)
	}

	return nil
}

func (r *TokenRepository) ClaimReward(ctx context.Context, token, subjectID string) (string, bool, error) {
	reward, already, err := r.dao.ClaimReward(ctx, token, subjectID)
	if err != nil {
		return "", false, fmt.Errorf("r.dao.ClaimReward -> %w", err)
	}

	return reward, already, nil
}

// Provision replaces the whole token registry with a fresh batch of
// (token, reward value) pairs.
func (r *TokenRepository) Provision(ctx context.Context, tokens []domain.FinalToken) error {
	rows := make([]dao.FinalToken, len(tokens))
	for i, t := range tokens {
		rows[i] = dao.FinalToken{
			Token:       t.Token,
			RewardValue: t.RewardValue,
		}
	}

	if err := r.dao.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.ReplaceAll -> %w", err)
	}

	return nil
}

func (r *TokenRepository) CountTokens(ctx context.Context) (int64, error) {
	count, err := r.dao.CountTokens(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountTokens -> %w", err)
	}

	return count, nil
}

func (r *TokenRepository) daoToDomain(t dao.FinalToken) domain.FinalToken {
	return domain.FinalToken{
		Token:       t.Token,
		RewardValue: t.RewardValue,
		King: domain.TokenSlot{
			Used:        t.UsedForKing,
			UsedBy:      t.UsedByKing,
			UsedAt:      t.UsedAtKing,
			CandidateID: t.CandidateKing,
		},
		Queen: domain.TokenSlot{
			Used:        t.UsedForQueen,
			UsedBy:      t.UsedByQueen,
			UsedAt:      t.UsedAtQueen,
			CandidateID: t.CandidateQueen,
		},
		Lantern: domain.TokenSlot{
			Used:        t.UsedForLantern,
			UsedBy:      t.UsedByLantern,
			UsedAt:      t.UsedAtLantern,
			CandidateID: t.CandidateLantern,
		},
		Reward: domain.TokenSlot{
			Used:   t.UsedForReward,
			UsedBy: t.UsedByReward,
			UsedAt: t.UsedAtReward,
		},
	}
}
