package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

// ExpectedTokenCount is the size of a full token batch. A mismatch
// is a warning, not a failure.
const ExpectedTokenCount = 350

type RewardTier struct {
	Count int
	Value string
}

// RewardDistribution assigns reward values to tokens in strict input
// order, top tier first, until tiers or tokens run out.
var RewardDistribution = []RewardTier{
	{Count: 2, Value: "30000MMK"},
	{Count: 5, Value: "10000MMK"},
	{Count: 10, Value: "5000MMK"},
	{Count: 20, Value: "3000MMK"},
	{Count: 37, Value: "2000MMK"},
	{Count: 276, Value: "1000MMK"},
}

type ProvisionTokenRepository interface {
	Provision(ctx context.Context, tokens []domain.FinalToken) error
}

type ProvisionService struct {
	repo ProvisionTokenRepository
}

func NewProvisionService(repo ProvisionTokenRepository) *ProvisionService {
	return &ProvisionService{
		repo: repo,
	}
}

// Provision clears the registry and loads the given tokens with
// reward values from RewardDistribution. Returns how many tokens
// were loaded.
func (s *ProvisionService) Provision(ctx context.Context, rawTokens []string) (int, error) {
	if len(rawTokens) != ExpectedTokenCount {
		zap.L().Warn("unexpected token count",
			zap.Int("expected", ExpectedTokenCount),
			zap.Int("got", len(rawTokens)))
	}

	tokens, err := AssignRewards(rawTokens)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Provision(ctx, tokens); err != nil {
		return 0, fmt.Errorf("s.repo.Provision -> %w", err)
	}

	return len(tokens), nil
}

// AssignRewards canonicalizes tokens and pairs them with reward
// values in distribution order. Tokens beyond the distribution are
// not loaded.
func AssignRewards(rawTokens []string) ([]domain.FinalToken, error) {
	var tokens []domain.FinalToken

	idx := 0
	for _, tier := range RewardDistribution {
		for i := 0; i < tier.Count; i++ {
			if idx >= len(rawTokens) {
				return tokens, nil
			}

			token, err := domain.NormalizeToken(rawTokens[idx])
			if err != nil {
				return nil, fmt.Errorf("token %d %q: %w", idx+1, rawTokens[idx], err)
			}

			tokens = append(tokens, domain.FinalToken{
				Token:       token,
				RewardValue: tier.Value,
			})
			idx++
		}
	}

	return tokens, nil
}
