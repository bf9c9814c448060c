package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

type fakeTokenRepo struct {
	found     domain.FinalToken
	foundErr  error
	findCalls []string

	redeemErr   error
	redeemCalls []redeemCall

	claimReward  string
	claimAlready bool
	claimErr     error
	claimCalls   []claimCall
}

type redeemCall struct {
	token       string
	category    domain.Category
	candidateID uint
	subjectID   string
}

type claimCall struct {
	token     string
	subjectID string
}

func (f *fakeTokenRepo) FindByToken(_ context.Context, token string) (domain.FinalToken, error) {
	f.findCalls = append(f.findCalls, token)
	return f.found, f.foundErr
}

func (f *fakeTokenRepo) Redeem(_ context.Context, token string, category domain.Category, candidateID uint, subjectID string) error {
	f.redeemCalls = append(f.redeemCalls, redeemCall{token: token, category: category, candidateID: candidateID, subjectID: subjectID})
	return f.redeemErr
}

func (f *fakeTokenRepo) ClaimReward(_ context.Context, token, subjectID string) (string, bool, error) {
	f.claimCalls = append(f.claimCalls, claimCall{token: token, subjectID: subjectID})
	return f.claimReward, f.claimAlready, f.claimErr
}

type fakeFinalCandidateRepo struct {
	byCategory map[domain.Category][]domain.FinalCandidate
	err        error
}

func (f *fakeFinalCandidateRepo) ListFinal(_ context.Context, category domain.Category) ([]domain.FinalCandidate, error) {
	return f.byCategory[category], f.err
}

func TestFinalServiceCastFinalVote(t *testing.T) {
	t.Run("canonicalizes the token before redeeming", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		err := svc.CastFinalVote(context.Background(), "uid-1", " ab12cd ", domain.CategoryKing, 5)

		require.NoError(t, err)
		require.Len(t, repo.redeemCalls, 1)
		assert.Equal(t, redeemCall{token: "AB12CD", category: domain.CategoryKing, candidateID: 5, subjectID: "uid-1"}, repo.redeemCalls[0])
	})

	t.Run("rejects a malformed token before any store access", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		err := svc.CastFinalVote(context.Background(), "uid-1", "short", domain.CategoryKing, 5)

		require.ErrorIs(t, err, ErrMalformedToken)
		assert.Empty(t, repo.redeemCalls)
	})

	t.Run("rejects a non-redeemable category", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		err := svc.CastFinalVote(context.Background(), "uid-1", "AB12CD", domain.Category("prince"), 5)

		require.ErrorIs(t, err, ErrInvalidCategory)
		assert.Empty(t, repo.redeemCalls)
	})

	t.Run("accepts the reward category", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		err := svc.CastFinalVote(context.Background(), "uid-1", "AB12CD", domain.CategoryReward, 0)

		require.NoError(t, err)
		require.Len(t, repo.redeemCalls, 1)
		assert.Equal(t, domain.CategoryReward, repo.redeemCalls[0].category)
	})

	t.Run("surfaces a consumed slot", func(t *testing.T) {
		repo := &fakeTokenRepo{redeemErr: ErrTokenUsed}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		err := svc.CastFinalVote(context.Background(), "uid-1", "AB12CD", domain.CategoryQueen, 2)

		require.ErrorIs(t, err, ErrTokenUsed)
	})

	t.Run("surfaces an unknown token", func(t *testing.T) {
		repo := &fakeTokenRepo{redeemErr: ErrTokenNotFound}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		err := svc.CastFinalVote(context.Background(), "uid-1", "ZZZZZZ", domain.CategoryQueen, 2)

		require.ErrorIs(t, err, ErrTokenNotFound)
	})
}

func TestFinalServiceClaimReward(t *testing.T) {
	t.Run("returns the reward on first claim", func(t *testing.T) {
		repo := &fakeTokenRepo{claimReward: "5000MMK"}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		reward, already, err := svc.ClaimReward(context.Background(), "uid-1", "ab12cd")

		require.NoError(t, err)
		assert.Equal(t, "5000MMK", reward)
		assert.False(t, already)
		require.Len(t, repo.claimCalls, 1)
		assert.Equal(t, claimCall{token: "AB12CD", subjectID: "uid-1"}, repo.claimCalls[0])
	})

	t.Run("reports a repeat view by the original claimant", func(t *testing.T) {
		repo := &fakeTokenRepo{claimReward: "5000MMK", claimAlready: true}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		reward, already, err := svc.ClaimReward(context.Background(), "uid-1", "AB12CD")

		require.NoError(t, err)
		assert.Equal(t, "5000MMK", reward)
		assert.True(t, already)
	})

	t.Run("rejects a malformed token before any store access", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		_, _, err := svc.ClaimReward(context.Background(), "uid-1", "AB12CD7")

		require.ErrorIs(t, err, ErrMalformedToken)
		assert.Empty(t, repo.claimCalls)
	})

	t.Run("surfaces a claim by another subject", func(t *testing.T) {
		repo := &fakeTokenRepo{claimErr: ErrTokenClaimedByOther}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		_, _, err := svc.ClaimReward(context.Background(), "uid-2", "AB12CD")

		require.ErrorIs(t, err, ErrTokenClaimedByOther)
	})
}

func TestFinalServiceTokenStatus(t *testing.T) {
	t.Run("canonicalizes and returns the slot state", func(t *testing.T) {
		repo := &fakeTokenRepo{found: domain.FinalToken{
			Token: "AB12CD",
			Queen: domain.TokenSlot{Used: true, UsedBy: "uid-9"},
		}}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		token, err := svc.TokenStatus(context.Background(), " ab12cd ")

		require.NoError(t, err)
		assert.True(t, token.Queen.Used)
		assert.False(t, token.King.Used)
		require.Len(t, repo.findCalls, 1)
		assert.Equal(t, "AB12CD", repo.findCalls[0])
	})

	t.Run("rejects a malformed token before any store access", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		_, err := svc.TokenStatus(context.Background(), "nope")

		require.ErrorIs(t, err, ErrMalformedToken)
		assert.Empty(t, repo.findCalls)
	})

	t.Run("surfaces an unknown token", func(t *testing.T) {
		repo := &fakeTokenRepo{foundErr: ErrTokenNotFound}
		svc := NewFinalService(repo, &fakeFinalCandidateRepo{})

		_, err := svc.TokenStatus(context.Background(), "ZZZZZZ")

		require.ErrorIs(t, err, ErrTokenNotFound)
	})
}

func TestFinalServiceFinalCandidates(t *testing.T) {
	repo := &fakeFinalCandidateRepo{byCategory: map[domain.Category][]domain.FinalCandidate{
		domain.CategoryKing:  {{ID: 1, Name: "Aung", Batch: "2020"}},
		domain.CategoryQueen: {{ID: 2, Name: "Su", Batch: "2021"}, {ID: 3, Name: "Mya", Batch: "2022"}},
	}}
	svc := NewFinalService(&fakeTokenRepo{}, repo)

	kings, queens, err := svc.FinalCandidates(context.Background())

	require.NoError(t, err)
	assert.Len(t, kings, 1)
	assert.Len(t, queens, 2)
}
