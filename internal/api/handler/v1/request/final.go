package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

var errMissingCandidate = errors.New("candidate is required for this category")

type FinalVoteRequest struct {
	Token       string `json:"token"`
	Category    string `json:"category"`
	CandidateID uint   `json:"candidate_id"`
}

func (req *FinalVoteRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Token, validation.Required, validation.By(validTokenFormat)),
		validation.Field(&req.Category, validation.Required, validation.In("king", "queen", "lantern", "reward")),
	)
	if err != nil {
		return err
	}

	// Reward is claim-only; every other category votes a candidate.
	if req.Category != string(domain.CategoryReward) && req.CandidateID == 0 {
		return errMissingCandidate
	}

	return nil
}

type RewardClaimRequest struct {
	Token string `json:"token"`
}

func (req *RewardClaimRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Token, validation.Required, validation.By(validTokenFormat)),
	)
}

type TokenStatusRequest struct {
	Token string `json:"token"`
}

func (req *TokenStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Token, validation.Required, validation.By(validTokenFormat)),
	)
}

// validTokenFormat rejects malformed tokens before any store access.
func validTokenFormat(value interface{}) error {
	raw, _ := value.(string)
	if _, err := domain.NormalizeToken(raw); err != nil {
		return err
	}

	return nil
}
