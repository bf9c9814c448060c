package domain

import (
	"errors"
	"strings"
	"time"
)

// TokenLength is the exact length of a provisioned token after
// canonicalization.
const TokenLength = 6

var ErrMalformedToken = errors.New("token must be exactly 6 characters")

// NormalizeToken canonicalizes a raw token (trim, case-fold to upper)
// and rejects anything that is not exactly TokenLength characters.
// Called before any store access.
func NormalizeToken(raw string) (string, error) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if len(token) != TokenLength {
		return "", ErrMalformedToken
	}

	return token, nil
}

// TokenSlot is the single-use state of one category on a token.
type TokenSlot struct {
	Used        bool       `json:"used"`
	UsedBy      string     `json:"used_by,omitempty"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	CandidateID *uint      `json:"candidate_id,omitempty"`
}

// FinalToken is a pre-provisioned secret granting one redemption per
// category in the final round and a one-time reward claim.
type FinalToken struct {
	Token       string   `json:"token"`
	RewardValue string   `json:"reward_value"`
	King        TokenSlot `json:"king"`
	Queen       TokenSlot `json:"queen"`
	Lantern     TokenSlot `json:"lantern"`
	Reward      TokenSlot `json:"reward"`
}

// Slot returns the redemption state for category. The bool reports
// whether the category is known on tokens.
func (t *FinalToken) Slot(category Category) (TokenSlot, bool) {
	switch category {
	case CategoryKing:
		return t.King, true
	case CategoryQueen:
		return t.Queen, true
	case CategoryLantern:
		return t.Lantern, true
	case CategoryReward:
		return t.Reward, true
	}
	return TokenSlot{}, false
}
