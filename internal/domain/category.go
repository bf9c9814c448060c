package domain

// Category is the closed set of voting tracks. Table routing is done
// by explicit switches in the dao layer, never by string formatting.
type Category string

const (
	CategoryKing    Category = "king"
	CategoryQueen   Category = "queen"
	CategoryLantern Category = "lantern"

	// CategoryReward exists only for token redemption; it has no
	// candidate table and no identity-gated votes.
	CategoryReward Category = "reward"
)

// IsVotable reports whether identity-gated votes are accepted for c.
func (c Category) IsVotable() bool {
	switch c {
	case CategoryKing, CategoryQueen, CategoryLantern:
		return true
	}
	return false
}

// IsRedeemable reports whether a final token can be redeemed for c.
func (c Category) IsRedeemable() bool {
	return c.IsVotable() || c == CategoryReward
}
