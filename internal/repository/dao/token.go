package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

var (
	ErrTokenNotFound       = errors.New("token not found")
	ErrTokenUsed           = errors.New("token already used for this category")
	ErrTokenClaimedByOther = errors.New("token already claimed by another subject")
)

type FinalToken struct {
	Token       string `gorm:"primaryKey;size:6"`
	RewardValue string `gorm:"size:32;not null"`

	UsedForKing   bool   `gorm:"not null;default:false"`
	UsedByKing    string `gorm:"size:128"`
	UsedAtKing    *time.Time
	CandidateKing *uint

	UsedForQueen   bool   `gorm:"not null;default:false"`
	UsedByQueen    string `gorm:"size:128"`
	UsedAtQueen    *time.Time
	CandidateQueen *uint

	UsedForLantern   bool   `gorm:"not null;default:false"`
	UsedByLantern    string `gorm:"size:128"`
	UsedAtLantern    *time.Time
	CandidateLantern *uint

	// The reward slot is claim-only, so no candidate column.
	UsedForReward bool   `gorm:"not null;default:false"`
	UsedByReward  string `gorm:"size:128"`
	UsedAtReward  *time.Time
}

func (FinalToken) TableName() string {
	return "final_tokens"
}

type FinalVote struct {
	ID          uint   `gorm:"primaryKey"`
	Token       string `gorm:"size:6;not null;index"`
	Category    string `gorm:"size:16;not null"`
	CandidateID *uint
	CreatedAt   time.Time
}

func (FinalVote) TableName() string {
	return "final_votes"
}

type TokenDAO struct {
	db *gorm.DB
}

func NewTokenDAO(db *gorm.DB) *TokenDAO {
	return &TokenDAO{
		db: db,
	}
}

func (d *TokenDAO) FindByToken(ctx context.Context, token string) (FinalToken, error) {
	var row FinalToken

	result := d.db.WithContext(ctx).First(&row, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return FinalToken{}, ErrTokenNotFound
		}

		return FinalToken{}, result.Error
	}

	return row, nil
}

// Redeem consumes one category slot of a token. The token row is
// locked for the duration of the transaction and the slot update is
// guarded by its used flag, so a slot flips unused -> used at most
// once. Reward is a terminal branch: no candidate lookup, no counter.
func (d *TokenDAO) Redeem(ctx context.Context, token string, category domain.Category, candidateID uint, subjectID string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockToken(tx, token)
		if err != nil {
			return err
		}

		used, ok := slotUsed(row, category)
		if !ok {
			return ErrInvalidCategory
		}
		if used {
			return ErrTokenUsed
		}

		if category == domain.CategoryReward {
			return redeemReward(tx, row.Token, subjectID)
		}

		table, ok := finalTable(category)
		if !ok {
			return ErrInvalidCategory
		}

		result := tx.Table(table).
			Where("id = ?", candidateID).
			UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCandidateNotFound
		}

		cid := candidateID
		vote := FinalVote{
			Token:       row.Token,
			Category:    string(category),
			CandidateID: &cid,
		}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}

		return markSlotUsed(tx, row.Token, category, subjectID, &cid)
	})
}

// ClaimReward flips the reward slot once and returns the stored
// reward value. Re-claims by the original claimant are idempotent
// reads, reported via the second return; claims by anyone else fail.
func (d *TokenDAO) ClaimReward(ctx context.Context, token, subjectID string) (string, bool, error) {
	var (
		reward  string
		already bool
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockToken(tx, token)
		if err != nil {
			return err
		}
		reward = row.RewardValue

		if row.UsedForReward {
			if row.UsedByReward == subjectID {
				already = true
				return nil
			}

			return ErrTokenClaimedByOther
		}

		return redeemReward(tx, row.Token, subjectID)
	})
	if err != nil {
		return "", false, err
	}

	return reward, already, nil
}

// ReplaceAll clears prior token and final-vote state and loads a
// fresh batch. Provisioning only; never on the request path.
func (d *TokenDAO) ReplaceAll(ctx context.Context, tokens []FinalToken) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&FinalVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&FinalToken{}).Error; err != nil {
			return err
		}

		if len(tokens) == 0 {
			return nil
		}

		return tx.Create(&tokens).Error
	})
}

func (d *TokenDAO) CountTokens(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&FinalToken{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func lockToken(tx *gorm.DB, token string) (FinalToken, error) {
	var row FinalToken

	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FinalToken{}, ErrTokenNotFound
		}

		return FinalToken{}, err
	}

	return row, nil
}

func slotUsed(row FinalToken, category domain.Category) (bool, bool) {
	switch category {
	case domain.CategoryKing:
		return row.UsedForKing, true
	case domain.CategoryQueen:
		return row.UsedForQueen, true
	case domain.CategoryLantern:
		return row.UsedForLantern, true
	case domain.CategoryReward:
		return row.UsedForReward, true
	}
	return false, false
}

// redeemReward is the single reward primitive shared by final-vote
// redemption and reward claims.
func redeemReward(tx *gorm.DB, token, subjectID string) error {
	vote := FinalVote{
		Token:    token,
		Category: string(domain.CategoryReward),
	}
	if err := tx.Create(&vote).Error; err != nil {
		return err
	}

	return markSlotUsed(tx, token, domain.CategoryReward, subjectID, nil)
}

// markSlotUsed flips one category slot, guarded by its used flag so
// concurrent redemptions cannot both succeed. Columns are spelled
// out per category; nothing here is built from the category string.
func markSlotUsed(tx *gorm.DB, token string, category domain.Category, subjectID string, candidateID *uint) error {
	now := time.Now()

	var result *gorm.DB
	switch category {
	case domain.CategoryKing:
		result = tx.Model(&FinalToken{}).
			Where("token = ? AND used_for_king = ?", token, false).
			Updates(map[string]interface{}{
				"used_for_king":  true,
				"used_by_king":   subjectID,
				"used_at_king":   now,
				"candidate_king": candidateID,
			})
	case domain.CategoryQueen:
		result = tx.Model(&FinalToken{}).
			Where("token = ? AND used_for_queen = ?", token, false).
			Updates(map[string]interface{}{
				"used_for_queen":  true,
				"used_by_queen":   subjectID,
				"used_at_queen":   now,
				"candidate_queen": candidateID,
			})
	case domain.CategoryLantern:
		result = tx.Model(&FinalToken{}).
			Where("token = ? AND used_for_lantern = ?", token, false).
			Updates(map[string]interface{}{
				"used_for_lantern":  true,
				"used_by_lantern":   subjectID,
				"used_at_lantern":   now,
				"candidate_lantern": candidateID,
			})
	case domain.CategoryReward:
		result = tx.Model(&FinalToken{}).
			Where("token = ? AND used_for_reward = ?", token, false).
			Updates(map[string]interface{}{
				"used_for_reward": true,
				"used_by_reward":  subjectID,
				"used_at_reward":  now,
			})
	default:
		return ErrInvalidCategory
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenUsed
	}

	return nil
}
