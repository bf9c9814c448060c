package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

var ErrAlreadyVoted = errors.New("subject has already voted for this category")

type Vote struct {
	ID          uint   `gorm:"primaryKey"`
	SubjectID   string `gorm:"size:128;not null;uniqueIndex:uniq_subject_category"`
	Category    string `gorm:"size:16;not null;uniqueIndex:uniq_subject_category"`
	CandidateID uint   `gorm:"not null"`
	CreatedAt   time.Time
}

func (Vote) TableName() string {
	return "votes"
}

type VoteDAO struct {
	db *gorm.DB
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{
		db: db,
	}
}

// CastVote runs the whole check-increment-insert sequence in one
// transaction. The unique index on (subject_id, category) is the
// arbiter under concurrency: losing a race surfaces as a unique
// violation on the ledger insert and the counter increment rolls
// back with it.
func (d *VoteDAO) CastVote(ctx context.Context, subjectID string, category domain.Category, candidateID uint) error {
	table, ok := mainTable(category)
	if !ok {
		return ErrInvalidCategory
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Vote
		err := tx.Where("subject_id = ? AND category = ?", subjectID, string(category)).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyVoted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
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

		vote := Vote{
			SubjectID:   subjectID,
			Category:    string(category),
			CandidateID: candidateID,
		}
		if err := tx.Create(&vote).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrAlreadyVoted
			}

			return err
		}

		return nil
	})
}

func (d *VoteDAO) FindBySubject(ctx context.Context, subjectID string) ([]Vote, error) {
	var votes []Vote

	result := d.db.WithContext(ctx).Where("subject_id = ?", subjectID).Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}

	return votes, nil
}
