package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

var (
	ErrInvalidCategory   = errors.New("invalid voting category")
	ErrCandidateNotFound = errors.New("candidate not found")
)

type Candidate struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Batch     string `gorm:"size:50"`
	Bio       string
	ImagePath string `gorm:"size:200"`
	VoteCount int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

type King struct {
	Candidate `gorm:"embedded"`
}

func (King) TableName() string {
	return "kings"
}

type Queen struct {
	Candidate `gorm:"embedded"`
}

func (Queen) TableName() string {
	return "queens"
}

type Lantern struct {
	Candidate `gorm:"embedded"`
}

func (Lantern) TableName() string {
	return "lanterns"
}

type FinalKing struct {
	Candidate `gorm:"embedded"`
}

func (FinalKing) TableName() string {
	return "final_kings"
}

type FinalQueen struct {
	Candidate `gorm:"embedded"`
}

func (FinalQueen) TableName() string {
	return "final_queens"
}

// mainTable maps a votable category to its candidate table. Closed
// mapping; unknown categories never reach SQL.
func mainTable(category domain.Category) (string, bool) {
	switch category {
	case domain.CategoryKing:
		return "kings", true
	case domain.CategoryQueen:
		return "queens", true
	case domain.CategoryLantern:
		return "lanterns", true
	}
	return "", false
}

// finalTable maps a category to its final-round candidate table.
// Lanterns have no separate final round and reuse the main table.
func finalTable(category domain.Category) (string, bool) {
	switch category {
	case domain.CategoryKing:
		return "final_kings", true
	case domain.CategoryQueen:
		return "final_queens", true
	case domain.CategoryLantern:
		return "lanterns", true
	}
	return "", false
}

type CandidateDAO struct {
	db *gorm.DB
}

func NewCandidateDAO(db *gorm.DB) *CandidateDAO {
	return &CandidateDAO{
		db: db,
	}
}

func (d *CandidateDAO) ListByName(ctx context.Context, category domain.Category) ([]Candidate, error) {
	table, ok := mainTable(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	var candidates []Candidate
	result := d.db.WithContext(ctx).Table(table).Order("name").Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

func (d *CandidateDAO) ListByID(ctx context.Context, category domain.Category) ([]Candidate, error) {
	table, ok := mainTable(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	var candidates []Candidate
	result := d.db.WithContext(ctx).Table(table).Order("id").Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

func (d *CandidateDAO) ListByVotes(ctx context.Context, category domain.Category) ([]Candidate, error) {
	table, ok := mainTable(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	var candidates []Candidate
	result := d.db.WithContext(ctx).Table(table).Order("vote_count DESC").Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

func (d *CandidateDAO) ListFinal(ctx context.Context, category domain.Category) ([]Candidate, error) {
	table, ok := finalTable(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	var candidates []Candidate
	result := d.db.WithContext(ctx).Table(table).Select("id", "name", "batch").Order("id").Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}
