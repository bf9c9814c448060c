package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&King{},
		&Queen{},
		&Lantern{},
		&FinalKing{},
		&FinalQueen{},
		&Vote{},
		&FinalToken{},
		&FinalVote{},
	)
	if err != nil {
		return err
	}

	return seedCandidates(db)
}
