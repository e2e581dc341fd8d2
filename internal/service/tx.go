package service

import "gorm.io/gorm"

// rollback and commit tolerate the nil transaction that mock-backed
// repository aggregates hand out.

func rollback(tx *gorm.DB) {
	if tx != nil {
		tx.Rollback()
	}
}

func commit(tx *gorm.DB) error {
	if tx != nil {
		return tx.Commit().Error
	}
	return nil
}
