package persistence

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds SELECT ... FOR UPDATE. Drivers without row locks ignore it.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// orderedLines preloads child lines in entry order
func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("line_no ASC")
}

// replaceLines deletes every child row of parentID and inserts lines in its place
func replaceLines[T any](tx *gorm.DB, parentColumn string, parentID uuid.UUID, lines []T) error {
	if err := tx.Where(parentColumn+" = ?", parentID).Delete(new(T)).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	return tx.Create(&lines).Error
}

// likePattern wraps a search term for a contains match
func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
