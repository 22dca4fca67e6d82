package scope

import "gorm.io/gorm"

// ByUser narrows any document_chunks query to a single user's index.
func ByUser(userId string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userId)
	}
}
