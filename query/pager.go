package query

import "gorm.io/gorm"

// Paginate slices an ordered query into a 1-based page. Pages below 1 are
// clamped; pages past the end simply come back empty. Page size is trusted:
// the handlers clamp it to [1,200] before it gets here.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
