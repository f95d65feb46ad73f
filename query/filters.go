package query

import (
	"strings"

	"newsapp-api/models"

	"gorm.io/gorm"
)

// Filter scopes translate a filter object into a conjunction of WHERE
// predicates. Absent (nil or blank) fields contribute nothing; both ends of a
// range are applied literally even when from > to.

func ArticleScope(f models.ArticleFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.AuthorID != nil {
			db = db.Where("author_id = ?", *f.AuthorID)
		}
		if f.CategoryID != nil {
			db = db.Where("category_id = ?", *f.CategoryID)
		}
		if f.TagID != nil {
			// semi-join: keep the article if any of its tag rows matches
			db = db.Where("EXISTS (SELECT 1 FROM article_tags WHERE article_tags.article_id = articles.id AND article_tags.tag_id = ?)", *f.TagID)
		}
		if k := strings.TrimSpace(f.Keyword); k != "" {
			p := "%" + k + "%"
			db = db.Where("title LIKE ? OR COALESCE(content, '') LIKE ?", p, p)
		}
		if f.CreatedFrom != nil {
			db = db.Where("created_at >= ?", *f.CreatedFrom)
		}
		if f.CreatedTo != nil {
			db = db.Where("created_at <= ?", *f.CreatedTo)
		}
		return db
	}
}

func CategoryScope(f models.CategoryFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if k := strings.TrimSpace(f.Keyword); k != "" {
			p := "%" + k + "%"
			db = db.Where("name LIKE ? OR COALESCE(description, '') LIKE ?", p, p)
		}
		if f.IDFrom != nil {
			db = db.Where("id >= ?", *f.IDFrom)
		}
		if f.IDTo != nil {
			db = db.Where("id <= ?", *f.IDTo)
		}
		return db
	}
}

func TagScope(f models.TagFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if k := strings.TrimSpace(f.Keyword); k != "" {
			db = db.Where("name LIKE ?", "%"+k+"%")
		}
		if f.IDFrom != nil {
			db = db.Where("id >= ?", *f.IDFrom)
		}
		if f.IDTo != nil {
			db = db.Where("id <= ?", *f.IDTo)
		}
		return db
	}
}

func UserScope(f models.UserFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if k := strings.TrimSpace(f.Keyword); k != "" {
			p := "%" + k + "%"
			db = db.Where("COALESCE(full_name, '') LIKE ? OR COALESCE(email, '') LIKE ? OR role LIKE ?", p, p, p)
		}
		if f.Role != "" {
			db = db.Where("role = ?", f.Role)
		}
		if f.CreatedFrom != nil {
			db = db.Where("created_at >= ?", *f.CreatedFrom)
		}
		if f.CreatedTo != nil {
			db = db.Where("created_at <= ?", *f.CreatedTo)
		}
		return db
	}
}

func BookmarkScope(f models.BookmarkFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.UserID != nil {
			db = db.Where("user_id = ?", *f.UserID)
		}
		if f.CreatedFrom != nil {
			db = db.Where("created_at >= ?", *f.CreatedFrom)
		}
		if f.CreatedTo != nil {
			db = db.Where("created_at <= ?", *f.CreatedTo)
		}
		return db
	}
}

func ReadHistoryScope(f models.ReadHistoryFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.UserID != nil {
			db = db.Where("user_id = ?", *f.UserID)
		}
		if f.ReadFrom != nil {
			db = db.Where("read_at >= ?", *f.ReadFrom)
		}
		if f.ReadTo != nil {
			db = db.Where("read_at <= ?", *f.ReadTo)
		}
		return db
	}
}
