package repositories

import (
	"newsapp-api/models"
	"newsapp-api/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	Create(article *models.Article, tagIDs []uint) error
	GetByID(id uint) (*models.Article, error)
	GetList(f models.ArticleFilter) ([]models.Article, int64, error)
	GetAllFiltered(f models.ArticleFilter) ([]models.Article, error)
	Update(article *models.Article, tagIDs []uint, syncTags bool) error
	Delete(id uint) (bool, error)
	AttachTags(articleID uint, tagIDs []uint) error
	DetachTag(articleID, tagID uint) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(article).Error; err != nil {
			return err
		}

		// Only ids that actually exist in tags are attached; the rest are
		// dropped without complaint.
		ids, err := existingTagIDs(tx, dedupe(tagIDs))
		if err != nil {
			return err
		}
		return insertTagRows(tx, article.ID, ids)
	})
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").Preload("Tags").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetList(f models.ArticleFilter) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	q := r.db.Model(&models.Article{}).Scopes(query.ArticleScope(f))

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Author").Preload("Category").Preload("Tags").
		Order(query.ArticleSort.Resolve(f.SortBy, f.SortDir)).
		Scopes(query.Paginate(f.Page, f.PageSize)).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetAllFiltered(f models.ArticleFilter) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Category").Preload("Tags").
		Scopes(query.ArticleScope(f)).
		Order("created_at desc, id desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article, tagIDs []uint, syncTags bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(article).Error; err != nil {
			return err
		}
		if syncTags {
			return reconcileTags(tx, article.ID, tagIDs)
		}
		return nil
	})
}

func (r *articleRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Article{}, id)
	return res.RowsAffected > 0, res.Error
}

// AttachTags is additive: existing associations are never removed, desired
// ids are validated for existence, and ids already attached are skipped.
// Returns gorm.ErrRecordNotFound when the article itself is missing.
func (r *articleRepository) AttachTags(articleID uint, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.Select("id").First(&article, articleID).Error; err != nil {
			return err
		}

		ids, err := existingTagIDs(tx, dedupe(tagIDs))
		if err != nil {
			return err
		}

		current, err := currentTagIDs(tx, articleID)
		if err != nil {
			return err
		}
		attached := make(map[uint]bool, len(current))
		for _, id := range current {
			attached[id] = true
		}

		var toAdd []uint
		for _, id := range ids {
			if !attached[id] {
				toAdd = append(toAdd, id)
			}
		}
		return insertTagRows(tx, articleID, toAdd)
	})
}

// DetachTag removes one association row. A missing row is not an error;
// the bool tells the caller whether anything was removed.
func (r *articleRepository) DetachTag(articleID, tagID uint) (bool, error) {
	res := r.db.Where("article_id = ? AND tag_id = ?", articleID, tagID).
		Delete(&models.ArticleTag{})
	return res.RowsAffected > 0, res.Error
}

// reconcileTags synchronizes the article's association rows to the desired
// set with a minimal delta. Removal never checks tag existence (removing a
// nonexistent association is a no-op by definition); additions are filtered
// to tags that exist.
func reconcileTags(tx *gorm.DB, articleID uint, desired []uint) error {
	current, err := currentTagIDs(tx, articleID)
	if err != nil {
		return err
	}

	toAdd, toRemove := diffTagSets(current, dedupe(desired))

	if len(toRemove) > 0 {
		if err := tx.Where("article_id = ? AND tag_id IN ?", articleID, toRemove).
			Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
	}

	if len(toAdd) > 0 {
		ids, err := existingTagIDs(tx, toAdd)
		if err != nil {
			return err
		}
		return insertTagRows(tx, articleID, ids)
	}
	return nil
}

func currentTagIDs(tx *gorm.DB, articleID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&models.ArticleTag{}).
		Where("article_id = ?", articleID).
		Pluck("tag_id", &ids).Error
	return ids, err
}

func existingTagIDs(tx *gorm.DB, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	if err := tx.Model(&models.Tag{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	// keep the caller's order
	ok := make(map[uint]bool, len(found))
	for _, id := range found {
		ok[id] = true
	}
	var out []uint
	for _, id := range ids {
		if ok[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func insertTagRows(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	for _, tid := range tagIDs {
		if err := tx.Create(&models.ArticleTag{ArticleID: articleID, TagID: tid}).Error; err != nil {
			return err
		}
	}
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	var out []uint
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// diffTagSets computes the minimal add/remove delta between two id sets.
func diffTagSets(current, desired []uint) (toAdd, toRemove []uint) {
	cur := make(map[uint]bool, len(current))
	for _, id := range current {
		cur[id] = true
	}
	want := make(map[uint]bool, len(desired))
	for _, id := range desired {
		want[id] = true
	}

	for _, id := range desired {
		if !cur[id] {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if !want[id] {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
