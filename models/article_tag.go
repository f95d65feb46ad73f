package models

// ArticleTag is the join row behind Article.Tags. It has no independent
// lifecycle: rows go away with either parent.
type ArticleTag struct {
	ArticleID uint `json:"article_id" gorm:"primaryKey"`
	TagID     uint `json:"tag_id" gorm:"primaryKey"`

	// the article-side action rides on Article.ArticleTags; the tag side has
	// no reverse declaration, so the cascade is stated here
	Article *Article `json:"-" gorm:"foreignKey:ArticleID"`
	Tag     *Tag     `json:"-" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
