package models

import "time"

type Article struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Content    *string   `json:"content"`
	ImageURL   *string   `json:"image_url" gorm:"size:255"`
	AuthorID   *uint     `json:"author_id"`
	Author     *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"created_at"`

	// author/category referential actions are declared on User.Articles and
	// Category.Articles; the join rows cascade from here
	Tags        []Tag        `json:"tags" gorm:"many2many:article_tags;constraint:OnDelete:CASCADE"`
	ArticleTags []ArticleTag `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}
