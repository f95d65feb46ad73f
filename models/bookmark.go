package models

import "time"

// Bookmark keeps its user FK on RESTRICT: deleting a user must not silently
// drop bookmark rows, while deleting an article does cascade. The RESTRICT is
// declared on User.Bookmarks; the article cascade has no reverse declaration
// and lives here.
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    *uint     `json:"user_id"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ArticleID *uint     `json:"article_id"`
	Article   *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
