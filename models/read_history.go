package models

import "time"

type ReadHistory struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    *uint     `json:"user_id"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ArticleID *uint     `json:"article_id"`
	Article   *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	ReadAt    time.Time `json:"read_at" gorm:"autoCreateTime"`
}

func (ReadHistory) TableName() string {
	return "read_history"
}
