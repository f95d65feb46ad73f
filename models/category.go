package models

type Category struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Description *string `json:"description" gorm:"size:255"`

	// constraint declared here so it survives the duplicate relation on
	// Article.Category; deleting a category orphans its articles in place
	Articles []Article `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
