package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Role     *string `json:"role"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type UpdateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateArticleRequest struct {
	Title      string  `json:"title" validate:"required,max=255"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"image_url" validate:"omitempty,max=255"`
	AuthorID   *uint   `json:"author_id"`
	CategoryID *uint   `json:"category_id"`
	TagIDs     []uint  `json:"tag_ids"`
}

// UpdateArticleRequest replaces the article's fields. A nil TagIDs leaves the
// tag set alone; an empty non-nil slice clears it.
type UpdateArticleRequest struct {
	Title      string  `json:"title" validate:"required,max=255"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"image_url" validate:"omitempty,max=255"`
	CategoryID *uint   `json:"category_id"`
	TagIDs     []uint  `json:"tag_ids"`
}

type CreateBookmarkRequest struct {
	UserID    *uint `json:"user_id" validate:"required"`
	ArticleID *uint `json:"article_id" validate:"required"`
}

type CreateReadHistoryRequest struct {
	UserID    *uint `json:"user_id" validate:"required"`
	ArticleID *uint `json:"article_id" validate:"required"`
}
