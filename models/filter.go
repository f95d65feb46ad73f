package models

import "time"

// Filter objects narrow a listing or export conjunctively: every set field
// adds one predicate, absent fields add none. Date bounds are parsed
// leniently in the handlers and bound here as pointers.

type ArticleFilter struct {
	Page        int        `form:"page,default=1"`
	PageSize    int        `form:"pageSize,default=10"`
	SortBy      string     `form:"sortBy"`
	SortDir     string     `form:"sortDir"`
	AuthorID    *uint      `form:"authorId"`
	CategoryID  *uint      `form:"categoryId"`
	TagID       *uint      `form:"tagId"`
	Keyword     string     `form:"keyword"`
	CreatedFrom *time.Time `form:"-"`
	CreatedTo   *time.Time `form:"-"`
}

type CategoryFilter struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
	SortBy   string `form:"sortBy"`
	SortDir  string `form:"sortDir"`
	Keyword  string `form:"keyword"`
	IDFrom   *uint  `form:"idFrom"`
	IDTo     *uint  `form:"idTo"`
}

type TagFilter struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
	SortBy   string `form:"sortBy"`
	SortDir  string `form:"sortDir"`
	Keyword  string `form:"keyword"`
	IDFrom   *uint  `form:"idFrom"`
	IDTo     *uint  `form:"idTo"`
}

type UserFilter struct {
	Page        int        `form:"page,default=1"`
	PageSize    int        `form:"pageSize,default=10"`
	SortBy      string     `form:"sortBy"`
	SortDir     string     `form:"sortDir"`
	Keyword     string     `form:"keyword"`
	Role        string     `form:"role"`
	CreatedFrom *time.Time `form:"-"`
	CreatedTo   *time.Time `form:"-"`
}

type BookmarkFilter struct {
	UserID      *uint      `form:"userId"`
	CreatedFrom *time.Time `form:"-"`
	CreatedTo   *time.Time `form:"-"`
}

type ReadHistoryFilter struct {
	UserID   *uint      `form:"userId"`
	ReadFrom *time.Time `form:"-"`
	ReadTo   *time.Time `form:"-"`
}
