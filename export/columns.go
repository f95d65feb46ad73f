package export

import (
	"strconv"
	"strings"
	"time"

	"newsapp-api/models"
)

const timeLayout = "2006-01-02 15:04:05"

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func id(p *uint) string {
	if p == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*p), 10)
}

func stamp(t time.Time) string {
	return t.Format(timeLayout)
}

// The column sets below are the single source of truth for CSV, worksheet and
// ZIP rendering. Joined fields come from preloaded relations and fall back to
// "" when the relation is absent.

func UserColumns() []Column[models.User] {
	return []Column[models.User]{
		{Header: "Id", Value: func(u models.User) string { return strconv.FormatUint(uint64(u.ID), 10) }},
		{Header: "FullName", Value: func(u models.User) string { return str(u.FullName) }},
		{Header: "Email", Value: func(u models.User) string { return str(u.Email) }},
		{Header: "Role", Value: func(u models.User) string { return u.Role }},
		{Header: "CreatedAt", Value: func(u models.User) string { return stamp(u.CreatedAt) }},
	}
}

func CategoryColumns() []Column[models.Category] {
	return []Column[models.Category]{
		{Header: "Id", Value: func(c models.Category) string { return strconv.FormatUint(uint64(c.ID), 10) }},
		{Header: "Name", Value: func(c models.Category) string { return c.Name }},
		{Header: "Description", Value: func(c models.Category) string { return str(c.Description) }},
	}
}

func TagColumns() []Column[models.Tag] {
	return []Column[models.Tag]{
		{Header: "Id", Value: func(t models.Tag) string { return strconv.FormatUint(uint64(t.ID), 10) }},
		{Header: "Name", Value: func(t models.Tag) string { return t.Name }},
	}
}

func ArticleColumns() []Column[models.Article] {
	return []Column[models.Article]{
		{Header: "Id", Value: func(a models.Article) string { return strconv.FormatUint(uint64(a.ID), 10) }},
		{Header: "Title", Value: func(a models.Article) string { return a.Title }},
		{Header: "Author", Value: func(a models.Article) string {
			if a.Author == nil {
				return ""
			}
			return str(a.Author.FullName)
		}},
		{Header: "Category", Value: func(a models.Article) string {
			if a.Category == nil {
				return ""
			}
			return a.Category.Name
		}},
		{Header: "CreatedAt", Value: func(a models.Article) string { return stamp(a.CreatedAt) }},
		{Header: "Tags", Value: func(a models.Article) string {
			names := make([]string, len(a.Tags))
			for i, t := range a.Tags {
				names[i] = t.Name
			}
			return strings.Join(names, "|")
		}},
		{Header: "ImageUrl", Value: func(a models.Article) string { return str(a.ImageURL) }},
	}
}

func BookmarkColumns() []Column[models.Bookmark] {
	return []Column[models.Bookmark]{
		{Header: "Id", Value: func(b models.Bookmark) string { return strconv.FormatUint(uint64(b.ID), 10) }},
		{Header: "UserId", Value: func(b models.Bookmark) string { return id(b.UserID) }},
		{Header: "UserName", Value: func(b models.Bookmark) string {
			if b.User == nil {
				return ""
			}
			return str(b.User.FullName)
		}},
		{Header: "ArticleId", Value: func(b models.Bookmark) string { return id(b.ArticleID) }},
		{Header: "Article", Value: func(b models.Bookmark) string {
			if b.Article == nil {
				return ""
			}
			return b.Article.Title
		}},
		{Header: "CreatedAt", Value: func(b models.Bookmark) string { return stamp(b.CreatedAt) }},
	}
}

func ReadHistoryColumns() []Column[models.ReadHistory] {
	return []Column[models.ReadHistory]{
		{Header: "Id", Value: func(h models.ReadHistory) string { return strconv.FormatUint(uint64(h.ID), 10) }},
		{Header: "UserId", Value: func(h models.ReadHistory) string { return id(h.UserID) }},
		{Header: "UserName", Value: func(h models.ReadHistory) string {
			if h.User == nil {
				return ""
			}
			return str(h.User.FullName)
		}},
		{Header: "ArticleId", Value: func(h models.ReadHistory) string { return id(h.ArticleID) }},
		{Header: "Article", Value: func(h models.ReadHistory) string {
			if h.Article == nil {
				return ""
			}
			return h.Article.Title
		}},
		{Header: "ReadAt", Value: func(h models.ReadHistory) string { return stamp(h.ReadAt) }},
	}
}
