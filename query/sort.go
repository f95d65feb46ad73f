package query

import "strings"

// SortRule maps a client-supplied sort key onto one column of the entity's
// table. Keys are matched case-insensitively; anything unrecognized lands on
// the default column. The id column is appended as a secondary tiebreaker so
// equal primary keys still order deterministically.
type SortRule struct {
	keys        map[string]string
	defaultCol  string
	defaultDesc bool
}

// Resolve returns a complete ORDER BY fragment, e.g. "created_at DESC, id DESC".
func (r SortRule) Resolve(sortBy, sortDir string) string {
	col, ok := r.keys[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		col = r.defaultCol
	}

	desc := r.defaultDesc
	if d := strings.TrimSpace(sortDir); d != "" {
		desc = strings.EqualFold(d, "desc")
	}

	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	order := col + " " + dir
	if col != "id" {
		order += ", id " + dir
	}
	return order
}

var (
	ArticleSort = SortRule{
		keys: map[string]string{
			"title":     "title",
			"id":        "id",
			"createdat": "created_at",
		},
		defaultCol:  "created_at",
		defaultDesc: true,
	}

	CategorySort = SortRule{
		keys: map[string]string{
			"id":          "id",
			"description": "description",
			"name":        "name",
		},
		defaultCol: "name",
	}

	TagSort = SortRule{
		keys: map[string]string{
			"id":   "id",
			"name": "name",
		},
		defaultCol: "name",
	}

	UserSort = SortRule{
		keys: map[string]string{
			"fullname":  "full_name",
			"email":     "email",
			"role":      "role",
			"id":        "id",
			"createdat": "created_at",
		},
		defaultCol:  "created_at",
		defaultDesc: true,
	}
)
