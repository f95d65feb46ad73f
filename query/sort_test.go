package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaults(t *testing.T) {
	assert.Equal(t, "created_at DESC, id DESC", ArticleSort.Resolve("", ""))
	assert.Equal(t, "name ASC, id ASC", CategorySort.Resolve("", ""))
	assert.Equal(t, "name ASC, id ASC", TagSort.Resolve("", ""))
	assert.Equal(t, "created_at DESC, id DESC", UserSort.Resolve("", ""))
}

func TestResolveUnknownKeyFallsBack(t *testing.T) {
	assert.Equal(t, "created_at DESC, id DESC", ArticleSort.Resolve("nonsense", ""))
	assert.Equal(t, "name ASC, id ASC", TagSort.Resolve("; DROP TABLE tags", ""))
}

func TestResolveKeyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "title ASC, id ASC", ArticleSort.Resolve("Title", "asc"))
	assert.Equal(t, "created_at ASC, id ASC", ArticleSort.Resolve("CreatedAt", "asc"))
	assert.Equal(t, "full_name DESC, id DESC", UserSort.Resolve("FULLNAME", "desc"))
}

func TestResolveDirection(t *testing.T) {
	// anything not equal to desc means ascending
	assert.Equal(t, "title ASC, id ASC", ArticleSort.Resolve("title", "ascending"))
	assert.Equal(t, "title ASC, id ASC", ArticleSort.Resolve("title", "up"))
	assert.Equal(t, "title DESC, id DESC", ArticleSort.Resolve("title", "DESC"))
	// blank direction falls back to the rule's default
	assert.Equal(t, "title ASC, id ASC", CategorySort.Resolve("name", ""))
	assert.Equal(t, "created_at DESC, id DESC", ArticleSort.Resolve("createdat", ""))
}

func TestResolveIDHasNoTiebreaker(t *testing.T) {
	assert.Equal(t, "id DESC", TagSort.Resolve("id", "desc"))
	assert.Equal(t, "id ASC", UserSort.Resolve("id", "asc"))
}
