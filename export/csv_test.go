package export

import (
	"testing"

	"newsapp-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain", Escape("plain"))
	assert.Equal(t, `"a,b"`, Escape("a,b"))
	assert.Equal(t, `"say ""hi"""`, Escape(`say "hi"`))
	assert.Equal(t, "\"line1\nline2\"", Escape("line1\nline2"))
	assert.Equal(t, "\"cr\rhere\"", Escape("cr\rhere"))
	assert.Equal(t, "", Escape(""))
}

func TestCSVHeaderAndRows(t *testing.T) {
	name := `Hello, "World"`
	tags := []models.Tag{
		{ID: 1, Name: name},
		{ID: 2, Name: "go"},
	}

	out := CSV(tags, TagColumns())

	expected := "Id,Name\n" +
		`1,"Hello, ""World"""` + "\n" +
		"2,go\n"
	assert.Equal(t, expected, out)
}

func TestCSVEmptyRowsStillHasHeader(t *testing.T) {
	out := CSV(nil, CategoryColumns())
	assert.Equal(t, "Id,Name,Description\n", out)
}

func TestNilPointersRenderEmpty(t *testing.T) {
	users := []models.User{{ID: 7, Role: "User"}}
	out := CSV(users, UserColumns())

	require.Contains(t, out, "7,,,User,")
}

func TestArticleColumnsJoinTagsAndRelations(t *testing.T) {
	author := "Jane Roe"
	article := models.Article{
		ID:       3,
		Title:    "Title",
		Author:   &models.User{FullName: &author},
		Category: &models.Category{Name: "Tech"},
		Tags:     []models.Tag{{Name: "go"}, {Name: "api"}},
	}

	rows := Rows([]models.Article{article}, ArticleColumns())
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Roe", rows[0][2])
	assert.Equal(t, "Tech", rows[0][3])
	assert.Equal(t, "go|api", rows[0][5])

	bare := models.Article{ID: 4, Title: "Bare"}
	rows = Rows([]models.Article{bare}, ArticleColumns())
	assert.Equal(t, "", rows[0][2])
	assert.Equal(t, "", rows[0][3])
	assert.Equal(t, "", rows[0][5])
}
