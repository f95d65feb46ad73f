package handlers

import (
	"strconv"
	"strings"
	"time"

	"newsapp-api/models"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate accepts ISO-8601 date or date-time. Unparseable input is treated
// as absent rather than rejected.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func dateQuery(c *gin.Context, key string) *time.Time {
	return parseDate(c.Query(key))
}

func paramID(c *gin.Context, key string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(key), 10, 64)
	return uint(id), err
}

// clampPaging bounds page to >=1 and pageSize to [1,200] before the pager
// sees them.
func clampPaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return page, pageSize
}

func buildArticleFilter(c *gin.Context) (models.ArticleFilter, error) {
	var f models.ArticleFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		return f, err
	}
	f.Page, f.PageSize = clampPaging(f.Page, f.PageSize)
	f.CreatedFrom = dateQuery(c, "createdFrom")
	f.CreatedTo = dateQuery(c, "createdTo")
	return f, nil
}

func buildCategoryFilter(c *gin.Context) (models.CategoryFilter, error) {
	var f models.CategoryFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		return f, err
	}
	f.Page, f.PageSize = clampPaging(f.Page, f.PageSize)
	return f, nil
}

func buildTagFilter(c *gin.Context) (models.TagFilter, error) {
	var f models.TagFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		return f, err
	}
	f.Page, f.PageSize = clampPaging(f.Page, f.PageSize)
	return f, nil
}

func buildUserFilter(c *gin.Context) (models.UserFilter, error) {
	var f models.UserFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		return f, err
	}
	f.Page, f.PageSize = clampPaging(f.Page, f.PageSize)
	f.CreatedFrom = dateQuery(c, "createdFrom")
	f.CreatedTo = dateQuery(c, "createdTo")
	return f, nil
}

func buildBookmarkFilter(c *gin.Context) (models.BookmarkFilter, error) {
	var f models.BookmarkFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		return f, err
	}
	f.CreatedFrom = dateQuery(c, "createdFrom")
	f.CreatedTo = dateQuery(c, "createdTo")
	return f, nil
}

func buildReadHistoryFilter(c *gin.Context) (models.ReadHistoryFilter, error) {
	var f models.ReadHistoryFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		return f, err
	}
	f.ReadFrom = dateQuery(c, "readFrom")
	f.ReadTo = dateQuery(c, "readTo")
	return f, nil
}

// parseReportTypes turns the comma-separated types param into a set,
// defaulting to all report types when the param is absent or empty.
func parseReportTypes(raw string) map[string]bool {
	want := make(map[string]bool)
	if strings.TrimSpace(raw) == "" {
		for _, t := range services.ReportTypes {
			want[t] = true
		}
		return want
	}
	for _, part := range strings.Split(raw, ",") {
		if t := strings.ToLower(strings.TrimSpace(part)); t != "" {
			want[t] = true
		}
	}
	return want
}

func exportStamp() string {
	return time.Now().UTC().Format("20060102_150405")
}
