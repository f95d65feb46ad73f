package services

import (
	"time"

	"newsapp-api/export"
	"newsapp-api/models"
	"newsapp-api/repositories"

	"github.com/xuri/excelize/v2"
)

// ReportTypes lists the entity types a report can cover, in the order sheets
// and archive entries are produced.
var ReportTypes = []string{"users", "categories", "tags", "articles", "bookmarks", "readhistory"}

// ReportSelection bundles the requested entity types with one filter per
// type. Unrecognized type names simply never match anything.
type ReportSelection struct {
	Types       map[string]bool
	Users       models.UserFilter
	Categories  models.CategoryFilter
	Tags        models.TagFilter
	Articles    models.ArticleFilter
	Bookmarks   models.BookmarkFilter
	ReadHistory models.ReadHistoryFilter
}

func (s ReportSelection) has(t string) bool {
	return s.Types[t]
}

type ReportService interface {
	ExportExcel(sel ReportSelection) (*excelize.File, error)
	ExportZip(sel ReportSelection) ([]byte, error)
}

type reportService struct {
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	articleRepo  repositories.ArticleRepository
	bookmarkRepo repositories.BookmarkRepository
	readRepo     repositories.ReadHistoryRepository
}

func NewReportService(
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	articleRepo repositories.ArticleRepository,
	bookmarkRepo repositories.BookmarkRepository,
	readRepo repositories.ReadHistoryRepository,
) ReportService {
	return &reportService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		articleRepo:  articleRepo,
		bookmarkRepo: bookmarkRepo,
		readRepo:     readRepo,
	}
}

// ExportExcel writes one worksheet per selected type. Sheets are written
// incrementally; a fetch failure partway through surfaces as an error with
// the earlier sheets already in the workbook.
func (s *reportService) ExportExcel(sel ReportSelection) (*excelize.File, error) {
	f := excelize.NewFile()
	wrote := false

	if sel.has("users") {
		users, err := s.userRepo.GetAllFiltered(sel.Users)
		if err != nil {
			return nil, err
		}
		cols := export.UserColumns()
		if err := export.WriteSheet(f, "Users", export.Headers(cols), export.Rows(users, cols)); err != nil {
			return nil, err
		}
		wrote = true
	}

	if sel.has("categories") {
		categories, err := s.categoryRepo.GetAllFiltered(sel.Categories)
		if err != nil {
			return nil, err
		}
		cols := export.CategoryColumns()
		if err := export.WriteSheet(f, "Categories", export.Headers(cols), export.Rows(categories, cols)); err != nil {
			return nil, err
		}
		wrote = true
	}

	if sel.has("tags") {
		tags, err := s.tagRepo.GetAllFiltered(sel.Tags)
		if err != nil {
			return nil, err
		}
		cols := export.TagColumns()
		if err := export.WriteSheet(f, "Tags", export.Headers(cols), export.Rows(tags, cols)); err != nil {
			return nil, err
		}
		wrote = true
	}

	if sel.has("articles") {
		articles, err := s.articleRepo.GetAllFiltered(sel.Articles)
		if err != nil {
			return nil, err
		}
		cols := export.ArticleColumns()
		if err := export.WriteSheet(f, "Articles", export.Headers(cols), export.Rows(articles, cols)); err != nil {
			return nil, err
		}
		wrote = true
	}

	if sel.has("bookmarks") {
		bookmarks, err := s.bookmarkRepo.GetAllFiltered(sel.Bookmarks)
		if err != nil {
			return nil, err
		}
		cols := export.BookmarkColumns()
		if err := export.WriteSheet(f, "Bookmarks", export.Headers(cols), export.Rows(bookmarks, cols)); err != nil {
			return nil, err
		}
		wrote = true
	}

	if sel.has("readhistory") {
		entries, err := s.readRepo.GetAllFiltered(sel.ReadHistory)
		if err != nil {
			return nil, err
		}
		cols := export.ReadHistoryColumns()
		if err := export.WriteSheet(f, "ReadHistory", export.Headers(cols), export.Rows(entries, cols)); err != nil {
			return nil, err
		}
		wrote = true
	}

	if wrote {
		// drop excelize's default sheet once real content exists
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ExportZip bundles one CSV per selected type. Zero recognized types is a
// caller error, not an empty archive.
func (s *reportService) ExportZip(sel ReportSelection) ([]byte, error) {
	stamp := time.Now().UTC().Format("20060102_150405")
	var entries []export.ZipEntry

	if sel.has("users") {
		users, err := s.userRepo.GetAllFiltered(sel.Users)
		if err != nil {
			return nil, err
		}
		csv := export.CSV(users, export.UserColumns())
		entries = append(entries, export.ZipEntry{Name: "users_" + stamp + ".csv", Data: []byte(csv)})
	}

	if sel.has("categories") {
		categories, err := s.categoryRepo.GetAllFiltered(sel.Categories)
		if err != nil {
			return nil, err
		}
		csv := export.CSV(categories, export.CategoryColumns())
		entries = append(entries, export.ZipEntry{Name: "categories_" + stamp + ".csv", Data: []byte(csv)})
	}

	if sel.has("tags") {
		tags, err := s.tagRepo.GetAllFiltered(sel.Tags)
		if err != nil {
			return nil, err
		}
		csv := export.CSV(tags, export.TagColumns())
		entries = append(entries, export.ZipEntry{Name: "tags_" + stamp + ".csv", Data: []byte(csv)})
	}

	if sel.has("articles") {
		articles, err := s.articleRepo.GetAllFiltered(sel.Articles)
		if err != nil {
			return nil, err
		}
		csv := export.CSV(articles, export.ArticleColumns())
		entries = append(entries, export.ZipEntry{Name: "articles_" + stamp + ".csv", Data: []byte(csv)})
	}

	if sel.has("bookmarks") {
		bookmarks, err := s.bookmarkRepo.GetAllFiltered(sel.Bookmarks)
		if err != nil {
			return nil, err
		}
		csv := export.CSV(bookmarks, export.BookmarkColumns())
		entries = append(entries, export.ZipEntry{Name: "bookmarks_" + stamp + ".csv", Data: []byte(csv)})
	}

	if sel.has("readhistory") {
		entries2, err := s.readRepo.GetAllFiltered(sel.ReadHistory)
		if err != nil {
			return nil, err
		}
		csv := export.CSV(entries2, export.ReadHistoryColumns())
		entries = append(entries, export.ZipEntry{Name: "readhistory_" + stamp + ".csv", Data: []byte(csv)})
	}

	if len(entries) == 0 {
		return nil, models.ErrorValidation{Message: "No valid report 'types' specified. Use one of: users, categories, tags, articles, bookmarks, readhistory."}
	}

	return export.Zip(entries)
}
