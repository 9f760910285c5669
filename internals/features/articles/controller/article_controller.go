package controller

import (
	"encoding/json"
	"errors"

	"journalku_backend/internals/features/articles/dto"
	"journalku_backend/internals/features/articles/model"
	"journalku_backend/internals/features/articles/service"
	jdto "journalku_backend/internals/features/journals/dto"
	jmodel "journalku_backend/internals/features/journals/model"
	helper "journalku_backend/internals/helpers"
	"journalku_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewArticleController(db *gorm.DB, blob storage.BlobService) *ArticleController {
	return &ArticleController{DB: db, Blob: blob}
}

// 🟢 GET /api/public/issues/:id/articles
func (ctrl *ArticleController) GetIssueArticles(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	var articles []model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("article_issue_id = ?", issueID).
		Order("article_created_at ASC").
		Find(&articles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch articles")
	}

	return helper.Success(c, "Articles fetched successfully", dto.ToArticleResponses(articles))
}

// 🟢 GET /api/public/articles (paginated, terbit terbaru dulu)
func (ctrl *ArticleController) GetArticles(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "published_at", "desc", helper.DefaultOpts)

	// Sort key dari query di-mapping ke kolom lewat whitelist.
	allowedSort := map[string]string{
		"published_at": "article_published_at",
		"title":        "article_title",
		"views":        "article_views",
	}
	sortCol, ok := allowedSort[p.SortBy]
	if !ok {
		sortCol = "article_published_at"
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ArticleModel{}).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count articles")
	}

	var articles []model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order(sortCol + " " + dir).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&articles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch articles")
	}

	return helper.Success(c, "Articles fetched successfully", fiber.Map{
		"articles":   dto.ToArticleResponses(articles),
		"pagination": helper.BuildMeta(total, p),
	})
}

// 🟢 GET /api/public/articles/:id (detail + projection issue & journal)
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	article, issue, journal, err := ctrl.loadArticleContext(c, articleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Article fetched successfully", fiber.Map{
		"article": dto.ToArticleResponse(article),
		"issue":   jdto.ToIssueResponse(issue),
		"journal": jdto.ToJournalResponse(journal),
	})
}

// 🟢 GET /api/public/articles/search?q=
func (ctrl *ArticleController) SearchArticles(c *fiber.Ctx) error {
	q := c.Query("q")

	// Corpus diurutkan terbit terbaru dulu; service.Search mempertahankan
	// urutan itu dan memotong di 10 hasil.
	var corpus []model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("article_published_at DESC").
		Find(&corpus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to search articles")
	}

	results := service.Search(q, corpus)
	return helper.Success(c, "Search completed", dto.ToArticleResponses(results))
}

// 🟢 GET /api/public/articles/:id/citations?style=
// Tanpa ?style= → keempat gaya sekaligus.
func (ctrl *ArticleController) GetCitations(c *fiber.Ctx) error {
	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	article, issue, journal, err := ctrl.loadArticleContext(c, articleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	meta := buildCitationMeta(article, issue, journal)

	styleParam := c.Query("style")
	if styleParam == "" {
		return helper.Success(c, "Citations generated successfully", service.FormatAllCitations(meta))
	}

	citation, err := service.FormatCitation(meta, service.CitationStyle(styleParam))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown citation style")
	}
	return helper.Success(c, "Citation generated successfully", fiber.Map{
		"style":    styleParam,
		"citation": citation,
	})
}

// 🟢 POST /api/public/articles/:id/pdf-url
// Signed URL berumur pendek; key dicek anti path traversal.
func (ctrl *ArticleController) GetArticlePDFURL(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Storage service unavailable")
	}

	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	var article model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&article, "article_id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch article")
	}
	if article.ArticlePDFURL == nil || *article.ArticlePDFURL == "" {
		return helper.Error(c, fiber.StatusNotFound, "Article has no PDF")
	}
	if !storage.IsSafeKey(*article.ArticlePDFURL) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid file path")
	}

	signedURL, err := ctrl.Blob.PresignGet(c.UserContext(), *article.ArticlePDFURL, storage.SignedURLTTL)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Signed URL generated successfully", fiber.Map{
		"url":        signedURL,
		"expires_in": int(storage.SignedURLTTL.Seconds()),
	})
}

// 🟢 POST /api/public/articles/:id/views
func (ctrl *ArticleController) IncrementViews(c *fiber.Ctx) error {
	return ctrl.incrementCounter(c, "article_views")
}

// 🟢 POST /api/public/articles/:id/downloads
func (ctrl *ArticleController) IncrementDownloads(c *fiber.Ctx) error {
	return ctrl.incrementCounter(c, "article_downloads")
}

// Increment atomik di DB, bukan read-modify-write.
func (ctrl *ArticleController) incrementCounter(c *fiber.Ctx, column string) error {
	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ArticleModel{}).
		Where("article_id = ?", articleID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update counter")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Article not found")
	}

	return helper.Success(c, "Counter updated successfully", nil)
}

// loadArticleContext mengambil article + issue + journal induknya.
// Error dikembalikan sebagai *fiber.Error supaya bisa lewat FromFiberError.
func (ctrl *ArticleController) loadArticleContext(c *fiber.Ctx, articleID uuid.UUID) (*model.ArticleModel, *jmodel.IssueModel, *jmodel.JournalModel, error) {
	var article model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&article, "article_id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, fiber.NewError(fiber.StatusNotFound, "Article not found")
		}
		return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch article")
	}

	var issue jmodel.IssueModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&issue, "issue_id = ?", article.ArticleIssueID).Error; err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch issue")
	}

	var journal jmodel.JournalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&journal, "journal_id = ?", issue.IssueJournalID).Error; err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch journal")
	}

	return &article, &issue, &journal, nil
}

func buildCitationMeta(article *model.ArticleModel, issue *jmodel.IssueModel, journal *jmodel.JournalModel) service.CitationMeta {
	var authors []dto.Author
	if article.ArticleAuthors != nil {
		_ = json.Unmarshal(article.ArticleAuthors, &authors)
	}
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}

	// Tahun sitasi ikut tanggal terbit article, bukan tahun issue
	// (article Desember 2023 di issue 2024 tetap disitasi 2023).
	meta := service.CitationMeta{
		Title:       article.ArticleTitle,
		AuthorNames: names,
		Year:        article.ArticlePublishedAt.Year(),
		Journal:     journal.JournalTitle,
		Volume:      issue.IssueVolume,
		Issue:       issue.IssueNumber,
	}
	if article.ArticlePages != nil {
		meta.Pages = *article.ArticlePages
	}
	if article.ArticleDOI != nil {
		meta.DOI = *article.ArticleDOI
	}
	return meta
}
