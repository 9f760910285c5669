package controller

import (
	"errors"

	"journalku_backend/internals/constants"
	"journalku_backend/internals/features/articles/dto"
	"journalku_backend/internals/features/articles/model"
	jmodel "journalku_backend/internals/features/journals/model"
	helper "journalku_backend/internals/helpers"
	"journalku_backend/internals/helpers/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleAdminController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewArticleAdminController(db *gorm.DB, blob storage.BlobService) *ArticleAdminController {
	return &ArticleAdminController{DB: db, Blob: blob}
}

// 🟢 POST /api/a/articles (create langsung, tanpa lewat submission)
func (ctrl *ArticleAdminController) CreateArticle(c *fiber.Ctx) error {
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Issue harus ada; article tidak boleh menggantung.
	var issue jmodel.IssueModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&issue, "issue_id = ?", req.ArticleIssueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Issue not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issue")
	}

	article := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(article).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create article")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Article created successfully", dto.ToArticleResponse(article))
}

// 🟡 PUT /api/a/articles/:id
func (ctrl *ArticleAdminController) UpdateArticle(c *fiber.Ctx) error {
	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var article model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&article, "article_id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch article")
	}

	if req.ArticleIssueID != article.ArticleIssueID {
		var issue jmodel.IssueModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			First(&issue, "issue_id = ?", req.ArticleIssueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Issue not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issue")
		}
	}

	req.ApplyToModel(&article)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&article).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update article")
	}

	return helper.Success(c, "Article updated successfully", dto.ToArticleResponse(&article))
}

// 🟢 POST /api/a/articles/:id/pdf (multipart "file")
func (ctrl *ArticleAdminController) UploadArticlePDF(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Storage service unavailable")
	}

	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "PDF file is required")
	}
	if !constants.IsManuscriptExt(fh.Filename) {
		return helper.Error(c, fiber.StatusBadRequest, "File must be a PDF or Word document")
	}

	var article model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&article, "article_id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch article")
	}

	key, err := ctrl.Blob.UploadFile(c.UserContext(), "articles", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload PDF")
	}

	article.ArticlePDFURL = &key
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&article).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update article")
	}

	return helper.Success(c, "PDF uploaded successfully", dto.ToArticleResponse(&article))
}

// 🔴 DELETE /api/a/articles/:id
func (ctrl *ArticleAdminController) DeleteArticle(c *fiber.Ctx) error {
	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("article_id = ?", articleID).
		Delete(&model.ArticleModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete article")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Article not found")
	}

	return helper.Success(c, "Article deleted successfully", nil)
}
