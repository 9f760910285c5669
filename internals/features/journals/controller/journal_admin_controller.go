package controller

import (
	"errors"

	"journalku_backend/internals/constants"
	"journalku_backend/internals/features/journals/dto"
	"journalku_backend/internals/features/journals/model"
	helper "journalku_backend/internals/helpers"
	"journalku_backend/internals/helpers/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalAdminController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewJournalAdminController(db *gorm.DB, blob storage.BlobService) *JournalAdminController {
	return &JournalAdminController{DB: db, Blob: blob}
}

// 🟢 POST /api/a/journals
func (ctrl *JournalAdminController) CreateJournal(c *fiber.Ctx) error {
	var req dto.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	journal := req.ToModel()

	base := helper.Slugify(req.JournalTitle, 100)
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "journals", "journal_slug", base, nil, 100)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}
	journal.JournalSlug = slug

	if err := ctrl.DB.WithContext(c.UserContext()).Create(journal).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create journal")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Journal created successfully", dto.ToJournalResponse(journal))
}

// 🟡 PUT /api/a/journals/:id
func (ctrl *JournalAdminController) UpdateJournal(c *fiber.Ctx) error {
	journalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid journal ID")
	}

	var req dto.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var journal model.JournalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&journal, "journal_id = ?", journalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Journal not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch journal")
	}

	// Slug sengaja tidak diubah: issue & URL lama sudah merujuk ke sana.
	req.ApplyToModel(&journal)

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&journal).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update journal")
	}

	return helper.Success(c, "Journal updated successfully", dto.ToJournalResponse(&journal))
}

// 🟢 POST /api/a/journals/:id/cover (multipart "image")
func (ctrl *JournalAdminController) UploadJournalCover(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Storage service unavailable")
	}

	journalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid journal ID")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Image file is required")
	}
	if !constants.IsImageExt(fh.Filename) {
		return helper.Error(c, fiber.StatusBadRequest, "Cover must be an image file")
	}

	var journal model.JournalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&journal, "journal_id = ?", journalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Journal not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch journal")
	}

	key, err := ctrl.Blob.UploadFile(c.UserContext(), "covers", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload cover image")
	}

	journal.JournalImageURL = &key
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&journal).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update journal")
	}

	return helper.Success(c, "Cover uploaded successfully", dto.ToJournalResponse(&journal))
}

// 🔴 DELETE /api/a/journals/:id (ikut menghapus issues + articles di bawahnya)
func (ctrl *JournalAdminController) DeleteJournal(c *fiber.Ctx) error {
	journalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid journal ID")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var journal model.JournalModel
		if err := tx.First(&journal, "journal_id = ?", journalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Journal not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch journal")
		}

		if err := tx.Exec(`
			DELETE FROM articles
			WHERE article_issue_id IN (SELECT issue_id FROM issues WHERE issue_journal_id = ?)
		`, journalID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete journal articles")
		}
		if err := tx.Where("issue_journal_id = ?", journalID).Delete(&model.IssueModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete journal issues")
		}
		if err := tx.Delete(&journal).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete journal")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Journal deleted successfully", nil)
}
