package controller

import (
	"errors"

	"journalku_backend/internals/features/journals/dto"
	"journalku_backend/internals/features/journals/model"
	helper "journalku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalController struct {
	DB *gorm.DB
}

func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{DB: db}
}

// 🟢 GET /api/public/journals
func (ctrl *JournalController) GetJournals(c *fiber.Ctx) error {
	var journals []model.JournalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("journal_created_at ASC").
		Find(&journals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch journals")
	}

	return helper.Success(c, "Journals fetched successfully", dto.ToJournalResponses(journals))
}

// 🟢 GET /api/public/journals/:slug
func (ctrl *JournalController) GetJournalBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var journal model.JournalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&journal, "journal_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Journal not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch journal")
	}

	return helper.Success(c, "Journal fetched successfully", dto.ToJournalResponse(&journal))
}

// 🟢 GET /api/public/journals/:id/issues
func (ctrl *JournalController) GetJournalIssues(c *fiber.Ctx) error {
	journalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid journal ID")
	}

	var issues []model.IssueModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("issue_journal_id = ?", journalID).
		Order("issue_year DESC").
		Order("issue_number DESC").
		Find(&issues).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issues")
	}

	return helper.Success(c, "Issues fetched successfully", dto.ToIssueResponses(issues))
}
