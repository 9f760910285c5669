package controller

import (
	"errors"

	"journalku_backend/internals/features/journals/dto"
	"journalku_backend/internals/features/journals/model"
	helper "journalku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueAdminController struct {
	DB *gorm.DB
}

func NewIssueAdminController(db *gorm.DB) *IssueAdminController {
	return &IssueAdminController{DB: db}
}

// clearOtherCurrentIssues: jaga invariant "maksimal satu issue current per journal".
func clearOtherCurrentIssues(tx *gorm.DB, journalID, exceptIssueID uuid.UUID) error {
	return tx.Model(&model.IssueModel{}).
		Where("issue_journal_id = ? AND issue_id <> ?", journalID, exceptIssueID).
		Update("issue_is_current", false).Error
}

// 🟢 POST /api/a/issues
func (ctrl *IssueAdminController) CreateIssue(c *fiber.Ctx) error {
	var req dto.IssueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	issue := req.ToModel()

	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var journalCount int64
		if err := tx.Model(&model.JournalModel{}).
			Where("journal_id = ?", req.IssueJournalID).
			Count(&journalCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify journal")
		}
		if journalCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Journal not found")
		}

		// cek duplikat (journal, volume, nomor)
		var cnt int64
		if err := tx.Model(&model.IssueModel{}).
			Where("issue_journal_id = ? AND issue_volume = ? AND issue_number = ?",
				req.IssueJournalID, req.IssueVolume, req.IssueNumber).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate issue")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Issue with this volume and number already exists")
		}

		if err := tx.Create(issue).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create issue")
		}

		if issue.IssueIsCurrent {
			if err := clearOtherCurrentIssues(tx, issue.IssueJournalID, issue.IssueID); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update current issue flag")
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Issue created successfully", dto.ToIssueResponse(issue))
}

// 🟡 PUT /api/a/issues/:id
func (ctrl *IssueAdminController) UpdateIssue(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	var req dto.IssueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var issue model.IssueModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&issue, "issue_id = ?", issueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Issue not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch issue")
		}

		// Pindah journal: journal tujuan harus ada.
		if req.IssueJournalID != issue.IssueJournalID {
			var journalCount int64
			if err := tx.Model(&model.JournalModel{}).
				Where("journal_id = ?", req.IssueJournalID).
				Count(&journalCount).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify journal")
			}
			if journalCount == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Journal not found")
			}
		}

		// (journal, volume, nomor) berubah: cek duplikat seperti saat create.
		if req.IssueJournalID != issue.IssueJournalID ||
			req.IssueVolume != issue.IssueVolume ||
			req.IssueNumber != issue.IssueNumber {
			var cnt int64
			if err := tx.Model(&model.IssueModel{}).
				Where("issue_journal_id = ? AND issue_volume = ? AND issue_number = ? AND issue_id <> ?",
					req.IssueJournalID, req.IssueVolume, req.IssueNumber, issueID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate issue")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Issue with this volume and number already exists")
			}
		}

		req.ApplyToModel(&issue)

		if err := tx.Save(&issue).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update issue")
		}

		if issue.IssueIsCurrent {
			if err := clearOtherCurrentIssues(tx, issue.IssueJournalID, issue.IssueID); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update current issue flag")
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Issue updated successfully", dto.ToIssueResponse(&issue))
}

// 🔴 DELETE /api/a/issues/:id (ikut menghapus articles di bawahnya)
func (ctrl *IssueAdminController) DeleteIssue(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var issue model.IssueModel
		if err := tx.First(&issue, "issue_id = ?", issueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Issue not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch issue")
		}

		if err := tx.Exec("DELETE FROM articles WHERE article_issue_id = ?", issueID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete issue articles")
		}
		if err := tx.Delete(&issue).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete issue")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Issue deleted successfully", nil)
}
