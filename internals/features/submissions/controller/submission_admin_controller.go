package controller

import (
	"encoding/json"
	"errors"
	"time"

	"journalku_backend/internals/configs"
	"journalku_backend/internals/constants"
	amodel "journalku_backend/internals/features/articles/model"
	jmodel "journalku_backend/internals/features/journals/model"
	"journalku_backend/internals/features/submissions/dto"
	"journalku_backend/internals/features/submissions/model"
	helper "journalku_backend/internals/helpers"
	"journalku_backend/internals/helpers/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionAdminController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewSubmissionAdminController(db *gorm.DB, blob storage.BlobService) *SubmissionAdminController {
	return &SubmissionAdminController{DB: db, Blob: blob}
}

// submissionOrderClause mapping sort key dari query ke kolom via whitelist.
func submissionOrderClause(p helper.Params) string {
	allowed := map[string]string{
		"submitted_at": "submission_submitted_at",
		"title":        "submission_title",
		"status":       "submission_status",
	}
	col, ok := allowed[p.SortBy]
	if !ok {
		col = "submission_submitted_at"
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

// 🟢 GET /api/a/submissions (semua, default terbaru dulu, bisa filter ?status=)
func (ctrl *SubmissionAdminController) GetAllSubmissions(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "submitted_at", "desc", helper.AdminOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SubmissionModel{})
	if status := c.Query("status"); status != "" {
		if !model.ValidStatus(status) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid submission status")
		}
		q = q.Where("submission_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var submissions []model.SubmissionModel
	if err := q.
		Order(submissionOrderClause(p)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&submissions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return helper.Success(c, "Submissions fetched successfully", fiber.Map{
		"submissions": dto.ToSubmissionResponses(submissions),
		"pagination":  helper.BuildMeta(total, p),
	})
}

// 🟡 PATCH /api/a/submissions/:id/status
// Default permisif; SUBMISSION_STRICT_TRANSITIONS mengaktifkan tabel transisi.
func (ctrl *SubmissionAdminController) UpdateSubmissionStatus(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !model.ValidStatus(req.SubmissionStatus) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission status")
	}

	var submission model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&submission, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}

	if !model.CanTransition(submission.SubmissionStatus, req.SubmissionStatus, configs.SubmissionStrictTransitions) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Status transition not allowed")
	}

	submission.SubmissionStatus = req.SubmissionStatus
	if req.SubmissionEditorNotes != nil {
		submission.SubmissionEditorNotes = req.SubmissionEditorNotes
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&submission).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update submission")
	}

	return helper.Success(c, "Submission status updated successfully", dto.ToSubmissionResponse(&submission))
}

// 🟢 POST /api/a/submissions/:id/publish
// Body JSON (issue_id, doi/pages opsional), atau multipart: "payload" +
// "final_pdf". Satu transaksi: buat article + tandai submission published.
func (ctrl *SubmissionAdminController) PublishSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	var req dto.PublishSubmissionRequest
	if payload := c.FormValue("payload"); payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid payload JSON")
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var submission model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&submission, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}
	if submission.SubmissionStatus == model.StatusPublished {
		return helper.Error(c, fiber.StatusConflict, "Submission is already published")
	}

	// Issue tujuan harus milik journal yang sama dengan submission.
	var issue jmodel.IssueModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&issue, "issue_id = ?", req.IssueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Issue not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issue")
	}
	if issue.IssueJournalID != submission.SubmissionJournalID {
		return helper.Error(c, fiber.StatusBadRequest, "Issue does not belong to the submission's journal")
	}

	// PDF final opsional; fallback ke manuskrip yang diunggah penulis.
	pdfKey := submission.SubmissionManuscriptURL
	if fh, ferr := c.FormFile("final_pdf"); ferr == nil && fh != nil {
		if ctrl.Blob == nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Storage service unavailable")
		}
		if !constants.IsManuscriptExt(fh.Filename) {
			return helper.Error(c, fiber.StatusBadRequest, "Final PDF must be a PDF or Word document")
		}
		key, uerr := ctrl.Blob.UploadFile(c.UserContext(), "articles", fh)
		if uerr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload final PDF")
		}
		pdfKey = &key
	}

	var article *amodel.ArticleModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		article = &amodel.ArticleModel{
			ArticleIssueID:     issue.IssueID,
			ArticleTitle:       submission.SubmissionTitle,
			ArticleAbstract:    submission.SubmissionAbstract,
			ArticleKeywords:    submission.SubmissionKeywords,
			ArticleAuthors:     submission.SubmissionAuthors,
			ArticlePDFURL:      pdfKey,
			ArticleDOI:         req.ArticleDOI,
			ArticlePages:       req.ArticlePages,
			ArticlePublishedAt: time.Now(),
		}
		if err := tx.Create(article).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create article")
		}

		note := "Published to journal"
		res := tx.Model(&model.SubmissionModel{}).
			Where("submission_id = ? AND submission_status <> ?", submission.SubmissionID, model.StatusPublished).
			Updates(map[string]interface{}{
				"submission_status":       model.StatusPublished,
				"submission_editor_notes": note,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update submission")
		}
		// Kena race dengan publish lain: batalkan article yang barusan dibuat.
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Submission is already published")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission published successfully", fiber.Map{
		"article_id":    article.ArticleID,
		"submission_id": submission.SubmissionID,
	})
}

// 🔴 DELETE /api/a/submissions/:id (hard delete)
func (ctrl *SubmissionAdminController) DeleteSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("submission_id = ?", submissionID).
		Delete(&model.SubmissionModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete submission")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Submission not found")
	}

	return helper.Success(c, "Submission deleted successfully", nil)
}
