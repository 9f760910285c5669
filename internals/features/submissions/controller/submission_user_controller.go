package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"journalku_backend/internals/constants"
	jmodel "journalku_backend/internals/features/journals/model"
	"journalku_backend/internals/features/submissions/dto"
	"journalku_backend/internals/features/submissions/model"
	helper "journalku_backend/internals/helpers"
	"journalku_backend/internals/helpers/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewSubmissionController(db *gorm.DB, blob storage.BlobService) *SubmissionController {
	return &SubmissionController{DB: db, Blob: blob}
}

// parseCreateRequest membaca body JSON biasa, atau — untuk multipart dengan
// file manuskrip — field form "payload" yang berisi JSON yang sama.
func parseCreateRequest(c *fiber.Ctx) (*dto.CreateSubmissionRequest, error) {
	var req dto.CreateSubmissionRequest

	if payload := c.FormValue("payload"); payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payload JSON")
		}
		return &req, nil
	}

	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return &req, nil
}

// 🟢 POST /api/u/submissions
// Body JSON, atau multipart: "payload" (JSON) + "manuscript" (file, opsional)
// + "supplementary" (beberapa file, opsional).
func (ctrl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	req, err := parseCreateRequest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Journal tujuan harus ada.
	var journal jmodel.JournalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&journal, "journal_id = ?", req.SubmissionJournalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Journal not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch journal")
	}

	submission := req.ToModel(userID)

	// Upload manuskrip kalau dilampirkan.
	if fh, ferr := c.FormFile("manuscript"); ferr == nil && fh != nil {
		if ctrl.Blob == nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Storage service unavailable")
		}
		if !constants.IsManuscriptExt(fh.Filename) {
			return helper.Error(c, fiber.StatusBadRequest, "Manuscript must be a PDF or Word document")
		}
		key, uerr := ctrl.Blob.UploadFile(c.UserContext(), "manuscripts", fh)
		if uerr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload manuscript")
		}
		submission.SubmissionManuscriptURL = &key
	}

	// File pendukung opsional (multipart key "supplementary").
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		files := form.File["supplementary"]
		if len(files) > 0 {
			if ctrl.Blob == nil {
				return helper.Error(c, fiber.StatusServiceUnavailable, "Storage service unavailable")
			}
			uploaded := make([]dto.SupplementaryFile, 0, len(files))
			for _, fh := range files {
				key, uerr := ctrl.Blob.UploadFile(c.UserContext(), "supplementary", fh)
				if uerr != nil {
					return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload supplementary file")
				}
				uploaded = append(uploaded, dto.SupplementaryFile{Name: fh.Filename, Key: key})
			}
			raw, _ := json.Marshal(uploaded)
			submission.SubmissionSupplementaryFiles = datatypes.JSON(raw)
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(submission).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create submission")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission created successfully", dto.ToSubmissionResponse(submission))
}

// 🟢 GET /api/u/submissions (milik user, terbaru dulu, + projection journal)
func (ctrl *SubmissionController) GetMySubmissions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var submissions []model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("submission_user_id = ?", userID).
		Order("submission_submitted_at DESC").
		Find(&submissions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	responses := dto.ToSubmissionResponses(submissions)
	ctrl.attachJournalProjection(c, submissions, responses)

	return helper.Success(c, "Submissions fetched successfully", responses)
}

// 🟢 GET /api/u/submissions/:id (hanya milik sendiri; punya orang lain = 404)
func (ctrl *SubmissionController) GetMySubmissionByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	var submission model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&submission, "submission_id = ? AND submission_user_id = ?", submissionID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}

	return helper.Success(c, "Submission fetched successfully", dto.ToSubmissionResponse(&submission))
}

// attachJournalProjection mengisi journal_title/journal_slug di tiap response
// dengan satu query IN, bukan N+1.
func (ctrl *SubmissionController) attachJournalProjection(c *fiber.Ctx, submissions []model.SubmissionModel, responses []dto.SubmissionResponse) {
	if len(submissions) == 0 {
		return
	}

	seen := make(map[uuid.UUID]bool, len(submissions))
	ids := make([]uuid.UUID, 0, len(submissions))
	for i := range submissions {
		id := submissions[i].SubmissionJournalID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	var journals []jmodel.JournalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("journal_id IN ?", ids).
		Find(&journals).Error; err != nil {
		return // projection bersifat opsional; listing tetap jalan
	}

	byID := make(map[uuid.UUID]*jmodel.JournalModel, len(journals))
	for i := range journals {
		byID[journals[i].JournalID] = &journals[i]
	}
	for i := range responses {
		if j := byID[responses[i].SubmissionJournalID]; j != nil {
			responses[i].JournalTitle = j.JournalTitle
			responses[i].JournalSlug = strings.TrimSpace(j.JournalSlug)
		}
	}
}
