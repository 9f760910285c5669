package route

import (
	"journalku_backend/internals/features/submissions/controller"
	"journalku_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubmissionAdminRoutes(admin fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewSubmissionAdminController(db, blob)

	submissions := admin.Group("/submissions")
	submissions.Get("/", ctrl.GetAllSubmissions)
	submissions.Patch("/:id/status", ctrl.UpdateSubmissionStatus)
	submissions.Post("/:id/publish", ctrl.PublishSubmission)
	submissions.Delete("/:id", ctrl.DeleteSubmission)
}
