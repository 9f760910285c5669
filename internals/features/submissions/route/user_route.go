package route

import (
	"journalku_backend/internals/features/submissions/controller"
	"journalku_backend/internals/helpers/storage"
	"journalku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubmissionUserRoutes(user fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewSubmissionController(db, blob)

	// ✉️ Group: /submissions (milik user login)
	submissions := user.Group("/submissions")
	submissions.Post("/", middlewares.SubmitRateLimiter(), ctrl.CreateSubmission)
	submissions.Get("/", ctrl.GetMySubmissions)
	submissions.Get("/:id", ctrl.GetMySubmissionByID)
}
