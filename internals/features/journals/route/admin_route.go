package route

import (
	"journalku_backend/internals/features/journals/controller"
	"journalku_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func JournalAdminRoutes(admin fiber.Router, db *gorm.DB, blob storage.BlobService) {
	journalCtrl := controller.NewJournalAdminController(db, blob)
	journals := admin.Group("/journals")
	journals.Post("/", journalCtrl.CreateJournal)
	journals.Put("/:id", journalCtrl.UpdateJournal)
	journals.Post("/:id/cover", journalCtrl.UploadJournalCover)
	journals.Delete("/:id", journalCtrl.DeleteJournal)

	issueCtrl := controller.NewIssueAdminController(db)
	issues := admin.Group("/issues")
	issues.Post("/", issueCtrl.CreateIssue)
	issues.Put("/:id", issueCtrl.UpdateIssue)
	issues.Delete("/:id", issueCtrl.DeleteIssue)
}
