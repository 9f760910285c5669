package route

import (
	"journalku_backend/internals/features/journals/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func JournalPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJournalController(db)

	// 📚 Group: /journals
	journals := public.Group("/journals")
	journals.Get("/", ctrl.GetJournals)               // 📄 Daftar semua journal
	journals.Get("/:slug", ctrl.GetJournalBySlug)     // 🔍 Detail journal by slug
	journals.Get("/:id/issues", ctrl.GetJournalIssues) // 🗂 Issues milik satu journal
}
