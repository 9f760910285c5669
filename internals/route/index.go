// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"journalku_backend/internals/constants"
	authMiddleware "journalku_backend/internals/middlewares/auth"

	articleRoute "journalku_backend/internals/features/articles/route"
	journalRoute "journalku_backend/internals/features/journals/route"
	submissionRoute "journalku_backend/internals/features/submissions/route"
	"journalku_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// Object storage dibuat sekali dan dibagikan ke semua controller.
	// Gagal init bukan fatal: endpoint non-file tetap jalan, endpoint file
	// balas 503.
	var blob storage.BlobService
	if svc, err := storage.NewBlobServiceFromEnv(); err != nil {
		log.Printf("[WARN] Object storage disabled: %v", err)
	} else {
		blob = svc
	}

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)

	// ADMIN → JWT + role admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("admin area"), constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Journal routes...")
	journalRoute.JournalPublicRoutes(public, db)
	journalRoute.JournalAdminRoutes(admin, db, blob)

	log.Println("[INFO] Mounting Article routes...")
	articleRoute.ArticlePublicRoutes(public, db, blob)
	articleRoute.ArticleAdminRoutes(admin, db, blob)

	log.Println("[INFO] Mounting Submission routes...")
	submissionRoute.SubmissionUserRoutes(user, db, blob)
	submissionRoute.SubmissionAdminRoutes(admin, db, blob)
}
