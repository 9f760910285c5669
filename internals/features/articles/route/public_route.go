package route

import (
	"journalku_backend/internals/features/articles/controller"
	"journalku_backend/internals/helpers/storage"
	"journalku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ArticlePublicRoutes(public fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewArticleController(db, blob)

	public.Get("/issues/:id/articles", ctrl.GetIssueArticles) // 🗂 Articles milik satu issue

	// 📄 Group: /articles — /search didaftarkan sebelum /:id
	articles := public.Group("/articles")
	articles.Get("/", ctrl.GetArticles)
	articles.Get("/search", ctrl.SearchArticles)
	articles.Get("/:id", ctrl.GetArticleByID)
	articles.Get("/:id/citations", ctrl.GetCitations)
	articles.Post("/:id/pdf-url", ctrl.GetArticlePDFURL)
	articles.Post("/:id/views", middlewares.CounterRateLimiter(), ctrl.IncrementViews)
	articles.Post("/:id/downloads", middlewares.CounterRateLimiter(), ctrl.IncrementDownloads)
}
