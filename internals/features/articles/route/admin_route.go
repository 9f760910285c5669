package route

import (
	"journalku_backend/internals/features/articles/controller"
	"journalku_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ArticleAdminRoutes(admin fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewArticleAdminController(db, blob)

	articles := admin.Group("/articles")
	articles.Post("/", ctrl.CreateArticle)
	articles.Put("/:id", ctrl.UpdateArticle)
	articles.Post("/:id/pdf", ctrl.UploadArticlePDF)
	articles.Delete("/:id", ctrl.DeleteArticle)
}
