package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/domain/valueobjects"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/config"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/logging"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/security"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// Popula o banco com contas e conteúdo de exemplo para desenvolvimento.
// Rodar mais de uma vez é seguro: contas existentes são reaproveitadas e
// slugs repetidos ganham um sufixo numérico.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	uow := postgres.NewUnitOfWork(db)

	hasher := security.NewPasswordHasher()
	postService := services.NewPostService(postRepo, tagRepo, categoryRepo, uow, logger)
	categoryService := services.NewCategoryService(categoryRepo, uow, logger)

	ctx := context.Background()

	admin := ensureUser(ctx, userRepo, hasher, "admin@example.com", "Admin User", "admin12345", true, true)
	editor := ensureUser(ctx, userRepo, hasher, "editor@example.com", "Editor User", "editor12345", false, true)
	ensureUser(ctx, userRepo, hasher, "user@example.com", "Regular User", "user12345", false, false)

	tech := ensureCategory(ctx, categoryService, categoryRepo, admin, "Technology", "Posts about software and infrastructure")
	news := ensureCategory(ctx, categoryService, categoryRepo, admin, "News", "Announcements and updates")

	seedPost(ctx, postService, admin, &tech.ID,
		"Welcome to the dashboard",
		"This is the first post of the blog. It covers #golang and #gin basics for the team.")
	seedPost(ctx, postService, editor, &news.ID,
		"Release notes",
		"The dashboard backend now supports two-factor authentication and password reset flows.")

	logger.Info("seed completed")
}

// ensureUser cria a conta se ela ainda não existir
func ensureUser(ctx context.Context, userRepo repositories.UserRepository, hasher *security.PasswordHasher, email, fullName, password string, isAdmin, isEditor bool) *entities.User {
	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Fatal("Failed to look up user:", err)
	}
	if existing != nil {
		return existing
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		log.Fatal("Invalid seed email:", err)
	}

	user := &entities.User{
		Email:        emailVO,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
		IsVerified:   true,
		IsAdmin:      isAdmin,
		IsEditor:     isEditor,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}
	return user
}

// ensureCategory cria a categoria se nome/slug ainda não existirem
func ensureCategory(ctx context.Context, categoryService *services.CategoryService, categoryRepo repositories.CategoryRepository, actor *entities.User, name, description string) *entities.Category {
	category, err := categoryService.CreateCategory(ctx, actor, services.CategoryInput{
		Name:        name,
		Description: &description,
	})
	if err == nil {
		return category
	}

	// Conflito: reaproveitar a existente
	categories, listErr := categoryRepo.List(ctx)
	if listErr != nil {
		log.Fatal("Failed to list categories:", listErr)
	}
	for _, existing := range categories {
		if existing.Name == name {
			return existing
		}
	}

	log.Fatal("Failed to create category:", err)
	return nil
}

// seedPost cria e publica um post, desambiguando o slug com um sufixo
// numérico quando a execução anterior já o criou
func seedPost(ctx context.Context, postService *services.PostService, author *entities.User, categoryID *string, title, content string) {
	input := services.CreatePostInput{
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
	}

	post, err := postService.CreatePost(ctx, author, input)
	for n := 2; err != nil && n <= 10; n++ {
		input.Slug = fmt.Sprintf("%s-%d", title, n)
		post, err = postService.CreatePost(ctx, author, input)
	}
	if err != nil {
		log.Fatal("Failed to create post:", err)
	}

	if _, err := postService.TogglePublish(ctx, author, post.ID); err != nil {
		log.Fatal("Failed to publish post:", err)
	}
}
