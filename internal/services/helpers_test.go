package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/domain/valueobjects"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/security"
)

// noopLogger descarta logs nos testes
type noopLogger struct{}

func (noopLogger) Info(string, ...any)         {}
func (noopLogger) Error(string, ...any)        {}
func (noopLogger) Debug(string, ...any)        {}
func (noopLogger) Warn(string, ...any)         {}
func (l noopLogger) With(...any) ports.Logger  { return l }

// testEnv monta a pilha completa de repositórios e serviços sobre um
// SQLite em memória
type testEnv struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	postRepo    repositories.PostRepository
	catRepo     repositories.CategoryRepository
	tagRepo     repositories.TagRepository
	commentRepo repositories.CommentRepository
	uow         ports.UnitOfWork
	hasher      *security.PasswordHasher
	tokens      *security.TokenManager
	totp        *security.TOTPManager

	auth       *AuthService
	users      *UserService
	profiles   *ProfileService
	posts      *PostService
	categories *CategoryService
	tags       *TagService
	comments   *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Uma única conexão garante que todas as queries vejam o mesmo banco
	// em memória
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.AutoMigrate(db))

	env := &testEnv{
		db:          db,
		userRepo:    postgres.NewUserRepository(db),
		profileRepo: postgres.NewProfileRepository(db),
		postRepo:    postgres.NewPostRepository(db),
		catRepo:     postgres.NewCategoryRepository(db),
		tagRepo:     postgres.NewTagRepository(db),
		commentRepo: postgres.NewCommentRepository(db),
		uow:         postgres.NewUnitOfWork(db),
		hasher:      security.NewPasswordHasher(),
		tokens:      security.NewTokenManager("test-secret", 0),
		totp:        security.NewTOTPManager("Dashboard Test"),
	}

	logger := noopLogger{}
	env.auth = NewAuthService(env.userRepo, env.uow, env.hasher, env.tokens, env.totp, logger)
	env.users = NewUserService(env.userRepo, env.hasher, logger)
	env.profiles = NewProfileService(env.profileRepo, env.userRepo, env.uow, logger)
	env.posts = NewPostService(env.postRepo, env.tagRepo, env.catRepo, env.uow, logger)
	env.categories = NewCategoryService(env.catRepo, env.uow, logger)
	env.tags = NewTagService(env.tagRepo, logger)
	env.comments = NewCommentService(env.commentRepo, env.postRepo, logger)

	return env
}

// createUser insere um usuário direto no repositório com a senha informada
func (env *testEnv) createUser(t *testing.T, email string, isAdmin, isEditor bool) *entities.User {
	t.Helper()

	emailVO, err := valueobjects.NewEmail(email)
	require.NoError(t, err)

	hash, err := env.hasher.Hash("password123")
	require.NoError(t, err)

	user := &entities.User{
		Email:        emailVO,
		FullName:     "Test User",
		PasswordHash: hash,
		IsActive:     true,
		IsVerified:   true,
		IsAdmin:      isAdmin,
		IsEditor:     isEditor,
	}
	require.NoError(t, env.userRepo.Create(context.Background(), user))
	return user
}

// createPost cria um post via serviço em nome do autor
func (env *testEnv) createPost(t *testing.T, author *entities.User, title, content string) *entities.Post {
	t.Helper()

	post, err := env.posts.CreatePost(context.Background(), author, CreatePostInput{
		Title:   title,
		Content: content,
	})
	require.NoError(t, err)
	return post
}
