package services

import (
	"context"
	"strings"
	"time"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/policy"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/domain/tagging"
)

// PostService contém a lógica de posts do blog, incluindo a resolução de
// tags (explícitas e extraídas automaticamente)
type PostService struct {
	postRepo     repositories.PostRepository
	tagRepo      repositories.TagRepository
	categoryRepo repositories.CategoryRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
	now          func() time.Time
}

// NewPostService cria um novo PostService
func NewPostService(
	postRepo repositories.PostRepository,
	tagRepo repositories.TagRepository,
	categoryRepo repositories.CategoryRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		uow:          uow,
		logger:       logger,
		now:          time.Now,
	}
}

// ListPostsInput representa filtros da listagem de posts
type ListPostsInput struct {
	Search        string
	PublishedOnly bool
	Skip          int
	Limit         int
}

// ListPosts lista posts, mais recentes primeiro. Quem não gerencia conteúdo
// só vê posts publicados.
func (s *PostService) ListPosts(ctx context.Context, actor *entities.User, input ListPostsInput) ([]*entities.Post, error) {
	filters := repositories.PostFilters{
		Search: input.Search,
		Skip:   input.Skip,
		Limit:  input.Limit,
	}

	if !policy.CanManageContent(actor) {
		filters.PublishedOnly = true
	} else {
		filters.PublishedOnly = input.PublishedOnly
	}

	return s.postRepo.List(ctx, filters)
}

// GetPost busca um post por ID. Posts não publicados só são visíveis para
// quem gerencia conteúdo.
func (s *PostService) GetPost(ctx context.Context, actor *entities.User, id string) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	if !policy.CanViewPost(actor, post) {
		return nil, errors.ErrPostNotPublished
	}

	return post, nil
}

// CreatePostInput representa os dados de criação de post
type CreatePostInput struct {
	Title      string
	Content    string
	Slug       string
	CategoryID *string
	TagIDs     []string
	TagNames   []string
}

// CreatePost cria um post não publicado. O slug vem do campo explícito ou
// do título; colisão de slug é um conflito. O conjunto de tags é a união
// de ids explícitos, nomes explícitos e tags extraídas do texto.
func (s *PostService) CreatePost(ctx context.Context, actor *entities.User, input CreatePostInput) (*entities.Post, error) {
	if !policy.CanManageContent(actor) {
		return nil, errors.ErrForbidden
	}

	slug := tagging.Slugify(input.Slug)
	if slug == "" {
		slug = tagging.Slugify(input.Title)
	}

	exists, err := s.postRepo.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrSlugAlreadyExists
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errors.ErrCategoryNotFound
		}
	}

	post := &entities.Post{
		Title:      input.Title,
		Content:    input.Content,
		Slug:       slug,
		AuthorID:   actor.ID,
		CategoryID: input.CategoryID,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.postRepo.Create(txCtx, post); err != nil {
			return err
		}

		tagIDs, err := s.resolveTags(txCtx, input.TagIDs, input.TagNames, input.Title, input.Content)
		if err != nil {
			return err
		}
		return s.postRepo.LinkTags(txCtx, post.ID, tagIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created", "post_id", post.ID, "slug", slug, "author_id", actor.ID)
	return s.postRepo.FindByID(ctx, post.ID)
}

// UpdatePostInput representa uma atualização parcial de post.
// Campos nil não são alterados. CategoryID vazio limpa a categoria.
// TagIDs/TagNames não-nil (mesmo vazios) substituem o conjunto de tags.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Slug       *string
	CategoryID *string
	TagIDs     *[]string
	TagNames   *[]string
}

// UpdatePost atualiza um post. Editores que não são o autor ficam
// registrados como editores do post (uma vez por par post/usuário).
func (s *PostService) UpdatePost(ctx context.Context, actor *entities.User, id string, input UpdatePostInput) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	if !policy.CanEditPost(actor, post) {
		return nil, errors.ErrForbidden
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Slug != nil {
		newSlug := tagging.Slugify(*input.Slug)
		exists, err := s.postRepo.SlugExists(ctx, newSlug, post.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.ErrSlugAlreadyExists
		}
		post.Slug = newSlug
	}
	if input.CategoryID != nil {
		if *input.CategoryID == "" {
			post.CategoryID = nil
		} else {
			category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, errors.ErrCategoryNotFound
			}
			post.CategoryID = input.CategoryID
		}
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.postRepo.Update(txCtx, post); err != nil {
			return err
		}

		if actor.ID != post.AuthorID {
			if err := s.postRepo.AddEditor(txCtx, post.ID, actor.ID); err != nil {
				return err
			}
		}

		// Tags fornecidas explicitamente (mesmo vazias) substituem o
		// conjunto inteiro; a extração automática roda sobre o texto final
		if input.TagIDs != nil || input.TagNames != nil {
			if err := s.postRepo.ClearTags(txCtx, post.ID); err != nil {
				return err
			}

			var tagIDs, tagNames []string
			if input.TagIDs != nil {
				tagIDs = *input.TagIDs
			}
			if input.TagNames != nil {
				tagNames = *input.TagNames
			}

			resolved, err := s.resolveTags(txCtx, tagIDs, tagNames, post.Title, post.Content)
			if err != nil {
				return err
			}
			return s.postRepo.LinkTags(txCtx, post.ID, resolved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated", "post_id", post.ID, "updated_by", actor.ID)
	return s.postRepo.FindByID(ctx, post.ID)
}

// DeletePost remove um post. Autor e admin podem deletar; editores comuns
// só deletam os próprios posts.
func (s *PostService) DeletePost(ctx context.Context, actor *entities.User, id string) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.ErrPostNotFound
	}

	if !policy.CanDeletePost(actor, post) {
		return errors.ErrForbidden
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.postRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("post deleted", "post_id", id, "deleted_by", actor.ID)
	return nil
}

// TogglePublish alterna a publicação: rascunho→publicado registra
// published_at; publicado→rascunho limpa
func (s *PostService) TogglePublish(ctx context.Context, actor *entities.User, id string) (*entities.Post, error) {
	if !policy.CanManageContent(actor) {
		return nil, errors.ErrForbidden
	}

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	if post.IsPublished {
		post.Unpublish()
	} else {
		post.Publish(s.now())
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post publish toggled", "post_id", post.ID, "is_published", post.IsPublished)
	return s.postRepo.FindByID(ctx, post.ID)
}

// resolveTags resolve o conjunto final de tags de um post: ids existentes
// (ids desconhecidos são ignorados), nomes explícitos e tags extraídas do
// texto. Nomes casam com tags existentes pelo slug; sem correspondência a
// tag é criada. Resultado deduplicado por id, ordem preservada.
func (s *PostService) resolveTags(ctx context.Context, tagIDs, tagNames []string, title, content string) ([]string, error) {
	resolved := make([]string, 0, len(tagIDs)+len(tagNames))
	seen := make(map[string]struct{})

	appendID := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		resolved = append(resolved, id)
	}

	for _, id := range tagIDs {
		tag, err := s.tagRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if tag != nil {
			appendID(tag.ID)
		}
	}

	names := make([]string, 0, len(tagNames))
	names = append(names, tagNames...)
	names = append(names, tagging.ExtractTags(title, content)...)

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		slug := tagging.Slugify(name)
		if slug == "" {
			continue
		}

		existing, err := s.tagRepo.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			appendID(existing.ID)
			continue
		}

		tag := &entities.Tag{Name: name, Slug: slug}
		if err := s.tagRepo.Create(ctx, tag); err != nil {
			return nil, err
		}
		appendID(tag.ID)
	}

	return resolved, nil
}
