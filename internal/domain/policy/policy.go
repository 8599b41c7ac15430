package policy

import "github.com/rafabene/dashboard-backend/internal/domain/entities"

// Funções de decisão de autorização. Puras: avaliadas por requisição,
// sem efeitos colaterais. As invariantes de autoproteção do admin
// (não desativar/deletar a si mesmo) ficam na camada de serviço.

// CanManageContent verifica se o usuário pode criar posts/categorias,
// alternar publicação e listar todos os comentários
func CanManageContent(user *entities.User) bool {
	return user.IsEditor || user.IsAdmin
}

// CanEditPost verifica se o usuário pode editar o post.
// Edições de editor que não é autor são registradas em post_editors.
func CanEditPost(user *entities.User, post *entities.Post) bool {
	return user.IsAdmin || user.ID == post.AuthorID || user.IsEditor
}

// CanDeletePost verifica se o usuário pode deletar o post.
// Editores comuns só deletam os próprios posts; admin deleta qualquer um.
func CanDeletePost(user *entities.User, post *entities.Post) bool {
	return user.IsAdmin || user.ID == post.AuthorID
}

// CanViewPost verifica se o usuário pode ver o post
func CanViewPost(user *entities.User, post *entities.Post) bool {
	return post.IsPublished || CanManageContent(user)
}

// CanComment verifica se o usuário pode comentar no post
func CanComment(user *entities.User, post *entities.Post) bool {
	return post.IsPublished || CanManageContent(user)
}

// CanEditComment verifica se o usuário pode editar/deletar o comentário
func CanEditComment(user *entities.User, comment *entities.Comment) bool {
	return user.IsAdmin || user.ID == comment.UserID
}

// CanEditProfile verifica se o usuário pode editar o perfil do usuário alvo
func CanEditProfile(user *entities.User, targetUserID string) bool {
	return user.ID == targetUserID || user.IsAdmin
}

// CanAdministerUsers verifica se o usuário pode administrar usuários
func CanAdministerUsers(user *entities.User) bool {
	return user.IsAdmin
}
