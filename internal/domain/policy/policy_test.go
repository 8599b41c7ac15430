package policy

import (
	"testing"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

var (
	admin   = &entities.User{ID: "admin-id", IsAdmin: true}
	editor  = &entities.User{ID: "editor-id", IsEditor: true}
	regular = &entities.User{ID: "user-id"}
)

func TestCanManageContent(t *testing.T) {
	tests := []struct {
		name     string
		user     *entities.User
		expected bool
	}{
		{"admin pode", admin, true},
		{"editor pode", editor, true},
		{"usuário comum não pode", regular, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CanManageContent(tt.user) != tt.expected {
				t.Errorf("esperava %v", tt.expected)
			}
		})
	}
}

func TestCanEditPost(t *testing.T) {
	post := &entities.Post{ID: "post-id", AuthorID: regular.ID}

	tests := []struct {
		name     string
		user     *entities.User
		expected bool
	}{
		{"admin edita qualquer post", admin, true},
		{"editor edita post de outro autor", editor, true},
		{"autor edita o próprio post", regular, true},
		{"usuário comum não edita post alheio", &entities.User{ID: "other"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CanEditPost(tt.user, post) != tt.expected {
				t.Errorf("esperava %v", tt.expected)
			}
		})
	}
}

func TestCanDeletePost(t *testing.T) {
	post := &entities.Post{ID: "post-id", AuthorID: regular.ID}

	tests := []struct {
		name     string
		user     *entities.User
		expected bool
	}{
		{"admin deleta qualquer post", admin, true},
		{"autor deleta o próprio post", regular, true},
		{"editor não deleta post alheio", editor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CanDeletePost(tt.user, post) != tt.expected {
				t.Errorf("esperava %v", tt.expected)
			}
		})
	}
}

func TestCanViewPost(t *testing.T) {
	published := &entities.Post{IsPublished: true}
	draft := &entities.Post{IsPublished: false}

	t.Run("qualquer um vê post publicado", func(t *testing.T) {
		if !CanViewPost(regular, published) {
			t.Error("esperava acesso ao post publicado")
		}
	})

	t.Run("usuário comum não vê rascunho", func(t *testing.T) {
		if CanViewPost(regular, draft) {
			t.Error("não esperava acesso ao rascunho")
		}
	})

	t.Run("editor vê rascunho", func(t *testing.T) {
		if !CanViewPost(editor, draft) {
			t.Error("esperava acesso ao rascunho")
		}
	})

	t.Run("admin vê rascunho", func(t *testing.T) {
		if !CanViewPost(admin, draft) {
			t.Error("esperava acesso ao rascunho")
		}
	})
}

func TestCanComment(t *testing.T) {
	draft := &entities.Post{IsPublished: false}

	if CanComment(regular, draft) {
		t.Error("usuário comum não deveria comentar em rascunho")
	}
	if !CanComment(editor, draft) {
		t.Error("editor deveria poder comentar em rascunho")
	}
}

func TestCanEditComment(t *testing.T) {
	comment := &entities.Comment{ID: "comment-id", UserID: regular.ID}

	tests := []struct {
		name     string
		user     *entities.User
		expected bool
	}{
		{"admin edita qualquer comentário", admin, true},
		{"autor edita o próprio comentário", regular, true},
		{"editor não edita comentário alheio", editor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CanEditComment(tt.user, comment) != tt.expected {
				t.Errorf("esperava %v", tt.expected)
			}
		})
	}
}

func TestCanEditProfile(t *testing.T) {
	t.Run("dono edita o próprio perfil", func(t *testing.T) {
		if !CanEditProfile(regular, regular.ID) {
			t.Error("esperava acesso")
		}
	})

	t.Run("admin edita perfil alheio", func(t *testing.T) {
		if !CanEditProfile(admin, regular.ID) {
			t.Error("esperava acesso")
		}
	})

	t.Run("editor não edita perfil alheio", func(t *testing.T) {
		if CanEditProfile(editor, regular.ID) {
			t.Error("não esperava acesso")
		}
	})
}

func TestCanAdministerUsers(t *testing.T) {
	if !CanAdministerUsers(admin) {
		t.Error("admin deveria administrar usuários")
	}
	if CanAdministerUsers(editor) {
		t.Error("editor não deveria administrar usuários")
	}
	if CanAdministerUsers(regular) {
		t.Error("usuário comum não deveria administrar usuários")
	}
}
