package postgres

import (
	"time"

	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                string     `gorm:"type:uuid;primaryKey"`
	Email             string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName          string     `gorm:"type:varchar(500)"`
	PasswordHash      string     `gorm:"type:varchar(255);not null"`
	IsActive          bool       `gorm:"not null;default:true"`
	IsVerified        bool       `gorm:"not null;default:false"`
	IsAdmin           bool       `gorm:"not null;default:false"`
	IsEditor          bool       `gorm:"not null;default:false"`
	TwoFactorEnabled  bool       `gorm:"not null;default:false"`
	TwoFactorSecret   *string    `gorm:"type:varchar(255)"`
	ResetToken        *string    `gorm:"type:varchar(255);index"`
	ResetTokenExpires *time.Time ``
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// ProfileModel é o model GORM para perfis (1:1 com users)
type ProfileModel struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	UserID          string    `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName       *string   `gorm:"type:varchar(255)"`
	LastName        *string   `gorm:"type:varchar(255)"`
	Phone           *string   `gorm:"type:varchar(50)"`
	Bio             *string   `gorm:"type:text"`
	JobTitle        *string   `gorm:"type:varchar(255)"`
	Location        *string   `gorm:"type:varchar(255)"`
	ProfileImageURL *string   `gorm:"type:varchar(500)"`
	Country         *string   `gorm:"type:varchar(255)"`
	CityState       *string   `gorm:"type:varchar(255)"`
	PostalCode      *string   `gorm:"type:varchar(50)"`
	TaxID           *string   `gorm:"type:varchar(100)"`
	FacebookURL     *string   `gorm:"type:varchar(500)"`
	TwitterURL      *string   `gorm:"type:varchar(500)"`
	LinkedinURL     *string   `gorm:"type:varchar(500)"`
	InstagramURL    *string   `gorm:"type:varchar(500)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// TagModel é o model GORM para tags
type TagModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TagModel) TableName() string {
	return "tags"
}

// PostModel é o model GORM para posts
type PostModel struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	Title       string         `gorm:"type:varchar(500);not null"`
	Content     string         `gorm:"type:text;not null"`
	Slug        string         `gorm:"type:varchar(500);uniqueIndex;not null"`
	IsPublished bool           `gorm:"not null;default:false;index"`
	PublishedAt *time.Time     ``
	AuthorID    string         `gorm:"type:uuid;not null;index"`
	Author      UserModel      `gorm:"foreignKey:AuthorID"`
	CategoryID  *string        `gorm:"type:uuid;index"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Tags        []TagModel     `gorm:"many2many:post_tags;foreignKey:ID;joinForeignKey:PostID;references:ID;joinReferences:TagID"`
	Editors     []UserModel    `gorm:"many2many:post_editors;foreignKey:ID;joinForeignKey:PostID;references:ID;joinReferences:UserID"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (PostModel) TableName() string {
	return "posts"
}

// PostTagModel é a tabela de junção post_tags
type PostTagModel struct {
	PostID    string    `gorm:"type:uuid;primaryKey"`
	TagID     string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PostTagModel) TableName() string {
	return "post_tags"
}

// PostEditorModel registra editores não-autores que modificaram um post
type PostEditorModel struct {
	PostID    string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PostEditorModel) TableName() string {
	return "post_editors"
}

// CommentModel é o model GORM para comentários
type CommentModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	PostID    string    `gorm:"type:uuid;not null;index"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	User      UserModel `gorm:"foreignKey:UserID"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CommentModel) TableName() string {
	return "comments"
}

// AutoMigrate cria/atualiza o schema e registra as tabelas de junção
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&PostModel{}, "Tags", &PostTagModel{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&PostModel{}, "Editors", &PostEditorModel{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&UserModel{},
		&ProfileModel{},
		&CategoryModel{},
		&TagModel{},
		&PostModel{},
		&CommentModel{},
	)
}
