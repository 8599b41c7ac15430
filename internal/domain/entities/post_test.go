package entities

import (
	"testing"
	"time"
)

func TestPost_Publish(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("primeira publicação registra o instante", func(t *testing.T) {
		post := &Post{}
		post.Publish(now)

		if !post.IsPublished {
			t.Error("esperava post publicado")
		}
		if post.PublishedAt == nil || !post.PublishedAt.Equal(now) {
			t.Errorf("esperava published_at %v, obteve %v", now, post.PublishedAt)
		}
	})

	t.Run("despublicar limpa o instante", func(t *testing.T) {
		post := &Post{}
		post.Publish(now)
		post.Unpublish()

		if post.IsPublished {
			t.Error("esperava post despublicado")
		}
		if post.PublishedAt != nil {
			t.Error("esperava published_at limpo")
		}
	})

	t.Run("republicar registra um novo instante", func(t *testing.T) {
		post := &Post{}
		post.Publish(now)
		post.Unpublish()

		later := now.Add(time.Hour)
		post.Publish(later)

		if post.PublishedAt == nil || !post.PublishedAt.Equal(later) {
			t.Errorf("esperava published_at %v, obteve %v", later, post.PublishedAt)
		}
	})
}
