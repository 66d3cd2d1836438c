package models

import "time"

// Post представляет пост, принадлежащий пользователю.
type Post struct {
	CreatedAt time.Time `json:"createdAt"`      // CreatedAt время создания поста
	UpdatedAt time.Time `json:"updatedAt"`      // UpdatedAt время последнего изменения
	User      *User     `json:"user,omitempty"` // User краткая информация об авторе (может отсутствовать)
	Title     string    `json:"title"`          // Title заголовок, 1..255 символов
	Body      string    `json:"body"`           // Body текст поста, 1..5000 символов
	ID        int64     `json:"id"`             // ID идентификатор поста (отрицательный для временных постов)
	UserID    int64     `json:"userId"`         // UserID идентификатор автора
}

// PostDraft holds the fields required to create a post.
type PostDraft struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}

// PostPatch holds a partial update. Nil fields are left unchanged.
type PostPatch struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Body == nil
}

// ChangesPost reports whether applying the patch would modify the post.
func (p PostPatch) ChangesPost(post *Post) bool {
	if p.Title != nil && *p.Title != post.Title {
		return true
	}
	if p.Body != nil && *p.Body != post.Body {
		return true
	}
	return false
}

// Apply применяет patch к посту на месте
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Body != nil {
		post.Body = *p.Body
	}
}

// IsProvisional reports whether the post only exists locally and has not
// been assigned an id by the server yet.
func (p *Post) IsProvisional() bool {
	return p.ID < 0
}

// Clone создает глубокую копию поста
func (p *Post) Clone() *Post {
	clone := *p
	if p.User != nil {
		clone.User = p.User.Clone()
	}
	return &clone
}

// ClonePosts копирует срез постов вместе с самими постами
func ClonePosts(posts []*Post) []*Post {
	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Clone())
	}
	return out
}

// StringPtr returns a pointer to s. Handy for building patches.
func StringPtr(s string) *string {
	return &s
}
