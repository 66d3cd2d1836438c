// Package cache keeps the client side view of posts: the last confirmed
// list plus optimistic changes that are not resolved yet.
package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/iudanet/postkeeper/internal/models"
)

// ErrHandleResolved возвращается при повторном Commit или Rollback
var ErrHandleResolved = errors.New("mutation handle already resolved")

// Handle represents one optimistic change applied by Begin.
type Handle struct {
	mutation    models.Mutation
	provisional *models.Post // только для create
	snapshot    []*models.Post
	tempID      int64
	resolved    bool
}

// Mutation returns the change this handle applies
func (h *Handle) Mutation() models.Mutation { return h.mutation }

// Snapshot returns the visible collection captured right before Begin
func (h *Handle) Snapshot() []*models.Post { return models.ClonePosts(h.snapshot) }

// TempID returns the provisional id of a created post, 0 for other kinds
func (h *Handle) TempID() int64 { return h.tempID }

// Cache is safe for concurrent use.
type Cache struct {
	now      func() time.Time
	baseline []*models.Post
	overlays []*Handle
	version  uint64
	lastTemp int64
	mu       sync.RWMutex
	stale    bool
}

// New creates an empty cache. Until Replace is called it is stale.
func New() *Cache {
	return &Cache{
		now:   time.Now,
		stale: true,
	}
}

// Posts returns a copy of the visible collection
func (c *Cache) Posts() []*models.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visible()
}

// Get returns a copy of the visible post with the given id
func (c *Cache) Get(id int64) (*models.Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.visible() {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Version растет при каждом видимом изменении коллекции
func (c *Cache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Pending returns the number of unresolved optimistic changes
func (c *Cache) Pending() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.overlays)
}

// Stale reports whether the baseline should be fetched again
func (c *Cache) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale
}

// Invalidate marks the baseline for refresh without dropping it
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}

// Replace устанавливает новый подтвержденный список.
// Неразрешенные оптимистичные изменения остаются поверх него.
func (c *Cache) Replace(posts []*models.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseline = models.ClonePosts(posts)
	c.stale = false
	c.version++
}

// Baseline returns a copy of the last confirmed collection
func (c *Cache) Baseline() []*models.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.ClonePosts(c.baseline)
}

// Begin применяет изменение оптимистично и сохраняет снимок
// видимой коллекции до изменения.
func (c *Cache) Begin(m models.Mutation) *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := &Handle{
		mutation: m,
		snapshot: c.visible(),
	}
	if create, ok := m.(models.CreatePost); ok {
		c.lastTemp--
		h.tempID = c.lastTemp
		h.provisional = c.provisional(h.tempID, create)
	}

	c.overlays = append(c.overlays, h)
	c.version++
	return h
}

// Commit убирает изменение из оверлеев и вносит его в подтвержденный список.
// confirmed - ответ сервера, может быть nil (например, для delete).
func (c *Cache) Commit(h *Handle, confirmed *models.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.resolve(h); err != nil {
		return err
	}

	if confirmed != nil {
		confirmed = confirmed.Clone()
	}

	switch m := h.mutation.(type) {
	case models.CreatePost:
		post := confirmed
		if post == nil {
			post = h.provisional.Clone()
		}
		// Replace мог уже принести этот пост с сервера
		c.baseline = append([]*models.Post{post}, removePost(c.baseline, post.ID)...)
	case models.UpdatePost:
		for i, p := range c.baseline {
			if p.ID != m.ID {
				continue
			}
			if confirmed != nil {
				c.baseline[i] = confirmed
			} else {
				m.Apply(p)
				p.UpdatedAt = c.now()
			}
			break
		}
	case models.DeletePost:
		c.baseline = removePost(c.baseline, m.ID)
	}

	c.version++
	return nil
}

// Rollback отменяет оптимистичное изменение. Если других изменений
// в полете нет, видимая коллекция совпадает со снимком из Begin.
func (c *Cache) Rollback(h *Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.resolve(h); err != nil {
		return err
	}
	c.version++
	return nil
}

func (c *Cache) resolve(h *Handle) error {
	if h == nil || h.resolved {
		return ErrHandleResolved
	}
	h.resolved = true

	for i, o := range c.overlays {
		if o == h {
			c.overlays = append(c.overlays[:i], c.overlays[i+1:]...)
			break
		}
	}
	return nil
}

// visible собирает baseline и оверлеи в порядке вызова. Вызывать под mu.
func (c *Cache) visible() []*models.Post {
	posts := models.ClonePosts(c.baseline)
	for _, h := range c.overlays {
		posts = applyOverlay(posts, h)
	}
	return posts
}

func applyOverlay(posts []*models.Post, h *Handle) []*models.Post {
	switch m := h.mutation.(type) {
	case models.CreatePost:
		return append([]*models.Post{h.provisional.Clone()}, posts...)
	case models.UpdatePost:
		for _, p := range posts {
			if p.ID == m.ID {
				m.Apply(p)
			}
		}
		return posts
	case models.DeletePost:
		return removePost(posts, m.ID)
	}
	return posts
}

func (c *Cache) provisional(id int64, m models.CreatePost) *models.Post {
	now := c.now()
	return &models.Post{
		ID:        id,
		Title:     m.Title,
		Body:      m.Body,
		UserID:    m.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func removePost(posts []*models.Post, id int64) []*models.Post {
	out := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
