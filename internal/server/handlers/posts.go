package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/server/cache"
	"github.com/iudanet/postkeeper/internal/server/metrics"
	"github.com/iudanet/postkeeper/internal/server/storage"
	"github.com/iudanet/postkeeper/internal/validation"
	"github.com/iudanet/postkeeper/pkg/api"
)

// PostsHandler handles /api/posts and /api/posts/{id}
type PostsHandler struct {
	logger   *slog.Logger
	storage  storage.PostStorage
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, posts storage.PostStorage, c cache.Cache, cacheTTL time.Duration) *PostsHandler {
	return &PostsHandler{
		logger:   logger,
		storage:  posts,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// List обрабатывает GET /api/posts.
// Без параметров возвращает все посты, с page/limit - одну страницу.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawPage, rawLimit := q.Get("page"), q.Get("limit")

	if rawPage == "" && rawLimit == "" {
		h.serveCached(w, r, cache.PostsListKey, h.buildList)
		return
	}

	page, limit, err := validation.ParsePagination(rawPage, rawLimit)
	if err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveCached(w, r, cache.PostsPageKey(page, limit), func(ctx context.Context) ([]byte, error) {
		return h.buildPage(ctx, page, limit)
	})
}

func (h *PostsHandler) buildList(ctx context.Context) ([]byte, error) {
	posts, err := h.storage.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(api.Envelope[[]api.Post]{Data: api.PostsFromModels(posts)})
}

func (h *PostsHandler) buildPage(ctx context.Context, page, limit int) ([]byte, error) {
	total, err := h.storage.CountPosts(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := h.storage.ListPostsPage(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	return json.Marshal(api.Envelope[api.PaginatedPosts]{Data: api.PaginatedPosts{
		Data:       api.PostsFromModels(posts),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}})
}

// serveCached отдает ответ из кеша или строит его и кладет в кеш.
// Ошибки кеша не мешают ответу.
func (h *PostsHandler) serveCached(w http.ResponseWriter, r *http.Request, key string, build func(context.Context) ([]byte, error)) {
	ctx := r.Context()

	if body, ok, err := h.cache.Get(ctx, key); err != nil {
		metrics.IncCacheError()
		h.logger.Warn("Posts cache get failed", "key", key, "error", err)
	} else if ok {
		metrics.IncCacheHit()
		sendRaw(w, h.logger, body, http.StatusOK)
		return
	}
	metrics.IncCacheMiss()

	body, err := build(ctx)
	if err != nil {
		h.logger.Error("Failed to list posts", "error", err)
		sendError(w, h.logger, msgUnexpected, http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set(ctx, key, body, h.cacheTTL); err != nil {
		metrics.IncCacheError()
		h.logger.Warn("Posts cache set failed", "key", key, "error", err)
	}

	sendRaw(w, h.logger, body, http.StatusOK)
}

// Get обрабатывает GET /api/posts/{id}
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	post, err := h.storage.GetPost(r.Context(), id)
	if err != nil {
		h.storageError(w, err, "get")
		return
	}

	sendJSON(w, h.logger, api.Envelope[api.Post]{Data: api.PostFromModel(post)}, http.StatusOK)
}

// Create обрабатывает POST /api/posts
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode create request", "error", err)
		sendError(w, h.logger, msgInvalidBody, http.StatusBadRequest)
		return
	}

	draft, err := validation.NormalizeDraft(models.PostDraft{
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
	})
	if err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.storage.CreatePost(r.Context(), draft)
	if err != nil {
		h.storageError(w, err, "create")
		return
	}

	h.logger.Info("Post created", "post_id", post.ID, "user_id", post.UserID)
	h.mutated(r.Context(), models.MutationCreate)

	sendJSON(w, h.logger, api.Envelope[api.Post]{
		Data:    api.PostFromModel(post),
		Message: "Post created successfully",
	}, http.StatusCreated)
}

// Update обрабатывает PATCH /api/posts/{id}, меняются только переданные поля
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	var req api.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode update request", "error", err)
		sendError(w, h.logger, msgInvalidBody, http.StatusBadRequest)
		return
	}

	patch, err := validation.NormalizePatch(models.PostPatch{Title: req.Title, Body: req.Body})
	if err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.storage.UpdatePost(r.Context(), id, patch)
	if err != nil {
		h.storageError(w, err, "update")
		return
	}

	h.logger.Info("Post updated", "post_id", post.ID)
	h.mutated(r.Context(), models.MutationUpdate)

	sendJSON(w, h.logger, api.Envelope[api.Post]{
		Data:    api.PostFromModel(post),
		Message: "Post updated successfully",
	}, http.StatusOK)
}

// Delete обрабатывает DELETE /api/posts/{id}
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeletePost(r.Context(), id); err != nil {
		h.storageError(w, err, "delete")
		return
	}

	h.logger.Info("Post deleted", "post_id", id)
	h.mutated(r.Context(), models.MutationDelete)

	sendJSON(w, h.logger, api.Envelope[any]{Message: "Post deleted successfully"}, http.StatusOK)
}

// postID разбирает {id} из пути, при ошибке отвечает 400
func (h *PostsHandler) postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, h.logger, msgInvalidPostID, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// storageError переводит ошибки хранилища в HTTP статусы
func (h *PostsHandler) storageError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, storage.ErrPostNotFound):
		sendError(w, h.logger, msgPostNotFound, http.StatusNotFound)
	case errors.Is(err, storage.ErrUserNotFound):
		sendError(w, h.logger, msgUserNotFound, http.StatusNotFound)
	default:
		h.logger.Error("Post storage failed", "op", op, "error", err)
		sendError(w, h.logger, msgUnexpected, http.StatusInternalServerError)
	}
}

// mutated сбрасывает кеш списка и обновляет метрики
func (h *PostsHandler) mutated(ctx context.Context, kind models.MutationKind) {
	metrics.IncPostMutation(string(kind))

	if err := cache.InvalidatePosts(ctx, h.cache); err != nil {
		h.logger.Warn("Failed to invalidate posts cache", "error", err)
	}
}
