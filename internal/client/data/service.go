// Package data координирует изменения постов: оптимистичное применение,
// отправку на сервер или постановку в офлайн-очередь.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/postkeeper/internal/client/api"
	"github.com/iudanet/postkeeper/internal/client/cache"
	"github.com/iudanet/postkeeper/internal/client/connectivity"
	"github.com/iudanet/postkeeper/internal/client/notify"
	"github.com/iudanet/postkeeper/internal/client/queue"
	"github.com/iudanet/postkeeper/internal/client/storage"
	clientsync "github.com/iudanet/postkeeper/internal/client/sync"
	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/validation"
)

var (
	// ErrNotQueued офлайн-изменение не удалось сохранить в очередь
	ErrNotQueued = errors.New("change was not queued")

	// ErrOffline операция требует доступного сервера
	ErrOffline = errors.New("server is unreachable")

	// ErrProposalResolved предложение уже подтверждено или отменено
	ErrProposalResolved = errors.New("proposal already resolved")

	// ErrPostNotFound пост отсутствует локально и на сервере
	ErrPostNotFound = errors.New("post not found")
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс клиентского data сервиса
type Service interface {
	// Load восстанавливает сохраненный снимок постов
	Load(ctx context.Context) error
	// Refresh загружает актуальный список с сервера
	Refresh(ctx context.Context) error

	Posts(ctx context.Context) ([]*models.Post, error)
	Post(ctx context.Context, id int64) (*models.Post, error)
	Users(ctx context.Context) ([]*models.User, error)

	CreatePost(ctx context.Context, draft models.PostDraft) (*Result, error)
	UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (*Result, error)
	DeletePost(ctx context.Context, id int64) (*Result, error)
	Apply(ctx context.Context, m models.Mutation) (*Result, error)

	// Propose регистрирует изменение, требующее подтверждения пользователя
	Propose(ctx context.Context, m models.Mutation) (*Proposal, error)
	Confirm(ctx context.Context, p *Proposal) (*Result, error)
	Cancel(p *Proposal) error
}

// Drainer отправляет накопленную офлайн-очередь. Реализуется sync.Processor.
type Drainer interface {
	Drain(ctx context.Context) (*clientsync.DrainResult, error)
}

// Result describes how a mutation was handled
type Result struct {
	Post      *models.Post // ответ сервера, если изменение отправлено сразу
	RecordID  int64        // id записи в очереди, если Queued
	Queued    bool
	Duplicate bool // такое же изменение уже ждет в очереди
	Skipped   bool // изменение ничего не меняет
}

// Proposal is a mutation waiting for user confirmation
type Proposal struct {
	Mutation models.Mutation
	Target   *models.Post // текущая версия поста, если известна
	ID       uint64
}

type service struct {
	cache           *cache.Cache
	queue           *queue.Store
	apiClient       api.ClientAPI
	monitor         *connectivity.Monitor
	drainer         Drainer
	postsStorage    storage.PostsStorage
	metadataStorage storage.MetadataStorage
	sink            notify.Sink
	logger          *slog.Logger
	now             func() time.Time
	proposals       map[uint64]*Proposal
	nextProposal    uint64
	mu              sync.Mutex
}

// NewService creates a new data service
func NewService(
	postsCache *cache.Cache,
	q *queue.Store,
	apiClient api.ClientAPI,
	monitor *connectivity.Monitor,
	drainer Drainer,
	postsStorage storage.PostsStorage,
	metadataStorage storage.MetadataStorage,
	sink notify.Sink,
	logger *slog.Logger,
) Service {
	return &service{
		cache:           postsCache,
		queue:           q,
		apiClient:       apiClient,
		monitor:         monitor,
		drainer:         drainer,
		postsStorage:    postsStorage,
		metadataStorage: metadataStorage,
		sink:            sink,
		logger:          logger,
		now:             time.Now,
		proposals:       make(map[uint64]*Proposal),
	}
}

func (s *service) Load(ctx context.Context) error {
	posts, err := s.postsStorage.LoadPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load posts snapshot: %w", err)
	}
	if posts == nil {
		return nil
	}

	s.cache.Replace(posts)
	// Снимок с диска мог устареть
	s.cache.Invalidate()

	s.logger.Debug("Posts snapshot loaded", "count", len(posts))
	return nil
}

func (s *service) Refresh(ctx context.Context) error {
	posts, err := s.apiClient.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch posts: %w", err)
	}

	s.cache.Replace(posts)
	s.persist(ctx)

	if err := s.metadataStorage.SaveLastRefreshTimestamp(ctx, s.now().Unix()); err != nil {
		s.logger.Warn("Failed to save last refresh timestamp", "error", err)
	}

	s.logger.Debug("Posts refreshed", "count", len(posts))
	return nil
}

// Posts returns the visible collection. A stale cache is refreshed first
// when the server is reachable; otherwise the cached posts are returned.
func (s *service) Posts(ctx context.Context) ([]*models.Post, error) {
	if s.cache.Stale() && s.monitor.Online() {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("Failed to refresh posts, using cached copy", "error", err)
		}
	}
	return s.cache.Posts(), nil
}

func (s *service) Post(ctx context.Context, id int64) (*models.Post, error) {
	if post, ok := s.cache.Get(id); ok {
		return post, nil
	}
	if !s.monitor.Online() {
		return nil, ErrPostNotFound
	}

	post, err := s.apiClient.GetPost(ctx, id)
	if errors.Is(err, api.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

func (s *service) Users(ctx context.Context) ([]*models.User, error) {
	if !s.monitor.Online() {
		return nil, ErrOffline
	}
	users, err := s.apiClient.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (s *service) CreatePost(ctx context.Context, draft models.PostDraft) (*Result, error) {
	return s.Apply(ctx, models.CreatePost{PostDraft: draft})
}

func (s *service) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (*Result, error) {
	return s.Apply(ctx, models.UpdatePost{ID: id, PostPatch: patch})
}

func (s *service) DeletePost(ctx context.Context, id int64) (*Result, error) {
	return s.Apply(ctx, models.DeletePost{ID: id})
}

// Apply проверяет изменение, применяет его оптимистично и затем
// отправляет на сервер (онлайн) или ставит в очередь (офлайн).
func (s *service) Apply(ctx context.Context, m models.Mutation) (*Result, error) {
	m, err := normalize(m)
	if err != nil {
		return nil, err
	}

	// Новое изменение не должно обогнать уже накопленные в очереди
	direct := s.monitor.Online() && s.flushQueue(ctx)

	if update, ok := m.(models.UpdatePost); ok && s.unchanged(update) {
		s.logger.Debug("Update changes nothing, skipping", "post_id", update.ID)
		return &Result{Skipped: true}, nil
	}

	handle := s.cache.Begin(m)

	if !direct {
		return s.enqueue(ctx, handle)
	}
	return s.send(ctx, handle)
}

// flushQueue отправляет офлайн-очередь перед прямой записью.
// Возвращает false, если в очереди остались записи: тогда новое
// изменение ставится за ними.
func (s *service) flushQueue(ctx context.Context) bool {
	if s.drainer == nil {
		return true
	}

	pending, err := s.queue.Len(ctx)
	if err != nil {
		s.logger.Warn("Failed to read offline queue", "error", err)
		return false
	}
	if pending == 0 {
		return true
	}

	s.logger.Debug("Draining offline queue before direct write", "count", pending)
	result, err := s.drainer.Drain(ctx)
	if err != nil {
		s.logger.Warn("Failed to drain offline queue", "error", err)
		return false
	}
	return !result.Skipped && result.Failed == 0
}

// enqueue сохраняет изменение для последующей отправки.
// Оптимистичное изменение откатывается: очередь отображается отдельно.
func (s *service) enqueue(ctx context.Context, handle *cache.Handle) (*Result, error) {
	m := handle.Mutation()

	duplicate, err := s.queue.IsDuplicate(ctx, m)
	if err != nil {
		return nil, s.notQueued(handle, err)
	}
	if duplicate {
		s.rollback(handle)
		s.sink.Notify(notify.Duplicate())
		return &Result{Duplicate: true}, nil
	}

	record, err := s.queue.Enqueue(ctx, m)
	if err != nil {
		return nil, s.notQueued(handle, err)
	}

	s.rollback(handle)
	s.sink.Notify(notify.Queued())

	s.logger.Info("Mutation queued while offline", "record_id", record.ID, "kind", m.Kind())
	return &Result{Queued: true, RecordID: record.ID}, nil
}

func (s *service) notQueued(handle *cache.Handle, err error) error {
	s.rollback(handle)
	s.logger.Error("Failed to queue offline change", "error", err)
	s.sink.Notify(notify.Error("Failed to save offline change"))
	return fmt.Errorf("%w: %w", ErrNotQueued, err)
}

// send отправляет изменение на сервер.
// При ошибке сначала откатывается оптимистичное изменение, затем уведомление.
func (s *service) send(ctx context.Context, handle *cache.Handle) (*Result, error) {
	m := handle.Mutation()

	post, err := s.remote(ctx, m)
	if err != nil {
		s.rollback(handle)
		s.sink.Notify(notify.Error(fmt.Sprintf("%s: %s", failureMessage(m.Kind()), api.ServerMessage(err))))
		return nil, err
	}

	if err := s.cache.Commit(handle, post); err != nil {
		s.logger.Warn("Failed to commit optimistic change", "error", err)
	}
	s.persist(ctx)
	s.cache.Invalidate()

	s.sink.Notify(notify.Success(successMessage(m.Kind())))
	return &Result{Post: post}, nil
}

func (s *service) remote(ctx context.Context, m models.Mutation) (*models.Post, error) {
	switch m := m.(type) {
	case models.CreatePost:
		return s.apiClient.CreatePost(ctx, m.PostDraft)
	case models.UpdatePost:
		return s.apiClient.UpdatePost(ctx, m.ID, m.PostPatch)
	case models.DeletePost:
		return nil, s.apiClient.DeletePost(ctx, m.ID)
	default:
		return nil, fmt.Errorf("unsupported mutation %T", m)
	}
}

func (s *service) rollback(handle *cache.Handle) {
	if err := s.cache.Rollback(handle); err != nil {
		s.logger.Warn("Failed to roll back optimistic change", "error", err)
	}
}

// persist сохраняет подтвержденный список постов для офлайн-чтения
func (s *service) persist(ctx context.Context) {
	if err := s.postsStorage.SavePosts(ctx, s.cache.Baseline()); err != nil {
		s.logger.Warn("Failed to save posts snapshot", "error", err)
	}
}

func (s *service) unchanged(m models.UpdatePost) bool {
	if m.IsEmpty() {
		return true
	}
	post, ok := s.cache.Get(m.ID)
	return ok && !m.ChangesPost(post)
}

func (s *service) Propose(ctx context.Context, m models.Mutation) (*Proposal, error) {
	m, err := normalize(m)
	if err != nil {
		return nil, err
	}

	p := &Proposal{Mutation: m}
	if id, ok := m.TargetID(); ok {
		if target, err := s.Post(ctx, id); err == nil {
			p.Target = target
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProposal++
	p.ID = s.nextProposal
	s.proposals[p.ID] = p
	return p, nil
}

func (s *service) Confirm(ctx context.Context, p *Proposal) (*Result, error) {
	if err := s.resolve(p); err != nil {
		return nil, err
	}
	return s.Apply(ctx, p.Mutation)
}

func (s *service) Cancel(p *Proposal) error {
	return s.resolve(p)
}

func (s *service) resolve(p *Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p == nil {
		return ErrProposalResolved
	}
	if _, ok := s.proposals[p.ID]; !ok {
		return ErrProposalResolved
	}
	delete(s.proposals, p.ID)
	return nil
}

func normalize(m models.Mutation) (models.Mutation, error) {
	switch m := m.(type) {
	case models.CreatePost:
		draft, err := validation.NormalizeDraft(m.PostDraft)
		if err != nil {
			return nil, err
		}
		return models.CreatePost{PostDraft: draft}, nil
	case models.UpdatePost:
		if m.ID <= 0 {
			return nil, fmt.Errorf("invalid post ID %d", m.ID)
		}
		patch, err := validation.NormalizePatch(m.PostPatch)
		if err != nil {
			return nil, err
		}
		return models.UpdatePost{ID: m.ID, PostPatch: patch}, nil
	case models.DeletePost:
		if m.ID <= 0 {
			return nil, fmt.Errorf("invalid post ID %d", m.ID)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported mutation %T", m)
	}
}

func successMessage(kind models.MutationKind) string {
	switch kind {
	case models.MutationCreate:
		return "Post created successfully"
	case models.MutationUpdate:
		return "Post updated successfully"
	default:
		return "Post deleted successfully"
	}
}

func failureMessage(kind models.MutationKind) string {
	switch kind {
	case models.MutationCreate:
		return "Failed to create post"
	case models.MutationUpdate:
		return "Failed to update post"
	default:
		return "Failed to delete post"
	}
}
