package models

import (
	"encoding/json"
	"fmt"
)

// MutationKind определяет тип изменения поста
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// Mutation is a change to the posts collection. The set of implementations
// is closed: CreatePost, UpdatePost and DeletePost.
type Mutation interface {
	// Kind returns the mutation discriminator used in persisted records.
	Kind() MutationKind

	// TargetID returns the id of the post the mutation targets.
	// Create mutations have no target.
	TargetID() (int64, bool)

	// Describe returns a short human readable description.
	Describe() string

	mutation()
}

// CreatePost создает новый пост
type CreatePost struct {
	PostDraft
}

// UpdatePost изменяет указанные поля существующего поста
type UpdatePost struct {
	PostPatch
	ID int64 `json:"id"`
}

// DeletePost удаляет пост. В сохраненной записи payload - это голый id поста.
type DeletePost struct {
	ID int64
}

func (CreatePost) Kind() MutationKind { return MutationCreate }
func (UpdatePost) Kind() MutationKind { return MutationUpdate }
func (DeletePost) Kind() MutationKind { return MutationDelete }

func (CreatePost) TargetID() (int64, bool)   { return 0, false }
func (m UpdatePost) TargetID() (int64, bool) { return m.ID, true }
func (m DeletePost) TargetID() (int64, bool) { return m.ID, true }

func (m CreatePost) Describe() string { return fmt.Sprintf("create post %q", m.Title) }
func (m UpdatePost) Describe() string { return fmt.Sprintf("update post %d", m.ID) }
func (m DeletePost) Describe() string { return fmt.Sprintf("delete post %d", m.ID) }

func (CreatePost) mutation() {}
func (UpdatePost) mutation() {}
func (DeletePost) mutation() {}

// MarshalJSON encodes the delete payload as a bare post id.
func (m DeletePost) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ID)
}

// UnmarshalJSON decodes a bare post id.
func (m *DeletePost) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.ID)
}

// EncodePayload возвращает каноничный JSON payload мутации
func EncodePayload(m Mutation) (json.RawMessage, error) {
	if m == nil {
		return nil, fmt.Errorf("mutation is nil")
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", m.Kind(), err)
	}
	return payload, nil
}

// DecodeMutation восстанавливает мутацию по kind и payload
func DecodeMutation(kind MutationKind, payload json.RawMessage) (Mutation, error) {
	switch kind {
	case MutationCreate:
		var m CreatePost
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal create payload: %w", err)
		}
		return m, nil
	case MutationUpdate:
		var m UpdatePost
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal update payload: %w", err)
		}
		return m, nil
	case MutationDelete:
		var m DeletePost
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal delete payload: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown mutation kind %q", kind)
	}
}

// QueuedMutation представляет мутацию, ожидающую отправки на сервер.
// После добавления в очередь запись не изменяется, только удаляется.
type QueuedMutation struct {
	Mutation Mutation
	ID       int64
}

// queuedMutationJSON is the persisted record layout.
type queuedMutationJSON struct {
	Kind    MutationKind    `json:"kind"`
	Payload json.RawMessage `json:"payload"`
	ID      int64           `json:"id"`
}

// MarshalJSON encodes the record as {id, kind, payload}.
func (q QueuedMutation) MarshalJSON() ([]byte, error) {
	payload, err := EncodePayload(q.Mutation)
	if err != nil {
		return nil, err
	}
	return json.Marshal(queuedMutationJSON{
		ID:      q.ID,
		Kind:    q.Mutation.Kind(),
		Payload: payload,
	})
}

// UnmarshalJSON decodes a persisted {id, kind, payload} record.
func (q *QueuedMutation) UnmarshalJSON(data []byte) error {
	var raw queuedMutationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal queued mutation: %w", err)
	}

	m, err := DecodeMutation(raw.Kind, raw.Payload)
	if err != nil {
		return fmt.Errorf("queued mutation %d: %w", raw.ID, err)
	}

	q.ID = raw.ID
	q.Mutation = m
	return nil
}
