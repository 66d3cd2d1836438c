package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/postkeeper/internal/models"
)

const (
	// MaxTitleLen максимальная длина заголовка поста
	MaxTitleLen = 255
	// MaxBodyLen максимальная длина текста поста
	MaxBodyLen = 5000

	// DefaultPage страница по умолчанию
	DefaultPage = 1
	// DefaultPageLimit размер страницы по умолчанию
	DefaultPageLimit = 10
	// MaxPageLimit максимальный размер страницы
	MaxPageLimit = 1000
)

// ValidationError collects every issue found in one input.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Issues, ", ")
}

func (e *ValidationError) add(field, msg string) {
	e.Issues = append(e.Issues, fmt.Sprintf("%s: %s", field, msg))
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

// NormalizeDraft обрезает пробелы и проверяет поля нового поста.
// Возвращает нормализованную копию.
func NormalizeDraft(draft models.PostDraft) (models.PostDraft, error) {
	verr := &ValidationError{}

	draft.Title = strings.TrimSpace(draft.Title)
	draft.Body = strings.TrimSpace(draft.Body)

	checkTitle(verr, draft.Title)
	checkBody(verr, draft.Body)

	if draft.UserID <= 0 {
		verr.add("userId", "User ID must be positive")
	}

	return draft, verr.orNil()
}

// NormalizePatch обрезает пробелы и проверяет только переданные поля
func NormalizePatch(patch models.PostPatch) (models.PostPatch, error) {
	verr := &ValidationError{}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		checkTitle(verr, title)
		patch.Title = &title
	}

	if patch.Body != nil {
		body := strings.TrimSpace(*patch.Body)
		checkBody(verr, body)
		patch.Body = &body
	}

	return patch, verr.orNil()
}

func checkTitle(verr *ValidationError, title string) {
	switch {
	case title == "":
		verr.add("title", "Title is required")
	case utf8.RuneCountInString(title) > MaxTitleLen:
		verr.add("title", fmt.Sprintf("Title must be less than %d characters", MaxTitleLen))
	}
}

func checkBody(verr *ValidationError, body string) {
	switch {
	case body == "":
		verr.add("body", "Body is required")
	case utf8.RuneCountInString(body) > MaxBodyLen:
		verr.add("body", fmt.Sprintf("Body must be less than %d characters", MaxBodyLen))
	}
}

// ParseID разбирает идентификатор из пути запроса или аргумента командной строки
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post ID %q", raw)
	}
	return id, nil
}

// ParsePagination разбирает параметры page и limit.
// Пустые значения заменяются значениями по умолчанию.
func ParsePagination(rawPage, rawLimit string) (page, limit int, err error) {
	page, limit = DefaultPage, DefaultPageLimit

	if rawPage != "" {
		page, err = strconv.Atoi(rawPage)
		if err != nil || page <= 0 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
	}

	if rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil || limit <= 0 {
			return 0, 0, fmt.Errorf("limit must be a positive integer")
		}
		if limit > MaxPageLimit {
			return 0, 0, fmt.Errorf("limit must not exceed %d", MaxPageLimit)
		}
	}

	return page, limit, nil
}
