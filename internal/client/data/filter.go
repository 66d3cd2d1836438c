package data

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/iudanet/postkeeper/internal/models"
)

// PostsPerPage размер страницы в списке постов
const PostsPerPage = 12

// Search оставляет посты, в которых каждое слово запроса встречается
// в заголовке, тексте или имени автора. Регистр и форма символов не важны.
// Пустой запрос возвращает все посты.
func Search(posts []*models.Post, query string) []*models.Post {
	terms := strings.Fields(fold(query))
	if len(terms) == 0 {
		return posts
	}

	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		haystack := fold(p.Title) + "\n" + fold(p.Body)
		if p.User != nil {
			haystack += "\n" + fold(p.User.Name)
		}
		if containsAll(haystack, terms) {
			out = append(out, p)
		}
	}
	return out
}

func containsAll(s string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}

func fold(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}

// Page is one page of a post list
type Page struct {
	Posts      []*models.Post
	Page       int
	TotalPages int
	Total      int
}

// Paginate режет список на страницы. Номер страницы приводится
// к допустимому диапазону.
func Paginate(posts []*models.Post, page, perPage int) Page {
	if perPage <= 0 {
		perPage = PostsPerPage
	}

	total := len(posts)
	totalPages := (total + perPage - 1) / perPage

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	end := min(start+perPage, total)
	if start > total {
		start = total
	}

	return Page{
		Posts:      posts[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}
