package data

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/postkeeper/internal/models"
)

func TestSearch(t *testing.T) {
	posts := []*models.Post{
		{ID: 1, Title: "Straße in Berlin", Body: "walking", User: &models.User{Name: "Leanne Graham"}},
		{ID: 2, Title: "Привет мир", Body: "Первый пост"},
		{ID: 3, Title: "qui est esse", Body: "est rerum tempore", User: &models.User{Name: "Ervin Howell"}},
	}

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "empty query returns all", query: "  ", want: []int64{1, 2, 3}},
		{name: "case insensitive title", query: "QUI", want: []int64{3}},
		{name: "body match", query: "rerum", want: []int64{3}},
		{name: "author name", query: "graham", want: []int64{1}},
		{name: "case folding of sharp s", query: "STRASSE", want: []int64{1}},
		{name: "cyrillic", query: "ПЕРВЫЙ", want: []int64{2}},
		{name: "all terms required", query: "est howell", want: []int64{3}},
		{name: "terms across posts do not match", query: "berlin howell", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(posts, tt.query)
			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestPaginate(t *testing.T) {
	posts := make([]*models.Post, 0, 30)
	for i := 1; i <= 30; i++ {
		posts = append(posts, &models.Post{ID: int64(i), Title: strconv.Itoa(i)})
	}

	tests := []struct {
		name      string
		page      int
		perPage   int
		wantPage  int
		wantLen   int
		wantFirst int64
	}{
		{name: "first page default size", page: 1, wantPage: 1, wantLen: 12, wantFirst: 1},
		{name: "last partial page", page: 3, wantPage: 3, wantLen: 6, wantFirst: 25},
		{name: "page past the end clamps", page: 10, wantPage: 3, wantLen: 6, wantFirst: 25},
		{name: "zero page clamps", page: 0, wantPage: 1, wantLen: 12, wantFirst: 1},
		{name: "custom size", page: 2, perPage: 10, wantPage: 2, wantLen: 10, wantFirst: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(posts, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, 30, p.Total)
			assert.Len(t, p.Posts, tt.wantLen)
			assert.Equal(t, tt.wantFirst, p.Posts[0].ID)
		})
	}

	assert.Equal(t, 3, Paginate(posts, 1, 0).TotalPages)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(nil, 2, 12)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.Posts)
}
