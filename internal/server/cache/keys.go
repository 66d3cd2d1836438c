package cache

import "fmt"

// PostsListKey ключ полного списка постов (GET /api/posts)
const PostsListKey = "posts:all"

const postsPagePrefix = "posts:page="

// PostsPageKey ключ страницы постов (GET /api/posts?page&limit)
func PostsPageKey(page, limit int) string {
	return fmt.Sprintf("%s%d:limit=%d", postsPagePrefix, page, limit)
}
