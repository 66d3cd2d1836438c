package api

import "github.com/iudanet/postkeeper/internal/models"

// PostFromModel конвертирует доменный пост в API формат
func PostFromModel(p *models.Post) Post {
	out := Post{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.User != nil {
		u := UserFromModel(p.User)
		out.User = &u
	}
	return out
}

// PostsFromModels конвертирует срез доменных постов
func PostsFromModels(posts []*models.Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostFromModel(p))
	}
	return out
}

// ToModel конвертирует API пост в доменную модель
func (p Post) ToModel() *models.Post {
	out := &models.Post{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.User != nil {
		out.User = p.User.ToModel()
	}
	return out
}

// UserFromModel конвертирует доменного пользователя в API формат
func UserFromModel(u *models.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Address:   u.Address,
		Phone:     u.Phone,
		Website:   u.Website,
		Company:   u.Company,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToModel конвертирует API пользователя в доменную модель
func (u User) ToModel() *models.User {
	return &models.User{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Address:   u.Address,
		Phone:     u.Phone,
		Website:   u.Website,
		Company:   u.Company,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
