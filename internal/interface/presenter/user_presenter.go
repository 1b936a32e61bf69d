package presenter

import (
	"strconv"

	"cloud.google.com/go/civil"

	"github.com/wichananm65/user-api/internal/domain/entity"
)

// UserPresenter shapes domain entities for delivery layer responses.
type UserPresenter struct {
	basePath string
}

// NewUserPresenter builds hyperlinks relative to basePath, e.g. "/api/users".
func NewUserPresenter(basePath string) *UserPresenter {
	return &UserPresenter{basePath: basePath}
}

type Link struct {
	Href string `json:"href"`
}

type Links struct {
	Self Link `json:"self"`
}

type UserResponse struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	BirthDate   civil.Date `json:"birthDate"`
	Address     *string    `json:"address,omitempty"`
	PhoneNumber *string    `json:"phoneNumber,omitempty"`
	Links       Links      `json:"_links"`
}

type UserListResponse struct {
	Embedded struct {
		Users []*UserResponse `json:"users"`
	} `json:"_embedded"`
	Links Links `json:"_links"`
}

func (p *UserPresenter) ToResponse(user entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		BirthDate:   user.BirthDate,
		Address:     user.Address,
		PhoneNumber: user.PhoneNumber,
		Links:       Links{Self: Link{Href: p.UserPath(user.ID)}},
	}
}

func (p *UserPresenter) ToList(users []entity.User) *UserListResponse {
	resp := &UserListResponse{Links: Links{Self: Link{Href: p.basePath}}}
	resp.Embedded.Users = make([]*UserResponse, 0, len(users))
	for _, user := range users {
		resp.Embedded.Users = append(resp.Embedded.Users, p.ToResponse(user))
	}
	return resp
}

// UserPath is the canonical location of a single user.
func (p *UserPresenter) UserPath(id int64) string {
	return p.basePath + "/" + strconv.FormatInt(id, 10)
}
