package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Email          string
	Username       string
	Role           Role
	TelegramChatID *int64
}

// Actor is the authenticated identity behind a request.
type Actor struct {
	UserID string
	Email  string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func ActorFromUser(u *User) Actor {
	return Actor{UserID: u.ID, Email: u.Email, Role: u.Role}
}
