package model

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Priority    string     `json:"priority"`
}

// UpdateTaskRequest uses pointer fields so that omitted keys can be told
// apart from explicit values. Omitted fields keep their stored value.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Priority    *string    `json:"priority"`
	Completed   *bool      `json:"completed"`
}
