package models

type User struct {
	ID       int    `json:"userId"`
	Username string `json:"username"`
	Password string `json:"-"` // hash argon2id, jamais sérialisé
}
