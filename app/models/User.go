package models

type User struct {
	Id       string
	Email    string
	Password string // bcrypt hash
}

type UserDto struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}
