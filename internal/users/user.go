package users

import "time"

type User struct {
	Username          string    `json:"username"`
	PasswordHash      string    `json:"-"`
	HasProfilePicture bool      `json:"hasProfilePicture"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Picture struct {
	ContentType string
	Data        []byte
}
