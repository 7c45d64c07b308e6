package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"users,alias:u"`

	Id        int64     `bun:",pk,autoincrement" json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	LastLogin time.Time `bun:",nullzero,default:now()" json:"lastLogin"`
	CreatedAt time.Time `bun:",nullzero,default:now()" json:"-"`
	UpdatedAt time.Time `bun:",nullzero,default:now()" json:"-"`

	Teams []*Team `bun:"rel:has-many,join:id=user_id" json:"teams,omitempty"`
}
