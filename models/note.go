package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Note struct {
	bun.BaseModel `bun:"notes,alias:n"`

	Id     int64  `bun:",pk,autoincrement" json:"id"`
	Body   string `json:"body"`
	TeamId int64  `json:"teamId"`
	// Owner is reachable through the team, but keeping it on the note makes
	// the authorization check for update/delete a single filtered statement.
	UserId    int64     `json:"userId"`
	CreatedAt time.Time `bun:",nullzero,default:now()" json:"createdAt"`
	UpdatedAt time.Time `bun:",nullzero,default:now()" json:"-"`
}
