package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Member struct {
	bun.BaseModel `bun:"members,alias:m"`

	Id        int64     `bun:",pk,autoincrement" json:"id"`
	Name      string    `json:"name"`
	TeamId    int64     `json:"teamId"`
	CreatedAt time.Time `bun:",nullzero,default:now()" json:"-"`

	Team *Team `bun:"rel:belongs-to,join:team_id=id" json:"-"`
}
