package models

import (
	"time"

	"github.com/uptrace/bun"
)

// MaxMembers caps the number of members a single team may hold.
const MaxMembers = 5

type Team struct {
	bun.BaseModel `bun:"teams,alias:t"`

	Id        int64     `bun:",pk,autoincrement" json:"id"`
	Name      string    `json:"name"`
	UserId    int64     `json:"userId"`
	App       *App      `bun:"app,type:jsonb,nullzero" json:"app,omitempty"`
	CreatedAt time.Time `bun:",nullzero,default:now()" json:"createdAt"`
	UpdatedAt time.Time `bun:",nullzero,default:now()" json:"-"`

	Members []*Member `bun:"rel:has-many,join:id=team_id" json:"members,omitempty"`
	Notes   []*Note   `bun:"rel:has-many,join:id=team_id" json:"notes,omitempty"`
}

// MemberNames returns the display names of the loaded members in insertion
// order.
func (t *Team) MemberNames() []string {
	names := make([]string, len(t.Members))
	for i, m := range t.Members {
		names[i] = m.Name
	}
	return names
}

func (t *Team) HasMember(name string) bool {
	for _, m := range t.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

// TeamPatch carries the optional fields of a team update. Nil fields are
// left untouched; a non-nil App replaces the whole sub-record.
type TeamPatch struct {
	Name *string
	App  *App
}

// App holds metadata about the side project a team is building. Stored as a
// jsonb sub-record on the team row.
type App struct {
	Title   string    `json:"title,omitempty"`
	RepoUrl string    `json:"repoUrl,omitempty"`
	Url     string    `json:"url,omitempty"`
	Links   []AppLink `json:"links,omitempty"`
}

type AppLink struct {
	Label string `json:"label"`
	Url   string `json:"url"`
}
