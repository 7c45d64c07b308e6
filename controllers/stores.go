package controllers

import (
	"context"

	"github.com/median-man/team-tracker/models"
)

// The store interfaces are what the controllers see of the repos package.
// They keep the handlers testable against in-memory fakes.

type UserStore interface {
	AddUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
	UserProfile(ctx context.Context, id, teamId int64) (*models.User, error)
}

type TeamStore interface {
	AddTeamTx(ctx context.Context, team *models.Team, memberNames []string) error
	UpdateTeam(ctx context.Context, teamId, userId int64, patch models.TeamPatch) (*models.Team, error)
	DeleteTeam(ctx context.Context, teamId, userId int64) error
}

type MemberStore interface {
	AddMember(ctx context.Context, teamId, userId int64, name string) (*models.Team, error)
	RemoveMember(ctx context.Context, memberId, userId int64) error
}

type NoteStore interface {
	AddNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, noteId, userId int64, body string) (*models.Note, error)
	DeleteNote(ctx context.Context, noteId, userId int64) error
}

// SessionStore is the server-side session lifecycle for browser logins.
type SessionStore interface {
	Create(ctx context.Context, userId int64) (string, error)
	Get(ctx context.Context, id string) (int64, error)
	Destroy(ctx context.Context, id string) error
}
