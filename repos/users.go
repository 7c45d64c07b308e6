package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/median-man/team-tracker/models"
	"github.com/uptrace/bun"
)

type UserRepo struct {
	db *bun.DB
}

func NewUserRepo(db *bun.DB) *UserRepo {
	return &UserRepo{db: db}
}

// AddUser inserts the user and fills in the generated id and timestamps.
// The password field must already be hashed by the caller.
func (r *UserRepo) AddUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)

	err := r.db.NewSelect().Model(user).Where(`u.email = ?`, email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepo) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().Model((*models.User)(nil)).
		Set("last_login = now()").
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// UserProfile loads the user with their teams, each with members in
// insertion order and notes newest-first. A non-zero teamId narrows the
// teams to that single id.
func (r *UserRepo) UserProfile(ctx context.Context, id, teamId int64) (*models.User, error) {
	user := new(models.User)

	err := r.db.NewSelect().Model(user).
		ExcludeColumn("password").
		Relation("Teams", func(q *bun.SelectQuery) *bun.SelectQuery {
			if teamId > 0 {
				q = q.Where("t.id = ?", teamId)
			}
			return q.Order("t.id ASC")
		}).
		Relation("Teams.Members", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("m.id ASC")
		}).
		Relation("Teams.Notes", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("n.created_at DESC")
		}).
		Where(`u.id = ?`, id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
