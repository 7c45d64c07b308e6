package repos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/median-man/team-tracker/models"
	"github.com/uptrace/bun"
)

type TeamRepo struct {
	db *bun.DB
}

func NewTeamRepo(db *bun.DB) *TeamRepo {
	return &TeamRepo{db: db}
}

// AddTeamTx creates the team and its initial member rows in one
// transaction. The member slice on the team is populated in insertion order.
func (r *TeamRepo) AddTeamTx(ctx context.Context, team *models.Team, memberNames []string) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(team).Returning("*").Exec(ctx); err != nil {
			return err
		}

		for _, name := range memberNames {
			member := &models.Member{Name: name, TeamId: team.Id}
			if _, err := tx.NewInsert().Model(member).Returning("*").Exec(ctx); err != nil {
				return err
			}
			team.Members = append(team.Members, member)
		}

		return nil
	})
}

// UpdateTeam applies the patch to a team matching both teamId and userId.
// No matching row yields models.ErrNotFound and no mutation.
func (r *TeamRepo) UpdateTeam(ctx context.Context, teamId, userId int64, patch models.TeamPatch) (*models.Team, error) {
	team := new(models.Team)

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().Model(team).
			Relation("Members", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("m.id ASC")
			}).
			Where("t.id = ?", teamId).
			Where("t.user_id = ?", userId).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}

		if patch.Name != nil {
			team.Name = *patch.Name
		}
		if patch.App != nil {
			team.App = patch.App
		}
		team.UpdatedAt = time.Now()

		_, err = tx.NewUpdate().Model(team).
			Column("name", "app", "updated_at").
			WherePK().
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam removes the team owned by userId. Members and notes go with it
// through the ON DELETE CASCADE constraints.
func (r *TeamRepo) DeleteTeam(ctx context.Context, teamId, userId int64) error {
	res, err := r.db.NewDelete().Model((*models.Team)(nil)).
		Where("id = ?", teamId).
		Where("user_id = ?", userId).
		Exec(ctx)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}
