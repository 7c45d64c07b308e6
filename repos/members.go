package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/median-man/team-tracker/models"
	"github.com/uptrace/bun"
)

type MemberRepo struct {
	db *bun.DB
}

func NewMemberRepo(db *bun.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// AddMember appends a member name to a team owned by userId and returns the
// team with its members loaded. Adding a name already on the team succeeds
// without duplicating it. The count check and insert share a transaction so
// concurrent adds cannot push the team past the limit.
func (r *MemberRepo) AddMember(ctx context.Context, teamId, userId int64, name string) (*models.Team, error) {
	team := new(models.Team)

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().Model(team).
			Relation("Members", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("m.id ASC")
			}).
			Where("t.id = ?", teamId).
			Where("t.user_id = ?", userId).
			For("UPDATE OF t").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}

		if team.HasMember(name) {
			return nil
		}
		if len(team.Members) >= models.MaxMembers {
			return models.ErrMemberLimit
		}

		member := &models.Member{Name: name, TeamId: team.Id}
		if _, err := tx.NewInsert().Model(member).Returning("*").Exec(ctx); err != nil {
			return err
		}
		team.Members = append(team.Members, member)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// RemoveMember deletes the member row if its team belongs to userId.
func (r *MemberRepo) RemoveMember(ctx context.Context, memberId, userId int64) error {
	res, err := r.db.NewDelete().Model((*models.Member)(nil)).
		Where("id = ?", memberId).
		Where("team_id IN (SELECT id FROM teams WHERE user_id = ?)", userId).
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
