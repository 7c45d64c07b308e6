package repos

import (
	"context"
	"database/sql"

	"github.com/median-man/team-tracker/models"
	"github.com/uptrace/bun"
)

type NoteRepo struct {
	db *bun.DB
}

func NewNoteRepo(db *bun.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// AddNote creates the note after verifying the parent team belongs to the
// note's user. The note's UserId must be the caller's id.
func (r *NoteRepo) AddNote(ctx context.Context, note *models.Note) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		owned, err := tx.NewSelect().Model((*models.Team)(nil)).
			Where("id = ?", note.TeamId).
			Where("user_id = ?", note.UserId).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !owned {
			return models.ErrNotFound
		}

		_, err = tx.NewInsert().Model(note).Returning("*").Exec(ctx)
		return err
	})
}

// UpdateNote replaces the note body when the stored owner matches userId.
func (r *NoteRepo) UpdateNote(ctx context.Context, noteId, userId int64, body string) (*models.Note, error) {
	note := new(models.Note)

	res, err := r.db.NewUpdate().Model(note).
		Set("body = ?", body).
		Set("updated_at = now()").
		Where("id = ?", noteId).
		Where("user_id = ?", userId).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.ErrNotFound
	}
	return note, nil
}

func (r *NoteRepo) DeleteNote(ctx context.Context, noteId, userId int64) error {
	res, err := r.db.NewDelete().Model((*models.Note)(nil)).
		Where("id = ?", noteId).
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
