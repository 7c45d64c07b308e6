package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/median-man/team-tracker/models"
	"github.com/median-man/team-tracker/utils"

	"go.uber.org/fx"
)

type NotesController struct {
	fx.In

	Repo     NoteStore
	Sessions SessionStore
	Validate *validator.Validate
}

func RegisterNotesController(r *utils.Router, c NotesController) {
	notes := r.Group("/api/notes", protected(c.Sessions))

	notes.Post("/", c.createNote)
	notes.Patch("/:id", c.updateNote)
	notes.Delete("/:id", c.deleteNote)
}

type createNoteRequest struct {
	TeamId int64  `json:"teamId" validate:"required"`
	Body   string `json:"body" validate:"required,min=1"`
}

type updateNoteRequest struct {
	Body string `json:"body" validate:"required,min=1"`
}

func (r *NotesController) createNote(c *fiber.Ctx) error {
	req := new(createNoteRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.StandardCouldNotParse(c)
	}

	if errs := utils.ValidateStruct(r.Validate, req); errs != nil {
		return validationError(c, "Invalid note value", errs)
	}

	note := &models.Note{
		TeamId: req.TeamId,
		Body:   req.Body,
		UserId: userId(c),
	}
	err := r.Repo.AddNote(c.Context(), note)
	if errors.Is(err, models.ErrNotFound) {
		return invalidTeamError(c)
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Created note",
		"note":    note,
	})
}

func (r *NotesController) updateNote(c *fiber.Ctx) error {
	id, err := paramId(c)
	if err != nil {
		return utils.StandardCouldNotParse(c)
	}

	req := new(updateNoteRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.StandardCouldNotParse(c)
	}

	if errs := utils.ValidateStruct(r.Validate, req); errs != nil {
		return validationError(c, "Invalid note value", errs)
	}

	note, err := r.Repo.UpdateNote(c.Context(), id, userId(c), req.Body)
	if errors.Is(err, models.ErrNotFound) {
		return invalidNoteError(c)
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"note":    note,
	})
}

func (r *NotesController) deleteNote(c *fiber.Ctx) error {
	id, err := paramId(c)
	if err != nil {
		return utils.StandardCouldNotParse(c)
	}

	err = r.Repo.DeleteNote(c.Context(), id, userId(c))
	if errors.Is(err, models.ErrNotFound) {
		return invalidNoteError(c)
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"note":    nil,
	})
}
