package controllers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/median-man/team-tracker/models"
	"github.com/median-man/team-tracker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotesApp(t *testing.T, notes *fakeNotes) *fiber.App {
	t.Helper()

	app := fiber.New()
	RegisterNotesController(utils.GetDefaultRouter(app), NotesController{
		Repo:     notes,
		Sessions: newFakeSessions(),
		Validate: utils.NewValidator(),
	})
	return app
}

func TestCreateNote_Success(t *testing.T) {
	notes := &fakeNotes{}
	app := newNotesApp(t, notes)

	req := jsonRequest(t, "POST", "/api/notes/", fiber.Map{
		"teamId": 1,
		"body":   "Kickoff meeting on Monday.",
	})
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7))
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created note", body["message"])

	note := body["note"].(map[string]interface{})
	assert.Equal(t, "Kickoff meeting on Monday.", note["body"])

	require.Len(t, notes.added, 1)
	assert.Equal(t, int64(1), notes.added[0].TeamId)
	assert.Equal(t, int64(7), notes.added[0].UserId)
}

func TestCreateNote_EmptyBody(t *testing.T) {
	notes := &fakeNotes{}
	app := newNotesApp(t, notes)

	req := jsonRequest(t, "POST", "/api/notes/", fiber.Map{"teamId": 1, "body": ""})
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7))
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "Invalid note value", body["message"])
	assert.Contains(t, body["errors"].(map[string]interface{}), "body")
	assert.Empty(t, notes.added)
}

func TestCreateNote_UnownedTeam(t *testing.T) {
	notes := &fakeNotes{addErr: models.ErrNotFound}
	app := newNotesApp(t, notes)

	req := jsonRequest(t, "POST", "/api/notes/", fiber.Map{
		"teamId": 1,
		"body":   "should not land",
	})
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 99))
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Team doesn't exist or user is not the team owner.", body["message"])
}

func TestUpdateNote_Success(t *testing.T) {
	notes := &fakeNotes{updated: &models.Note{Id: 5, TeamId: 1, UserId: 7, Body: "Rescheduled to Tuesday."}}
	app := newNotesApp(t, notes)

	req := jsonRequest(t, "PATCH", "/api/notes/5", fiber.Map{"body": "Rescheduled to Tuesday."})
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7))
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Rescheduled to Tuesday.", body["note"].(map[string]interface{})["body"])
}

func TestUpdateNote_NotOwner(t *testing.T) {
	notes := &fakeNotes{updateErr: models.ErrNotFound}
	app := newNotesApp(t, notes)

	req := jsonRequest(t, "PATCH", "/api/notes/5", fiber.Map{"body": "hijack"})
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 99))
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["note"])
	assert.Equal(t, "Note doesn't exist or user is not the note owner.", body["message"])
}

func TestDeleteNote_Success(t *testing.T) {
	app := newNotesApp(t, &fakeNotes{})

	req := jsonRequest(t, "DELETE", "/api/notes/5", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7))
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["note"])
}

func TestDeleteNote_Missing(t *testing.T) {
	app := newNotesApp(t, &fakeNotes{deleteErr: models.ErrNotFound})

	req := jsonRequest(t, "DELETE", "/api/notes/404", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7))
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["note"])
}
