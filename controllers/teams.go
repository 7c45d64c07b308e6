package controllers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/median-man/team-tracker/models"
	"github.com/median-man/team-tracker/utils"

	"go.uber.org/fx"
)

type TeamsController struct {
	fx.In

	Repo     TeamStore
	Sessions SessionStore
	Validate *validator.Validate
}

func RegisterTeamsController(r *utils.Router, c TeamsController) {
	teams := r.Group("/api/teams", protected(c.Sessions))

	teams.Post("/", c.createTeam)
	teams.Patch("/:id", c.updateTeam)
	teams.Delete("/:id", c.deleteTeam)
}

type createTeamRequest struct {
	Name    string   `json:"name" validate:"required,min=1,max=50"`
	Members []string `json:"members" validate:"max=5,dive,min=1,max=50"`
}

type appInput struct {
	Title   string      `json:"title" validate:"omitempty,min=1,max=50"`
	RepoUrl string      `json:"repoUrl" validate:"omitempty,repourl"`
	Url     string      `json:"url" validate:"omitempty,url"`
	Links   []linkInput `json:"links" validate:"dive"`
}

type linkInput struct {
	Label string `json:"label" validate:"required"`
	Url   string `json:"url" validate:"required,url"`
}

type updateTeamRequest struct {
	Name *string   `json:"name" validate:"omitempty,min=1,max=50"`
	App  *appInput `json:"app"`
}

func (a *appInput) toModel() *models.App {
	app := &models.App{Title: a.Title, RepoUrl: a.RepoUrl, Url: a.Url}
	for _, l := range a.Links {
		app.Links = append(app.Links, models.AppLink{Label: l.Label, Url: l.Url})
	}
	return app
}

func (r *TeamsController) createTeam(c *fiber.Ctx) error {
	req := new(createTeamRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.StandardCouldNotParse(c)
	}

	if errs := utils.ValidateStruct(r.Validate, req); errs != nil {
		return validationError(c, "Invalid team value", errs)
	}

	team := &models.Team{
		Name:   req.Name,
		UserId: userId(c),
	}
	if err := r.Repo.AddTeamTx(c.Context(), team, req.Members); err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Created team",
		"team":    team,
	})
}

func (r *TeamsController) updateTeam(c *fiber.Ctx) error {
	id, err := paramId(c)
	if err != nil {
		return utils.StandardCouldNotParse(c)
	}

	req := new(updateTeamRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.StandardCouldNotParse(c)
	}

	if errs := utils.ValidateStruct(r.Validate, req); errs != nil {
		return validationError(c, "Invalid team value", errs)
	}

	patch := models.TeamPatch{Name: req.Name}
	if req.App != nil {
		patch.App = req.App.toModel()
	}

	team, err := r.Repo.UpdateTeam(c.Context(), id, userId(c), patch)
	if errors.Is(err, models.ErrNotFound) {
		return invalidTeamError(c)
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

func (r *TeamsController) deleteTeam(c *fiber.Ctx) error {
	id, err := paramId(c)
	if err != nil {
		return utils.StandardCouldNotParse(c)
	}

	err = r.Repo.DeleteTeam(c.Context(), id, userId(c))
	if errors.Is(err, models.ErrNotFound) {
		return invalidTeamError(c)
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Deleted team %d", id),
	})
}
