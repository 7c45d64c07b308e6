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

type MembersController struct {
	fx.In

	Repo     MemberStore
	Sessions SessionStore
	Validate *validator.Validate
}

func RegisterMembersController(r *utils.Router, c MembersController) {
	members := r.Group("/api/members", protected(c.Sessions))

	members.Post("/", c.createMember)
	members.Delete("/:id", c.deleteMember)
}

type createMemberRequest struct {
	TeamId int64  `json:"teamId" validate:"required"`
	Name   string `json:"name" validate:"required,min=1,max=50"`
}

func (r *MembersController) createMember(c *fiber.Ctx) error {
	req := new(createMemberRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.StandardCouldNotParse(c)
	}

	if errs := utils.ValidateStruct(r.Validate, req); errs != nil {
		return validationError(c, "Invalid member value", errs)
	}

	team, err := r.Repo.AddMember(c.Context(), req.TeamId, userId(c), req.Name)
	if errors.Is(err, models.ErrNotFound) {
		return invalidTeamError(c)
	}
	if errors.Is(err, models.ErrMemberLimit) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Invalid members length. A team may have a maximum of %d members.", models.MaxMembers),
		})
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Created member",
		"team":    team,
	})
}

func (r *MembersController) deleteMember(c *fiber.Ctx) error {
	id, err := paramId(c)
	if err != nil {
		return utils.StandardCouldNotParse(c)
	}

	err = r.Repo.RemoveMember(c.Context(), id, userId(c))
	if errors.Is(err, models.ErrNotFound) {
		return invalidMemberError(c)
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Deleted member %d", id),
	})
}
