package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/median-man/team-tracker/config"
	"github.com/median-man/team-tracker/models"
	"github.com/median-man/team-tracker/providers"
	"github.com/median-man/team-tracker/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"go.uber.org/fx"
)

type UserController struct {
	fx.In

	Repo     UserStore
	Sessions SessionStore
	Mailer   providers.Mailer
	Validate *validator.Validate
	Config   *config.Config
}

func RegisterUserController(r *utils.Router, c UserController) {
	users := r.Group("/api/users")

	users.Post("/", c.createUser)
	users.Post("/login", c.login)
	users.Post("/logout", protected(c.Sessions), c.logout)
	users.Get("/me", protected(c.Sessions), c.me)
}

type signupRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *UserController) createUser(c *fiber.Ctx) error {
	req := new(signupRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.StandardCouldNotParse(c)
	}

	if errs := utils.ValidateStruct(r.Validate, req); errs != nil {
		return validationError(c, "Invalid user value", errs)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := r.Repo.AddUser(c.Context(), user); err != nil {
		var dup *models.DuplicateError
		if errors.As(err, &dup) {
			value := req.Username
			if dup.Field == "email" {
				value = req.Email
			}
			dup.Value = value
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": dup.Error(),
			})
		}
		return utils.StandardInternalError(c, err)
	}

	tokens, err := r.issueTokens(user)
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	if err := r.startSession(c, user.Id); err != nil {
		return utils.StandardInternalError(c, err)
	}

	go func(u models.User) {
		if err := r.Mailer.SendWelcome(&u); err != nil {
			log.Error().Err(err).Str("email", u.Email).Msg("Failed to send welcome email")
		}
	}(*user)

	return c.JSON(fiber.Map{
		"message":       "Created user",
		"user":          user,
		"token":         tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (r *UserController) login(c *fiber.Ctx) error {
	req := new(loginRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.StandardCouldNotParse(c)
	}

	// The same response for an unknown email and a wrong password, so the
	// endpoint cannot be used to probe which emails are registered.
	user, err := r.Repo.GetUserByEmail(c.Context(), req.Email)
	if errors.Is(err, models.ErrNotFound) {
		return invalidCredentials(c)
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	if !utils.VerifyHash(req.Password, user.Password) {
		return invalidCredentials(c)
	}

	if err := r.Repo.TouchLastLogin(c.Context(), user.Id); err != nil {
		return utils.StandardInternalError(c, err)
	}
	user.LastLogin = time.Now()

	tokens, err := r.issueTokens(user)
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	// Rotate the session on every login.
	if old := c.Cookies(utils.SessionCookie); old != "" {
		r.Sessions.Destroy(c.Context(), old)
	}
	if err := r.startSession(c, user.Id); err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Logged in",
		"user": fiber.Map{
			"id":        user.Id,
			"username":  user.Username,
			"email":     user.Email,
			"lastLogin": user.LastLogin,
		},
		"token":         tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (r *UserController) logout(c *fiber.Ctx) error {
	if id, ok := c.Locals("session").(string); ok && id != "" {
		if err := r.Sessions.Destroy(c.Context(), id); err != nil {
			return utils.StandardInternalError(c, err)
		}
	}
	c.ClearCookie(utils.SessionCookie)

	return c.JSON(fiber.Map{
		"message": "Good bye.",
	})
}

func (r *UserController) me(c *fiber.Ctx) error {
	var teamId int64
	if raw := c.Query("team"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.StandardCouldNotParse(c)
		}
		teamId = id
	}

	user, err := r.Repo.UserProfile(c.Context(), userId(c), teamId)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	if err != nil {
		return utils.StandardInternalError(c, err)
	}

	return c.JSON(user)
}

func (r *UserController) issueTokens(user *models.User) (*oauth2.Token, error) {
	return utils.OAuthJwt(
		strconv.FormatInt(user.Id, 10),
		"basic",
		map[string]string{"username": user.Username, "email": user.Email},
		r.Config.JwtParsedPrivateKey,
	)
}

func (r *UserController) startSession(c *fiber.Ctx, id int64) error {
	sessionId, err := r.Sessions.Create(c.Context(), id)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    sessionId,
		HTTPOnly: true,
		Secure:   r.Config.IsProduction,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(r.Config.SessionTTL),
	})
	return nil
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Invalid email or password given",
	})
}
