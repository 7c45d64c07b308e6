package utils

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/rs/zerolog/log"
)

const authScheme = "Bearer"

// SessionCookie is the name of the HTTP-only cookie carrying the opaque
// session id for browser clients.
const SessionCookie = "session_id"

var (
	publicKey rsa.PublicKey
)

type Router struct {
	fiber.Router
}

func GetDefaultRouter(app *fiber.App) *Router {
	temp := app.Group("")
	return &Router{Router: temp}
}

func InitSharedConstants(pubKey rsa.PublicKey) {
	publicKey = pubKey
}

// SessionGetter resolves an opaque session id to the user id it was issued
// for.
type SessionGetter interface {
	Get(ctx context.Context, id string) (int64, error)
}

// AuthConfig controls how Protected extracts and checks credentials.
// ReadFrom is "header" (bearer JWT only), "cookie" (session only), or "any"
// (cookie first, then header).
type AuthConfig struct {
	ReadFrom string
	Subject  string
	Scopes   []string
	Sessions SessionGetter
}

// Protected authenticates the request and stores the caller's user id in
// c.Locals("user"). Every mutating route in the API sits behind it.
func Protected(config AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if config.ReadFrom == "cookie" || config.ReadFrom == "any" {
			if id := c.Cookies(SessionCookie); id != "" && config.Sessions != nil {
				userId, err := config.Sessions.Get(c.Context(), id)
				if err == nil {
					c.Locals("user", userId)
					c.Locals("session", id)
					return c.Next()
				}
			}
			if config.ReadFrom == "cookie" {
				return unauthorized(c, "Unauthorized. Login required.")
			}
		}

		rawToken, err := func() (string, error) {
			auth := c.Get("Authorization")
			l := len(authScheme)
			if len(auth) > l+1 && strings.EqualFold(auth[:l], authScheme) {
				return auth[l+1:], nil
			}

			return "", errors.New("missing or malformed JWT")
		}()
		if err != nil {
			return unauthorized(c, "Unauthorized. Login required.")
		}

		tok, err := jwt.Parse(rawToken, func(jwtToken *jwt.Token) (interface{}, error) {
			if _, ok := jwtToken.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected method: %s", jwtToken.Header["alg"])
			}
			return &publicKey, nil
		})
		if err != nil {
			return unauthorized(c, "Unauthorized. Login required.")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if ok && tok.Valid {
			sub, _ := claims["sub"].(string)
			if sub != config.Subject {
				return unauthorized(c, "Unauthorized. Login required.")
			}

			scope, _ := claims["scope"].(string)
			scopeArray := strings.Split(scope, " ")
			for _, s := range config.Scopes {
				if IsInList(s, &scopeArray) == -1 {
					return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
						"message": "User does not have permission for the requested resource.",
					})
				}
			}

			user, _ := claims["user"].(string)
			id, err := strconv.ParseInt(user, 10, 64)
			if err != nil {
				return unauthorized(c, "Unauthorized. Login required.")
			}

			c.Locals("user", id)
			return c.Next()
		}

		return unauthorized(c, "Unauthorized. Login required.")
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
	})
}

// StandardInternalError logs the cause and answers with a generic message so
// no internal detail reaches the client.
func StandardInternalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server error",
	})
}

func StandardCouldNotParse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Could not parse request",
	})
}
