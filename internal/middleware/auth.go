package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	UserIDHeader = "X-User-ID"
	actorKey     = "actor"
)

type ActorResolver interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth resolves the X-User-ID header to an actor. Identity is asserted by
// the gateway in front of this service; Auth only checks the user exists.
func Auth(users ActorResolver, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "resolve actor",
				logger.String("user_id", id),
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		SetActor(c, domain.ActorFromUser(user))
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}
		if actor.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

func SetActor(c *ginext.Context, actor domain.Actor) {
	c.Set(actorKey, actor)
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
