package api

import (
	"context"
	"errors"

	"github.com/jmorel/portfolio-cms-backend/models"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal adds the authenticated principal to the context
func ctxWithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// ctxGetPrincipal retrieves the authenticated principal from the context
func ctxGetPrincipal(ctx context.Context) (models.Principal, error) {
	value := ctx.Value(principalKey)
	if value == nil {
		return models.Principal{}, errors.New("no principal in context")
	}
	principal, ok := value.(models.Principal)
	if !ok {
		return models.Principal{}, errors.New("principal has unexpected type")
	}
	return principal, nil
}
