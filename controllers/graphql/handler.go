package graphqlapi

import (
	"context"
	"encoding/json"
	"resto-hr-backend/middleware"
	"resto-hr-backend/models"
	apimodels "resto-hr-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type ctxKey string

const (
	ctxUserID   ctxKey = "user_id"
	ctxUserRole ctxKey = "user_role"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// InitGraphQLApi mounts the single POST endpoint all schedule and HR
// operations go through. Authentication is JWT, per-operation role checks
// live in the resolvers.
func InitGraphQLApi(app *fiber.App) {
	schema, err := NewSchema()
	if err != nil {
		log.WithError(err).Fatal("graphql schema build failed")
	}
	app.Use(middleware.AuthorizationRequired())
	app.Post("/", func(ctx *fiber.Ctx) error {
		var payload graphqlRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			log.WithError(err).Error("graphql request parse failed")
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read request data"))
		}
		reqCtx := context.WithValue(ctx.UserContext(), ctxUserID, middleware.GetUserID(ctx))
		reqCtx = context.WithValue(reqCtx, ctxUserRole, middleware.GetUserRole(ctx))
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  payload.Query,
			OperationName:  payload.OperationName,
			VariableValues: payload.Variables,
			Context:        reqCtx,
		})
		return ctx.Status(fiber.StatusOK).JSON(result)
	})
}

func userID(ctx context.Context) string {
	id, _ := ctx.Value(ctxUserID).(string)
	return id
}

func userRole(ctx context.Context) models.UserRole {
	role, _ := ctx.Value(ctxUserRole).(models.UserRole)
	return role
}

func requireAdmin(ctx context.Context) error {
	if !userRole(ctx).IsAdmin() {
		return errors.New("operation not allowed")
	}
	return nil
}

func requireManager(ctx context.Context) error {
	role := userRole(ctx)
	if !role.IsAdmin() && !role.IsManager() {
		return errors.New("operation not allowed")
	}
	return nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	if value, ok := p.Args[name].(string); ok {
		return value
	}
	return ""
}

func optStringArg(p graphql.ResolveParams, name string) *string {
	if value, ok := p.Args[name].(string); ok {
		return &value
	}
	return nil
}
