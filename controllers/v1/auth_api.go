package apiv1

import (
	"resto-hr-backend/controllers"
	authhandler "resto-hr-backend/lib/auth"
	employeehandler "resto-hr-backend/lib/employee"
	"resto-hr-backend/middleware"
	apimodels "resto-hr-backend/models/api"
	authapimodels "resto-hr-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary User login
// @Tags Auth
// @Description Checks credentials and returns a JWT pair
// @Param	body	body	authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, hMsg, err := authhandler.Instance.Login(payload)
	if err != nil || hMsg != "" {
		return c.SendError(ctx, c.GetLogger(ctx), err, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}

// @Summary Refresh JWT
// @Tags Auth
// @Description Issues a new JWT pair from a refresh token
// @Param	body	body	authapimodels.RefreshData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, hMsg, err := authhandler.Instance.Refresh(payload)
	if err != nil || hMsg != "" {
		return c.SendError(ctx, c.GetLogger(ctx), err, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}

// @Summary Current user profile
// @Tags Auth
// @Description Returns the profile of the authenticated user
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := employeehandler.Instance.Get(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	if view == nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
