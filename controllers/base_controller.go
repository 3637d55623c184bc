package controllers

import (
	apimodels "resto-hr-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	return logger
}

// SendError maps a handler outcome to a response: a soft hMsg becomes a 400
// with the message, an error becomes a 500 without internals leaking out.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	if err != nil {
		logger.WithError(err).Error("request handling failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("parameter %v is not specified", key)
	}
	return id, nil
}
