package http

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/observability"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

const codeRequestFailed = "REQUEST_FAILED"

// NewApp builds a fiber app with the service's error envelope and global middlewares.
func NewApp(name string, logger *zap.Logger, timeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			writeError(c, logger, err)
			return nil
		},
	})
	RegisterMiddlewares(app, logger, timeout)
	return app
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger))
	app.Use(errorHandlingMiddleware(logger))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
			}
			if err != nil {
				writeError(c, logger, err)
				err = nil
			}
		}()
		return c.Next()
	}
}

// writeError renders err as {"error": msg, "code": code, "details"?: {...}}.
func writeError(c *fiber.Ctx, logger *zap.Logger, err error) {
	domainErr := fromFiberError(err)
	observability.RecordError(c.Route().Path, c.Method(), domainErr.Code)

	response := fiber.Map{
		"error": domainErr.Message,
		"code":  domainErr.Code,
	}
	if len(domainErr.Details) > 0 {
		response["details"] = domainErr.Details
	}
	if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(domainErr),
		)
	}
	_ = c.Status(domainErr.HTTPStatus).JSON(response)
}

// fromFiberError keeps framework errors (unknown route, bad method, oversized
// body) in the same envelope as domain errors.
func fromFiberError(err error) *apperrors.DomainError {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return apperrors.ToDomainError(err)
	}
	var code string
	switch {
	case fe.Code == fiber.StatusBadRequest:
		code = apperrors.CodeValidation
	case fe.Code == fiber.StatusUnauthorized:
		code = apperrors.CodeUnauthorized
	case fe.Code == fiber.StatusNotFound:
		code = apperrors.CodeNotFound
	case fe.Code >= fiber.StatusInternalServerError:
		code = apperrors.CodeInternal
	default:
		code = codeRequestFailed
	}
	domainErr := apperrors.NewDomainError(code, fe.Message, fe.Code, nil)
	domainErr.Err = err
	return domainErr
}
