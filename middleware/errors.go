package middleware

import (
	"errors"
	"net/http"

	"pujasari/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler menulis semua error sebagai {statusCode, error, message}.
// Error selain *fiber.Error dianggap 500 dan detailnya hanya masuk log.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := http.StatusText(code)

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
			message = ferr.Message
		} else {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).Error("Kesalahan tidak terduga")
		}
		return c.Status(code).JSON(schema.NewErrorResponse(code, message))
	}
}

// resolve menjalankan error handler di dalam middleware agar status
// response sudah final saat dicatat.
func resolve(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
