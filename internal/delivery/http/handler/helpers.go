package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/surfquest-catalog/internal/filter"
	"github.com/surfquest-catalog/internal/pkg/errors"
)

// selectionFromQuery читает значения фасетов из query string (имена параметров совпадают с фасетами)
func selectionFromQuery(c *fiber.Ctx, facets []filter.Facet) filter.Selection {
	return filter.FromLookup(facets, func(key string) string {
		// c.Query возвращает строку поверх буфера запроса; копируем, т.к. выбор может пережить запрос
		return strings.Clone(c.Query(key))
	})
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", errors.ErrUnauthorized
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}

// waitParam - ?wait=true просит дождаться результатов отложенного поиска
func waitParam(c *fiber.Ctx) bool {
	wait, err := strconv.ParseBool(c.Query("wait", "false"))
	return err == nil && wait
}
