package api

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hhyeonhee/ULTRA/config"
	"github.com/hhyeonhee/ULTRA/service/warehouse"
)

// NewServer builds the REST server: standard middleware, auth on the /api
// group, and every registered module applied against the session.
func NewServer(s *warehouse.Session) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(getAuthMiddleware())

	ApplyModules(apiGroup, s)
	ApplyRoutes(e, s)
	return e
}

func getAuthMiddleware() echo.MiddlewareFunc {
	skipPaths := config.GetAuthSkipperPaths()
	skipper := func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
	authType := os.Getenv("AUTH_TYPE")
	switch authType {
	case "key":
		apiKey := os.Getenv("API_KEY")
		return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			Validator: func(key string, c echo.Context) (bool, error) {
				return key == apiKey, nil
			},
			Skipper: skipper,
		})
	case "none":
		log.Println("API auth disabled (AUTH_TYPE=none)")
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	default:
		return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
			Validator: func(username, password string, c echo.Context) (bool, error) {
				return username == os.Getenv("API_USER") && password == os.Getenv("API_PASS"), nil
			},
			Skipper: skipper,
		})
	}
}
