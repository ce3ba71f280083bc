package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hhyeonhee/ULTRA/api"
	wh "github.com/hhyeonhee/ULTRA/service/warehouse"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func RegisterCatalogRoutes(apiGroup *echo.Group, s *wh.Session) {
	g := apiGroup.Group("/catalog")

	// GET /api/catalog?search=&category=&subcategory= – filtered product list
	// with the selected warehouse's totals
	g.GET("", func(c echo.Context) error {
		products := s.Products(wh.ProductFilter{
			Search:      c.QueryParam("search"),
			Category:    c.QueryParam("category"),
			SubCategory: c.QueryParam("subcategory"),
		})
		return c.JSON(http.StatusOK, echo.Map{
			"warehouse": s.Selected(),
			"count":     len(products),
			"products":  products,
		})
	})

	// GET /api/catalog/filters – category/subcategory option sets
	g.GET("/filters", func(c echo.Context) error {
		cats, subs := s.FilterOptions()
		return c.JSON(http.StatusOK, echo.Map{
			"categories":    cats,
			"subcategories": subs,
		})
	})
}
