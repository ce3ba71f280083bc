package warehouse

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hhyeonhee/ULTRA/api"
	wh "github.com/hhyeonhee/ULTRA/service/warehouse"
)

func init() {
	api.RegisterModule(RegisterWarehouseRoutes)
}

// statusFor maps the validation taxonomy onto HTTP statuses. Anything not a
// validation failure is an I/O problem and stays a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, wh.ErrDuplicateWarehouse):
		return http.StatusConflict
	case errors.Is(err, wh.ErrUnknownWarehouse), errors.Is(err, wh.ErrUnknownProduct):
		return http.StatusNotFound
	case errors.Is(err, wh.ErrEmptyName), errors.Is(err, wh.ErrInvalidQuantity), errors.Is(err, wh.ErrNoEmptySlot):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c echo.Context, err error) error {
	return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
}

func RegisterWarehouseRoutes(apiGroup *echo.Group, s *wh.Session) {
	g := apiGroup.Group("/warehouse")

	// GET /api/warehouse – warehouse list with selection and column counts
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"warehouses": s.Warehouses(),
			"selected":   s.Selected(),
			"columns":    s.ColumnCount(),
		})
	})

	// POST /api/warehouse – add a warehouse
	g.POST("", func(c echo.Context) error {
		var body struct {
			Name string `json:"name"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.AddWarehouse(body.Name); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"selected": s.Selected()})
	})

	// DELETE /api/warehouse/:name – remove a warehouse and all its data
	g.DELETE("/:name", func(c echo.Context) error {
		if err := s.RemoveWarehouse(c.Param("name")); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"selected": s.Selected()})
	})

	// PUT /api/warehouse/rename – cascading rename across all three stores
	g.PUT("/rename", func(c echo.Context) error {
		var body struct {
			Old string `json:"old"`
			New string `json:"new"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.RenameWarehouse(body.Old, body.New); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"selected": s.Selected()})
	})

	// POST /api/warehouse/select – switch the active warehouse
	g.POST("/select", func(c echo.Context) error {
		var body struct {
			Name string `json:"name"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.SelectWarehouse(body.Name); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"selected": s.Selected(), "columns": s.ColumnCount()})
	})

	// PUT /api/warehouse/columns – set the active warehouse's column count
	g.PUT("/columns", func(c echo.Context) error {
		var body struct {
			Count int `json:"count"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.SetColumnCount(body.Count); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"columns": s.ColumnCount()})
	})

	// PUT /api/warehouse/columns/:col/alias – set or clear a column alias
	g.PUT("/columns/:col/alias", func(c echo.Context) error {
		col, err := strconv.Atoi(c.Param("col"))
		if err != nil || col < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "col must be a positive integer"})
		}
		var body struct {
			Alias string `json:"alias"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.RenameColumn(col, body.Alias); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// GET /api/warehouse/layout – the view projection of the active warehouse
	g.GET("/layout", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.View())
	})

	// POST /api/warehouse/assign – drop a product onto a slot
	g.POST("/assign", func(c echo.Context) error {
		var body struct {
			ProductNo   string `json:"product_no"`
			ProductName string `json:"product_name"`
			Unit        string `json:"unit"`
			Col         int    `json:"col"`
			Slot        int    `json:"slot"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.Assign(body.ProductNo, body.ProductName, body.Unit, body.Col, body.Slot); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, s.View())
	})

	// POST /api/warehouse/move – move, merge or swap two slots
	g.POST("/move", func(c echo.Context) error {
		var body struct {
			FromCol  int `json:"from_col"`
			FromSlot int `json:"from_slot"`
			ToCol    int `json:"to_col"`
			ToSlot   int `json:"to_slot"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.Move(body.FromCol, body.FromSlot, body.ToCol, body.ToSlot); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, s.View())
	})

	// POST /api/warehouse/clear – empty a slot
	g.POST("/clear", func(c echo.Context) error {
		var body struct {
			Col  int `json:"col"`
			Slot int `json:"slot"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.Clear(body.Col, body.Slot); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, s.View())
	})

	// POST /api/warehouse/stock – bulk stock add by product number
	g.POST("/stock", func(c echo.Context) error {
		var body struct {
			ProductNo string `json:"product_no"`
			Qty       int    `json:"qty"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.AddStock(body.ProductNo, body.Qty); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, s.View())
	})

	// PUT /api/warehouse/unit – set the unit on every slot of a product
	g.PUT("/unit", func(c echo.Context) error {
		var body struct {
			ProductNo string `json:"product_no"`
			Unit      string `json:"unit"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := s.SetUnit(body.ProductNo, body.Unit); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, s.View())
	})

	// POST /api/warehouse/save – persist all three resources
	g.POST("/save", func(c echo.Context) error {
		if err := s.Save(); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "saved"})
	})

	// POST /api/warehouse/cancel – discard unsaved changes, reload from disk
	g.POST("/cancel", func(c echo.Context) error {
		if err := s.Cancel(); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "reloaded", "selected": s.Selected()})
	})
}
