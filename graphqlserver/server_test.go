package graphqlserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	graphqlApi "github.com/hhyeonhee/ULTRA/api/graphql"
	"github.com/hhyeonhee/ULTRA/config"
	"github.com/hhyeonhee/ULTRA/graphqlserver"
	wh "github.com/hhyeonhee/ULTRA/service/warehouse"
)

const fixtureCatalog = "number,name,attribute,category,subcategory,unit\n" +
	"P1,Bolt M6,steel,Hardware,Fasteners,EA\n" +
	"P2,Paint Red,,Supplies,,CAN\n"

const fixtureZones = "warehouse,columns,col,alias\n" +
	"Main,2,,\n" +
	"Main,,1,Inbound\n" +
	"Annex,3,,\n"

const fixtureStatus = "warehouse,col,slot,productno,productname,qty,unit,memo\n" +
	"Main,1,1,P1,Bolt M6,4,EA,\n" +
	"Annex,1,1,P1,Bolt M6,9,EA,\n"

func testSession(t *testing.T) *wh.Session {
	t.Helper()
	dir := t.TempDir()
	files := config.CSVFiles{
		Products: filepath.Join(dir, "products.csv"),
		Zones:    filepath.Join(dir, "zones.csv"),
		Status:   filepath.Join(dir, "status.csv"),
	}
	for path, content := range map[string]string{
		files.Products: fixtureCatalog,
		files.Zones:    fixtureZones,
		files.Status:   fixtureStatus,
	} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	s := wh.NewSession(files)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func runQuery(t *testing.T, s *wh.Session, query string) *httptest.ResponseRecorder {
	t.Helper()
	schema, err := graphqlserver.NewSchema(s)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	e := echo.New()
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, schema)

	body, _ := json.Marshal(map[string]interface{}{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data   map[string]interface{}
		Errors []struct{ Message string }
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	return resp.Data
}

func TestQuery_Warehouses(t *testing.T) {
	rec := runQuery(t, testSession(t), `query { warehouses { name columns selected } }`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeResponse(t, rec)
	list, ok := data["warehouses"].([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("warehouses = %v, want 2 entries", data["warehouses"])
	}
	first := list[0].(map[string]interface{})
	if first["name"] != "Main" || first["selected"] != true {
		t.Errorf("first = %v, want selected Main", first)
	}
	if int(first["columns"].(float64)) != 2 {
		t.Errorf("columns = %v, want 2", first["columns"])
	}
}

func TestQuery_LayoutDefaultsToSelected(t *testing.T) {
	rec := runQuery(t, testSession(t),
		`query { layout { warehouse columns { col header slots { index empty productNo qty } } } }`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeResponse(t, rec)
	layout := data["layout"].(map[string]interface{})
	if layout["warehouse"] != "Main" {
		t.Fatalf("warehouse = %v, want Main", layout["warehouse"])
	}
	cols := layout["columns"].([]interface{})
	if len(cols) != 2 {
		t.Fatalf("columns = %d, want 2", len(cols))
	}
	first := cols[0].(map[string]interface{})
	if first["header"] != "Col 01 (Inbound)" {
		t.Errorf("header = %v", first["header"])
	}
	slots := first["slots"].([]interface{})
	if len(slots) != 10 {
		t.Fatalf("slots = %d, want 10", len(slots))
	}
	s0 := slots[0].(map[string]interface{})
	if s0["empty"] != false || s0["productNo"] != "P1" || int(s0["qty"].(float64)) != 4 {
		t.Errorf("slot (1,1) = %v, want P1 qty 4", s0)
	}
}

func TestQuery_LayoutByName(t *testing.T) {
	rec := runQuery(t, testSession(t), `query { layout(warehouse: "annex") { warehouse columns { col } } }`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeResponse(t, rec)
	layout := data["layout"].(map[string]interface{})
	if layout["warehouse"] != "Annex" {
		t.Errorf("warehouse = %v, want display name Annex", layout["warehouse"])
	}
	if cols := layout["columns"].([]interface{}); len(cols) != 3 {
		t.Errorf("columns = %d, want 3", len(cols))
	}
}

func TestQuery_LayoutUnknownWarehouse(t *testing.T) {
	rec := runQuery(t, testSession(t), `query { layout(warehouse: "nowhere") { warehouse } }`)
	var resp struct {
		Errors []struct{ Message string }
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) == 0 {
		t.Fatal("want error for unknown warehouse")
	}
}

func TestQuery_ProductsFiltered(t *testing.T) {
	rec := runQuery(t, testSession(t),
		`query { products(search: "bolt") { number name totalQty activeUnit } }`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decodeResponse(t, rec)
	list := data["products"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("products = %d, want 1", len(list))
	}
	p := list[0].(map[string]interface{})
	if p["number"] != "P1" {
		t.Errorf("number = %v, want P1", p["number"])
	}
	// Totals reflect the selected warehouse only: Main holds 4, Annex 9.
	if int(p["totalQty"].(float64)) != 4 {
		t.Errorf("totalQty = %v, want 4", p["totalQty"])
	}
	if p["activeUnit"] != "EA" {
		t.Errorf("activeUnit = %v, want EA", p["activeUnit"])
	}
}

func TestPlaygroundServed(t *testing.T) {
	schema, err := graphqlserver.NewSchema(testSession(t))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	e := echo.New()
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, schema)

	req := httptest.NewRequest(http.MethodGet, "/playground", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("graphql")) {
		t.Error("playground page missing query form")
	}
}
