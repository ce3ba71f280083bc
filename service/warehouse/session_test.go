package warehouse

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hhyeonhee/ULTRA/config"
)

const testCatalogCSV = "number,name,attribute,category,subcategory,unit,price\n" +
	"P1,Bolt M6,steel,Hardware,Fasteners,EA,0.10\n" +
	"P2,Nut M6,steel,Hardware,Fasteners,BOX,0.05\n" +
	"P3,Paint Red,,Supplies,,CAN,4.50\n"

const testZonesCSV = "warehouse,columns,col,alias\n" +
	"Main,2,,\n" +
	"Main,,1,Inbound\n" +
	"Annex,3,,\n"

const testStatusCSV = "warehouse,col,slot,productno,productname,qty,unit,memo\n" +
	"Main,1,1,P1,Bolt M6,4,EA,first batch\n" +
	"Main,2,3,P2,Nut M6,7,BOX,\n" +
	"Annex,1,1,P1,Bolt M6,9,EA,\n"

// testFiles writes CSV fixtures into a temp dir and returns their locations.
// Empty content skips the file (a missing resource is an empty resource).
func testFiles(t *testing.T, catalog, zones, status string) config.CSVFiles {
	t.Helper()
	dir := t.TempDir()
	files := config.CSVFiles{
		Products: filepath.Join(dir, "products.csv"),
		Zones:    filepath.Join(dir, "zones.csv"),
		Status:   filepath.Join(dir, "status.csv"),
	}
	for path, content := range map[string]string{
		files.Products: catalog,
		files.Zones:    zones,
		files.Status:   status,
	} {
		if content == "" {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", path, err)
		}
	}
	return files
}

func loadedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(testFiles(t, testCatalogCSV, testZonesCSV, testStatusCSV))
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestSession_Load(t *testing.T) {
	s := loadedSession(t)

	whs := s.Warehouses()
	if len(whs) != 2 || whs[0].Name != "Main" || whs[1].Name != "Annex" {
		t.Fatalf("warehouses = %+v, want [Main Annex]", whs)
	}
	if s.Selected() != "Main" {
		t.Fatalf("selected = %q, want Main", s.Selected())
	}
	if s.ColumnCount() != 2 {
		t.Fatalf("columns = %d, want 2", s.ColumnCount())
	}

	view := s.View()
	if got := view.Columns[0].Header; got != "Col 01 (Inbound)" {
		t.Fatalf("header = %q, want aliased header", got)
	}
	cell := view.Columns[0].Slots[0]
	if cell.Empty || cell.ProductNo != "P1" || cell.Qty != 4 || cell.Memo != "first batch" {
		t.Fatalf("cell = %+v, want occupied P1 qty=4", cell)
	}
}

func TestSession_LoadEmptyStateSynthesizesDefault(t *testing.T) {
	s := NewSession(testFiles(t, "", "", ""))
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	whs := s.Warehouses()
	if len(whs) != 1 || whs[0].Name != DefaultWarehouse {
		t.Fatalf("warehouses = %+v, want the synthesized default", whs)
	}
	if s.ColumnCount() != 4 {
		t.Fatalf("columns = %d, want 4", s.ColumnCount())
	}
}

func TestSession_LoadSkipsMalformedRows(t *testing.T) {
	status := "warehouse,col,slot,productno,productname,qty,unit,memo\n" +
		"Main,1,1,P1,Bolt M6,4,EA,\n" +
		",2,2,P9,Ghost,1,EA,\n" + // missing warehouse
		"Main,0,2,P9,Ghost,1,EA,\n" + // bad column
		"Main,1,2,P9,Ghost,lots,EA,\n" + // unparseable qty
		"Main,1,3,P2,Nut M6,7,BOX,\n"
	s := NewSession(testFiles(t, testCatalogCSV, testZonesCSV, status))
	if err := s.Load(); err != nil {
		t.Fatalf("load must survive single-row corruption: %v", err)
	}
	view := s.View()
	occupied := 0
	for _, col := range view.Columns {
		for _, sl := range col.Slots {
			if !sl.Empty {
				occupied++
			}
		}
	}
	if occupied != 2 {
		t.Fatalf("occupied = %d, want 2 (bad rows skipped, good rows kept)", occupied)
	}
}

func TestSession_LoadFailureKeepsPriorState(t *testing.T) {
	files := testFiles(t, testCatalogCSV, testZonesCSV, testStatusCSV)
	s := NewSession(files)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	// Replace the status file with a directory so the reload fails outright.
	if err := os.Remove(files.Status); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.Mkdir(files.Status, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := s.Cancel(); err == nil {
		t.Fatal("expected reload error")
	}
	// Prior state must be intact.
	cell := s.View().Columns[0].Slots[0]
	if cell.Empty || cell.ProductNo != "P1" {
		t.Fatalf("cell = %+v, prior state must survive a failed reload", cell)
	}
}

func TestSession_CancelDiscardsUnsavedChanges(t *testing.T) {
	s := loadedSession(t)
	if err := s.Clear(1, 1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.AddWarehouse("Temp"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if s.Selected() != "Temp" {
		t.Fatalf("selected = %q, want Temp", s.Selected())
	}

	if err := s.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	// Added warehouse is gone, selection falls back to the first one.
	if len(s.Warehouses()) != 2 {
		t.Fatalf("warehouses = %+v, want the two persisted ones", s.Warehouses())
	}
	if s.Selected() != "Main" {
		t.Fatalf("selected = %q, want Main", s.Selected())
	}
	if cell := s.View().Columns[0].Slots[0]; cell.Empty {
		t.Fatal("cleared slot must be restored from disk")
	}
}

func TestSession_CancelKeepsSelectionWhenStillPresent(t *testing.T) {
	s := loadedSession(t)
	if err := s.SelectWarehouse("Annex"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Clear(1, 1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if s.Selected() != "Annex" {
		t.Fatalf("selected = %q, want Annex (selection survives cancel)", s.Selected())
	}
}

func TestSession_SaveLoadRoundTrip(t *testing.T) {
	s := loadedSession(t)
	if err := s.Assign("P3", "Paint Red", "CAN", 2, 5); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := s.RenameColumn(2, "Outbound"); err != nil {
		t.Fatalf("rename column: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A fresh session over the same files must reproduce the state.
	reloaded := NewSession(s.files)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(reloaded.View(), s.View()) {
		t.Fatal("view after reload differs from saved state")
	}
	if !reflect.DeepEqual(reloaded.Warehouses(), s.Warehouses()) {
		t.Fatal("warehouse list after reload differs from saved state")
	}

	// Saving again without changes is idempotent.
	if err := reloaded.Save(); err != nil {
		t.Fatalf("second save: %v", err)
	}
	again := NewSession(s.files)
	if err := again.Load(); err != nil {
		t.Fatalf("third load: %v", err)
	}
	if !reflect.DeepEqual(again.View(), s.View()) {
		t.Fatal("save/load is not idempotent")
	}
}

func TestSession_SavePreservesCatalogPassthrough(t *testing.T) {
	s := loadedSession(t)
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(s.files.Products)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	got := string(raw)
	for _, want := range []string{"price", "0.10", "4.50"} {
		if !strings.Contains(got, want) {
			t.Fatalf("saved catalog lost pass-through data %q:\n%s", want, got)
		}
	}
}
