package catalog

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// createTestVendorDB creates a temporary vendors.db for testing
func createTestVendorDB(t *testing.T, dir string) string {
	t.Helper()

	dbPath := filepath.Join(dir, "vendors.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to create test DB: %v", err)
	}
	defer db.Close()

	statements := []string{
		`CREATE TABLE vendors (
			id TEXT PRIMARY KEY, name TEXT, rating REAL, review_count INTEGER,
			location TEXT, founded_year INTEGER, employee_count INTEGER,
			description TEXT, industries TEXT, llm INTEGER, image_recognition INTEGER,
			time_series INTEGER, optimization INTEGER, price_min INTEGER, price_max INTEGER,
			on_time_delivery_rate REAL, quality_score REAL, repeat_rate REAL,
			avg_response_time REAL, available_from TEXT, monthly_capacity INTEGER,
			certifications TEXT, featured INTEGER
		)`,
		`INSERT INTO vendors VALUES (
			'test-vendor', 'Test Vendor', 4.5, 10, 'Tokyo', 2020, 15,
			'A test vendor', '["manufacturing"]', 3, 4, 2, 2, 8000000, 2000000,
			0.9, 4.2, 0.5, 6, '2025-10-01', 2, '["ISO27001"]', 1
		)`,
		`INSERT INTO vendors VALUES (
			'bad-vendor', 'Bad Vendor', 4.0, 5, 'Osaka', 2021, 8,
			'Broken row', 'not-json', 2, 2, 2, 2, 1000000, 3000000,
			0.8, 4.0, 0.4, 4, '2025-10-01', 1, '[]', 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to execute: %s: %v", stmt, err)
		}
	}
	return dbPath
}

func TestLoadFromSQLite(t *testing.T) {
	dir := t.TempDir()
	createTestVendorDB(t, dir)

	c := Load(dir)

	if len(c.Vendors()) != 1 {
		t.Fatalf("Expected 1 valid vendor (bad row skipped), got %d", len(c.Vendors()))
	}
	v, ok := c.Vendor("test-vendor")
	if !ok {
		t.Fatal("Expected test-vendor to load")
	}
	if !v.ServesIndustry("manufacturing") {
		t.Errorf("Expected industries to decode, got %v", v.Industries)
	}
	// price_min > price_max in the row; load must repair by swapping
	if v.PriceRange.Min != 2000000 || v.PriceRange.Max != 8000000 {
		t.Errorf("Expected repaired price range, got %+v", v.PriceRange)
	}
	if v.AvailableFrom.Format("2006-01-02") != "2025-10-01" {
		t.Errorf("Expected available_from to parse, got %v", v.AvailableFrom)
	}
	if !v.Featured {
		t.Error("Expected featured flag to decode")
	}
}

func TestLoadFromJSONFile(t *testing.T) {
	dir := t.TempDir()
	content := `[{"id":"json-vendor","name":"JSON Vendor","rating":4.0,
		"industries":["retail"],"priceRange":{"min":1000000,"max":4000000},
		"availableFrom":"2025-09-01"}]`
	if err := os.WriteFile(filepath.Join(dir, "vendors.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := Load(dir)

	if len(c.Vendors()) != 1 {
		t.Fatalf("Expected 1 vendor from JSON file, got %d", len(c.Vendors()))
	}
	if _, ok := c.Vendor("json-vendor"); !ok {
		t.Error("Expected json-vendor to load")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Empty directory: no vendors.db, no vendors.json
	c := Load(t.TempDir())

	if c.Source() != "embedded" {
		t.Errorf("Expected embedded fallback, got %q", c.Source())
	}
	if len(c.Vendors()) == 0 {
		t.Error("Expected embedded vendors")
	}
}

func TestLoadSkipsCorruptDB(t *testing.T) {
	dir := t.TempDir()
	// A vendors.db that is not a vendor database
	dbPath := filepath.Join(dir, "vendors.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE other (id TEXT)`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	c := Load(dir)

	if c.Source() != "embedded" {
		t.Errorf("Expected fallback to embedded catalog, got %q", c.Source())
	}
}
