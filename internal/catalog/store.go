package catalog

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed vendors.json
var embeddedVendors []byte

// Default returns the catalog built from the embedded vendor list
func Default() *Catalog {
	vendors, err := parseVendors(embeddedVendors)
	if err != nil {
		// The embedded list is validated by tests; a parse failure
		// here is a build defect.
		panic(fmt.Sprintf("embedded vendor list invalid: %v", err))
	}
	c := New(vendors)
	c.source = "embedded"
	return c
}

// Load builds the catalog from the data directory. It prefers
// <dataDir>/vendors.db (read-only sqlite), then <dataDir>/vendors.json,
// and falls back to the embedded vendor list. Unusable files are
// logged and skipped rather than treated as fatal.
func Load(dataDir string) *Catalog {
	dbPath := filepath.Join(dataDir, "vendors.db")
	if _, err := os.Stat(dbPath); err == nil {
		vendors, err := loadSQLite(dbPath)
		if err != nil {
			log.Printf("Warning: failed to load %s: %v", dbPath, err)
		} else {
			c := New(vendors)
			c.source = dbPath
			log.Printf("Loaded vendor catalog: %s (%d vendors)", dbPath, len(vendors))
			return c
		}
	}

	jsonPath := filepath.Join(dataDir, "vendors.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		vendors, err := parseVendors(data)
		if err != nil {
			log.Printf("Warning: failed to parse %s: %v", jsonPath, err)
		} else {
			c := New(vendors)
			c.source = jsonPath
			log.Printf("Loaded vendor catalog: %s (%d vendors)", jsonPath, len(vendors))
			return c
		}
	}

	return Default()
}

func parseVendors(data []byte) ([]Vendor, error) {
	var vendors []Vendor
	if err := json.Unmarshal(data, &vendors); err != nil {
		return nil, fmt.Errorf("failed to parse vendor list: %w", err)
	}
	return vendors, nil
}

// loadSQLite reads vendor records from a read-only sqlite database.
// Set-valued columns (industries, certifications) are stored as JSON
// text. Rows that fail to decode are skipped with a warning.
func loadSQLite(path string) ([]Vendor, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open vendor database: %w", err)
	}
	defer db.Close()

	// Verify it's a vendor database before scanning
	var count int
	err = db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type IN ('table','view') AND name='vendors'").Scan(&count)
	if err != nil || count == 0 {
		return nil, fmt.Errorf("%s has no vendors table", path)
	}

	rows, err := db.Query(`SELECT id, name, rating, review_count, location, founded_year,
		employee_count, description, industries, llm, image_recognition, time_series,
		optimization, price_min, price_max, on_time_delivery_rate, quality_score,
		repeat_rate, avg_response_time, available_from, monthly_capacity,
		certifications, featured FROM vendors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []Vendor
	for rows.Next() {
		var v Vendor
		var industries, certifications, availableFrom string
		if err := rows.Scan(&v.ID, &v.Name, &v.Rating, &v.ReviewCount, &v.Location,
			&v.FoundedYear, &v.EmployeeCount, &v.Description, &industries,
			&v.TechStack.LLM, &v.TechStack.ImageRecognition, &v.TechStack.TimeSeries,
			&v.TechStack.Optimization, &v.PriceRange.Min, &v.PriceRange.Max,
			&v.Metrics.OnTimeDeliveryRate, &v.Metrics.QualityScore, &v.Metrics.RepeatRate,
			&v.Metrics.AvgResponseTime, &availableFrom, &v.MonthlyCapacity,
			&certifications, &v.Featured); err != nil {
			log.Printf("Warning: skipping unreadable vendor row: %v", err)
			continue
		}
		if err := json.Unmarshal([]byte(industries), &v.Industries); err != nil {
			log.Printf("Warning: skipping vendor %s: bad industries column: %v", v.ID, err)
			continue
		}
		if certifications != "" {
			if err := json.Unmarshal([]byte(certifications), &v.Certifications); err != nil {
				log.Printf("Warning: skipping vendor %s: bad certifications column: %v", v.ID, err)
				continue
			}
		}
		date, err := ParseDate(availableFrom)
		if err != nil {
			log.Printf("Warning: skipping vendor %s: bad available_from column: %v", v.ID, err)
			continue
		}
		v.AvailableFrom = date
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vendors: %w", err)
	}
	return vendors, nil
}
