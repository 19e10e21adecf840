package catalog

import (
	"encoding/json"
	"fmt"
	"time"
)

// TechStack rates a vendor's depth in each technology area on a 1-5 scale
type TechStack struct {
	LLM              int `json:"llm"`
	ImageRecognition int `json:"imageRecognition"`
	TimeSeries       int `json:"timeSeries"`
	Optimization     int `json:"optimization"`
}

// PriceRange is a vendor's typical project price band in yen
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Metrics holds a vendor's delivery track record
type Metrics struct {
	OnTimeDeliveryRate float64 `json:"onTimeDeliveryRate"` // [0,1]
	QualityScore       float64 `json:"qualityScore"`       // [1,5]
	RepeatRate         float64 `json:"repeatRate"`         // [0,1]
	AvgResponseTime    float64 `json:"avgResponseTime"`    // hours
}

// Date is a day-granularity timestamp serialized as YYYY-MM-DD
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses a YYYY-MM-DD string; "" yields the zero Date
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// Vendor is one development-partner record. Vendors are reference
// data: loaded once, never mutated by the engine.
type Vendor struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Rating          float64    `json:"rating"`
	ReviewCount     int        `json:"reviewCount"`
	Location        string     `json:"location"`
	FoundedYear     int        `json:"foundedYear"`
	EmployeeCount   int        `json:"employeeCount"`
	Description     string     `json:"description"`
	Industries      []string   `json:"industries"`
	TechStack       TechStack  `json:"techStack"`
	PriceRange      PriceRange `json:"priceRange"`
	Metrics         Metrics    `json:"metrics"`
	AvailableFrom   Date       `json:"availableFrom"`
	MonthlyCapacity int        `json:"monthlyCapacity"`
	Certifications  []string   `json:"certifications"`
	Featured        bool       `json:"featured"`
}

// ServesIndustry reports whether the vendor lists the given industry
func (v Vendor) ServesIndustry(industry string) bool {
	for _, i := range v.Industries {
		if i == industry {
			return true
		}
	}
	return false
}
