// Package directory holds the static lookup tables consumed by the
// acquisition pipeline: rental company websites and the city/state
// catalogue offered to callers.
package directory

import (
	_ "embed"
	"strings"

	"github.com/cockroachdb/errors"

	"car-rentals-api/internal/csvutil"
)

//go:embed companies.csv
var companiesCSV string

// DefaultWebsite is the placeholder link assigned to any company the
// directory does not know.
const DefaultWebsite = "#"

type Company struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

func companyFromCSV(record, headers []string) (*Company, error) {
	if len(record) != 2 {
		return nil, errors.Newf("expected 2 fields, got %d", len(record))
	}
	return &Company{Name: record[0], Website: record[1]}, nil
}

func GetCompaniesList() ([]*Company, error) {
	arr := make([]*Company, 0, 16)
	reader := strings.NewReader(companiesCSV)

	for record := range csvutil.ParseCSV(reader, false, companyFromCSV) {
		if record.Error != nil {
			return nil, errors.Wrap(record.Error, "failed to load company directory")
		}
		arr = append(arr, record.Value)
	}

	return arr, nil
}

func GetCompaniesMap() (Companies, error) {
	companies, err := GetCompaniesList()
	if err != nil {
		return nil, err
	}

	m := make(map[string]*Company, len(companies))
	for _, record := range companies {
		if _, ok := m[record.Name]; ok {
			return nil, errors.Newf("duplicate key detected: %s", record.Name)
		}
		m[record.Name] = record
	}

	return m, nil
}

type Companies map[string]*Company

// WebsiteFor maps a company name to its site, or the placeholder when the
// company is unknown (extracted names from live markup often are).
func (c Companies) WebsiteFor(name string) string {
	if company, ok := c[name]; ok {
		return company.Website
	}
	return DefaultWebsite
}
