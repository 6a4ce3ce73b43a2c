package directory

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"car-rentals-api/internal/csvutil"
)

//go:embed cities.csv
var citiesCSV string

type cityRow struct {
	State string
	City  string
}

func cityFromCSV(record, headers []string) (cityRow, error) {
	if len(record) != 2 {
		return cityRow{}, errors.Newf("expected 2 fields, got %d", len(record))
	}
	return cityRow{State: record[0], City: record[1]}, nil
}

// StateCities is one state's entry in the location catalogue.
type StateCities struct {
	State  string   `json:"state"`
	Cities []string `json:"cities"`
}

// GetStateCities returns the pickup/drop-off catalogue, states and cities
// each sorted alphabetically.
func GetStateCities() ([]StateCities, error) {
	byState := make(map[string][]string)
	reader := strings.NewReader(citiesCSV)

	for record := range csvutil.ParseCSV(reader, false, cityFromCSV) {
		if record.Error != nil {
			return nil, errors.Wrap(record.Error, "failed to load city catalogue")
		}
		byState[record.Value.State] = append(byState[record.Value.State], record.Value.City)
	}

	states := make([]string, 0, len(byState))
	for state := range byState {
		states = append(states, state)
	}
	sort.Strings(states)

	arr := make([]StateCities, 0, len(states))
	for _, state := range states {
		cities := byState[state]
		sort.Strings(cities)
		arr = append(arr, StateCities{State: state, Cities: cities})
	}

	return arr, nil
}
