package service

import (
	"sort"

	"covid19-tracker-service/internal/model"
)

// Normalize derives the selector options and the cases table from a raw
// country list. Options keep the upstream order; rows are sorted by total
// cases, largest first, with ties left in upstream order. The input is not
// modified.
//
// A country reported without a cases figure decodes to zero and sorts as such.
func Normalize(countries []model.CountrySummary) ([]model.CountryOption, []model.TableRow) {
	options := make([]model.CountryOption, 0, len(countries))
	rows := make([]model.TableRow, 0, len(countries))

	for _, c := range countries {
		options = append(options, model.CountryOption{
			Name:  c.Country,
			Value: c.CountryInfo.Iso2,
		})
		rows = append(rows, model.TableRow{
			Country:      c.Country,
			Iso2:         c.CountryInfo.Iso2,
			Flag:         c.CountryInfo.Flag,
			Cases:        c.Cases,
			Deaths:       c.Deaths,
			Recovered:    c.Recovered,
			CasesDisplay: FormatCount(c.Cases),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Cases > rows[j].Cases
	})

	return options, rows
}
