package model

type CountriesResponse struct {
	Options []CountryOption `json:"options"`
	Rows    []TableRow      `json:"rows"`
}

type SummaryResponse struct {
	Summary   Summary    `json:"summary"`
	InfoCards []InfoCard `json:"infoCards"`
}

// DashboardResponse is what a rendering client polls for: the raw view
// state plus everything derived from it.
type DashboardResponse struct {
	ID         string      `json:"id"`
	State      ViewState   `json:"state"`
	InfoCards  []InfoCard  `json:"infoCards"`
	MapCircles []MapCircle `json:"mapCircles"`
	Error      string      `json:"error,omitempty"`
}
