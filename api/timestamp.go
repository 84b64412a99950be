package api

import "github.com/discostamp/discostamp/timestamp"

type PreviewsResponse struct {
	EpochSeconds int64               `json:"epochSeconds"`
	Previews     []timestamp.Preview `json:"previews"`
}

type TimezonesResponse struct {
	Timezones []string `json:"timezones"`
}
