package domain

import "github.com/goccy/go-json"

// ChicagoData carries the unprocessed upstream arrays.
type ChicagoData struct {
	ShotSpotterData json.RawMessage `json:"shotspotter_data"`
	ViolenceData    json.RawMessage `json:"violence_data"`
}
