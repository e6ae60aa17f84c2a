package incidents

// Report pairs the summaries of both datasets.
type Report struct {
	ShotSpotter *Summary `json:"shotspotter"`
	Violence    *Summary `json:"violence"`
}
