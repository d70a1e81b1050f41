package entity

// DispatchFailure describes one per-destination delivery failure. Entries are
// ordered by chunk, then by intra-chunk response order.
type DispatchFailure struct {
	DestinationPreview string `json:"destinationPreview"`
	ErrorCode          string `json:"errorCode"`
	ErrorMessage       string `json:"errorMessage"`
}

// DispatchResult aggregates the outcome of one broadcast dispatch across all
// chunks. Produced once per dispatch call and never mutated after return.
type DispatchResult struct {
	Attempted int               `json:"attempted"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Failures  []DispatchFailure `json:"failures,omitempty"`
}
