package dto

// WeightSetRequest sets the weight for one class/category pair. A weight
// of zero removes the category from weighted-mode consideration.
type WeightSetRequest struct {
	ClassID  uint    `json:"class_id" validate:"required"`
	Category string  `json:"category" validate:"required,min=1,max=64"`
	Weight   float64 `json:"weight" validate:"gte=0,lte=100"`
}

// WeightsResponse is the caller's full weight map, keyed by
// "<classID>_<category>".
type WeightsResponse struct {
	Weights map[string]float64 `json:"weights"`
}
