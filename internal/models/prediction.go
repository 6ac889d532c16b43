package models

// LabelPrediction is one label/confidence pair from the image
// classifier, confidence in [0,1]. Predictions are ordered by
// descending confidence; the bridge retriever consumes the top one.
type LabelPrediction struct {
	Label      string  `json:"label"`
	Confidence float32 `json:"confidence"`
}
