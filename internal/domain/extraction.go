package domain

// TemplateMatch identifies the template a transcript was classified against.
type TemplateMatch struct {
	TemplateID   string `json:"template_id"`
	TemplateName string `json:"template_name"`
}

// ExtractionResult is the output of the transcription-to-template engine.
//
// Invariants: Confidence > 0 exactly when TemplateMatch is non-nil, and
// ExtractedData is empty exactly when TemplateMatch is nil. ExtractedData is
// always non-nil so an unmatched transcript serializes as {}.
type ExtractionResult struct {
	TemplateMatch *TemplateMatch    `json:"template_match"`
	ExtractedData map[string]string `json:"extracted_data"`
	Confidence    float64           `json:"confidence"`
}

// Matched reports whether the transcript was classified against a template.
func (r *ExtractionResult) Matched() bool {
	return r.TemplateMatch != nil
}
