package models

// Testimonial is the draft record the widget collects and, once validated,
// forwards to the remote collection endpoint. The JSON field names are the
// wire contract of that endpoint and must not change.
type Testimonial struct {
	Name    string `json:"nombre"`
	Opinion string `json:"opinion"`
	Rating  int    `json:"calificacion"`
}

// Empty reports whether no field of the draft has been filled in yet.
func (t Testimonial) Empty() bool {
	return t.Name == "" && t.Opinion == "" && t.Rating == 0
}
