package model

// AboutContent is the singleton "about us" section of the public site.
type AboutContent struct {
	Title      string `json:"title"`
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2,omitempty"`
	Image      string `json:"image,omitempty"`
}
