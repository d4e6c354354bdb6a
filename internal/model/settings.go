package model

// SiteSettings is the singleton admin configuration record. The password is
// stored and compared as plain text; the deployment assumption is a single
// operator and a private data directory.
type SiteSettings struct {
	Logo     string `json:"logo,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
}
