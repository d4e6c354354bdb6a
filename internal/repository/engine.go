package repository

import "context"

// Collection names. Each collection is one document in the backing engine;
// with the file engine the name is literally the file name under DATA_DIR.
// Backup envelopes are keyed by these names.
const (
	ColServices       = "services.json"
	ColTestimonials   = "testimonials.json"
	ColHeroImages     = "hero-images.json"
	ColAboutContent   = "about-content.json"
	ColClients        = "clients.json"
	ColManifest       = "manifest.json"
	ColClientBalances = "client-balances.json"
	ColEmails         = "emails.json"
	ColSiteSettings   = "site-settings.json"
	ColLogs           = "logs.json"
)

// CollectionNames returns every known collection name in a stable order.
func CollectionNames() []string {
	return []string{
		ColServices,
		ColTestimonials,
		ColHeroImages,
		ColAboutContent,
		ColClients,
		ColManifest,
		ColClientBalances,
		ColEmails,
		ColSiteSettings,
		ColLogs,
	}
}

// singletonCollections holds the collections whose document is a single
// JSON object rather than an array.
var singletonCollections = map[string]bool{
	ColAboutContent: true,
	ColSiteSettings: true,
}

// IsSingleton reports whether the named collection stores one object
// instead of an array of records.
func IsSingleton(name string) bool { return singletonCollections[name] }

// Engine persists raw collection documents keyed by collection name.
// Implementations must be safe for concurrent use; the repositories layer
// serializes read-modify-write cycles per collection on top of this.
type Engine interface {
	// Load returns the stored document for name, or ErrNotFound if the
	// collection has never been written.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save overwrites the stored document for name.
	Save(ctx context.Context, name string, data []byte) error
}

func knownCollection(name string) bool {
	for _, n := range CollectionNames() {
		if n == name {
			return true
		}
	}
	return false
}
