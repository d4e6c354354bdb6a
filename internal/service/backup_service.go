package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luuvisa/backend/internal/repository"
)

// Envelope is the backup format: one JSON object keyed by collection name,
// each value holding that collection's document verbatim.
type Envelope map[string]json.RawMessage

// BackupService snapshots and restores every collection as one envelope.
type BackupService interface {
	// Export packs the current content of every known collection.
	// Unreadable collections are exported as empty documents.
	Export(ctx context.Context) ([]byte, error)

	// Import overwrites collections from an envelope. The envelope must
	// parse (ErrInvalidFormat) and contain the site-settings collection
	// (ErrMissingRequiredData) or nothing is written. Collections absent
	// from the envelope are left untouched. A write failure aborts the
	// restore with a PartialRestoreError; earlier writes stand.
	Import(ctx context.Context, data []byte) error
}

type backupService struct {
	eng   repository.Engine
	audit Recorder
}

// NewBackupService creates a BackupService over the raw engine. Working on
// engine bytes keeps export/import byte-for-byte faithful regardless of the
// backing driver.
func NewBackupService(eng repository.Engine, audit Recorder) BackupService {
	return &backupService{eng: eng, audit: audit}
}

// emptyDoc is the export placeholder for a collection that has never been
// written or cannot be read.
func emptyDoc(name string) json.RawMessage {
	if repository.IsSingleton(name) {
		return json.RawMessage("{}")
	}
	return json.RawMessage("[]")
}

func (s *backupService) Export(ctx context.Context) ([]byte, error) {
	env := make(Envelope, len(repository.CollectionNames()))
	for _, name := range repository.CollectionNames() {
		data, err := s.eng.Load(ctx, name)
		if err != nil || !json.Valid(data) {
			env[name] = emptyDoc(name)
			continue
		}
		env[name] = json.RawMessage(data)
	}
	out, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("backup: encode: %w", err)
	}
	s.audit.Record(ctx, "backup.export", "")
	return out, nil
}

func (s *backupService) Import(ctx context.Context, data []byte) error {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ErrInvalidFormat
	}
	if _, ok := env[repository.ColSiteSettings]; !ok {
		return ErrMissingRequiredData
	}

	var written []string
	for _, name := range repository.CollectionNames() {
		doc, ok := env[name]
		if !ok {
			continue
		}
		if err := s.eng.Save(ctx, name, doc); err != nil {
			return &PartialRestoreError{Collection: name, Written: written, Err: err}
		}
		written = append(written, name)
	}
	s.audit.Record(ctx, "backup.import", fmt.Sprintf("%d collections", len(written)))
	return nil
}
