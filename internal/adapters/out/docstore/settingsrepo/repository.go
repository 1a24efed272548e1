package settingsrepo

import (
	"context"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/settings"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
	"restopos/internal/pkg/errs"
)

// Repository implements ports.SettingsRepository over the document store.
type Repository struct {
	store ports.DocumentStore
}

// New creates a settings repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// Get retrieves the settings document.
func (r *Repository) Get(ctx context.Context) (*settings.Settings, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionSettings, settings.DocumentKey)
	if err != nil {
		return nil, err
	}

	var dto settingsDTO
	if err := docjson.Decode(doc, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto), nil
}

// Save persists the settings document under its well-known key.
func (r *Repository) Save(ctx context.Context, s *settings.Settings) error {
	if s == nil {
		return errs.NewValueIsRequiredError("settings")
	}

	doc, err := docjson.Encode(fromDomain(s))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionSettings, doc)
	if err != nil {
		return err
	}

	s.Rev = res.Rev
	return nil
}

var _ ports.SettingsRepository = (*Repository)(nil)
