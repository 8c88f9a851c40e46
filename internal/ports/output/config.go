package output

import "i18njs/internal/domain/entities"

// ConfigLoader loads the export configuration. It returns (nil, nil) when
// no configuration exists.
type ConfigLoader interface {
	Load() (*entities.ExportConfig, error)
}
