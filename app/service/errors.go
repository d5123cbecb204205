package service

import "errors"

// UnavailableMessage is returned to clients while the catalog is not loaded.
const UnavailableMessage = "Cloud plans are not configured. Please publish the configuration file."

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
