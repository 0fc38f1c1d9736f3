package geo

import "errors"

var (
	// ErrNotFeatureCollection is returned when the input is not a GeoJSON
	// FeatureCollection.
	ErrNotFeatureCollection = errors.New("geo: not a feature collection")

	// ErrMissingProperty is returned by AssignIDs for features without
	// the id property.
	ErrMissingProperty = errors.New("geo: missing property")

	// ErrUnknownProjection is returned for unsupported projection names.
	ErrUnknownProjection = errors.New("geo: unknown projection")

	// ErrEmptyBounds is returned when there is nothing to frame.
	ErrEmptyBounds = errors.New("geo: empty bounds")
)
