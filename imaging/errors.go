package imaging

import "errors"

var (
	// ErrNotSVG is returned for files without the .svg extension or
	// documents whose root element is not <svg>.
	ErrNotSVG = errors.New("imaging: not an svg")

	// ErrInvalidViewBox is returned when a viewBox is not four numbers
	// with a positive width and height.
	ErrInvalidViewBox = errors.New("imaging: invalid viewBox")

	// ErrNoImages is returned by Combine without input.
	ErrNoImages = errors.New("imaging: no images")
)
