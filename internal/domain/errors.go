package domain

import "errors"

// Domain errors.
var (
	ErrMissingSegmentFile   = errors.New("segment descriptor has no file")
	ErrInvalidScope         = errors.New("invalid scope")
	ErrMissingInterpolation = errors.New("missing interpolation argument")
	ErrInvalidInterpolation = errors.New("invalid interpolation format")
	ErrUnsupportedConfig    = errors.New("unsupported configuration format")
)

var codes = map[error]string{
	ErrMissingSegmentFile:   "missing_segment_file",
	ErrInvalidScope:         "invalid_scope",
	ErrMissingInterpolation: "missing_interpolation",
	ErrInvalidInterpolation: "invalid_interpolation",
	ErrUnsupportedConfig:    "unsupported_config",
}

// Code returns the stable code of the domain error wrapped by err, or ""
// when err is not a domain error.
func Code(err error) string {
	for target, code := range codes {
		if errors.Is(err, target) {
			return code
		}
	}
	return ""
}
