package qr

import "errors"

// Error kinds returned by the package. Failures wrap one of these, so callers
// should branch with errors.Is rather than on message text.
var (
	ErrEmptyData       = errors.New("qr: data is empty")
	ErrEncoding        = errors.New("qr: encoding failed")
	ErrRender          = errors.New("qr: no module grid to render, add data first")
	ErrLogoNotFound    = errors.New("qr: logo not found")
	ErrImageGeneration = errors.New("qr: image generation failed")
)
