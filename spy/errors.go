// SPDX-License-Identifier: MIT

package spy

import "errors"

var (
	// ErrBadSize is returned by Save for non-positive image dimensions.
	ErrBadSize = errors.New("spy: image size must be positive")

	// ErrUnsupportedFormat is returned by Save for file extensions gonum/plot cannot encode.
	ErrUnsupportedFormat = errors.New("spy: unsupported image format")
)
