// SPDX-License-Identifier: MIT

package spy

import "gonum.org/v1/plot/vg"

const (
	// DefaultMarkerRadius is the marker radius in points.
	DefaultMarkerRadius = 1.0

	// DefaultSize is the default edge of the saved image in inches.
	DefaultSize = 6.0
)

const (
	panicRadiusInvalid = "spy: WithMarkerRadius: radius must be positive"
)

// Option mutates plot options.
type Option func(*Options)

// Options stores the effective plot configuration.
type Options struct {
	title  string
	radius vg.Length
}

// WithTitle sets the plot title. An empty title keeps the default "R×C, nnz=N" caption.
func WithTitle(s string) Option {
	return func(o *Options) { o.title = s }
}

// WithMarkerRadius sets the marker radius in points. Panics when r <= 0.
func WithMarkerRadius(r float64) Option {
	if r <= 0 {
		panic(panicRadiusInvalid)
	}

	return func(o *Options) { o.radius = vg.Points(r) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{radius: vg.Points(DefaultMarkerRadius)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
