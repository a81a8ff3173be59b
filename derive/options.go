// SPDX-License-Identifier: MIT

package derive

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/jigsaw/music"
)

// Option configures FromSpec.
type Option func(*Options)

// Options holds derivation settings.
type Options struct {
	// Logger receives one debug entry per derivation. Never nil after DefaultOptions.
	Logger *zap.Logger

	// Music configures run scoring.
	Music []music.Option
}

// DefaultOptions returns a no-op logger and default music scoring.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes derivation logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMusic appends music scoring options.
func WithMusic(opts ...music.Option) Option {
	return func(o *Options) { o.Music = append(o.Music, opts...) }
}
