package model

import "github.com/goliatone/go-settingstab/internal/model"

// Normalizer converts descriptor lists into prepared field lists.
type Normalizer interface {
	Normalize(slug string, fields []Descriptor) (Result, error)
}

// NormalizerOption configures the normalizer.
type NormalizerOption func(*normalizerOptions)

type normalizerOptions struct {
	sanitizer Sanitizer
	labeler   Labeler
	logger    Logger
	keygen    func() string
}

// WithSanitizer overrides the title-to-id sanitizer.
func WithSanitizer(s Sanitizer) NormalizerOption {
	return func(opts *normalizerOptions) {
		opts.sanitizer = s
	}
}

// WithLabeler overrides how untitled fields get a title.
func WithLabeler(l Labeler) NormalizerOption {
	return func(opts *normalizerOptions) {
		opts.labeler = l
	}
}

// WithLogger receives normalization events.
func WithLogger(l Logger) NormalizerOption {
	return func(opts *normalizerOptions) {
		opts.logger = l
	}
}

// WithKeyGenerator replaces the random suffix used for generated keys.
func WithKeyGenerator(fn func() string) NormalizerOption {
	return func(opts *normalizerOptions) {
		opts.keygen = fn
	}
}

// NewNormalizer returns a Normalizer backed by the internal implementation.
func NewNormalizer(options ...NormalizerOption) Normalizer {
	cfg := normalizerOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return model.NewNormalizer(
		model.WithSanitizer(cfg.sanitizer),
		model.WithLabeler(cfg.labeler),
		model.WithLogger(cfg.logger),
		model.WithKeyGenerator(cfg.keygen),
	)
}

// DefaultSanitizer strips markup and accents and joins words with dashes.
func DefaultSanitizer() Sanitizer {
	return model.DefaultSanitizer()
}

// HumanizeLabel turns "shipping_zone" into "Shipping Zone".
func HumanizeLabel(id string) string {
	return model.HumanizeLabel(id)
}
