package model

import internalmodel "github.com/goliatone/go-settingstab/internal/model"

// Type re-exports the internal field type enumeration.
type Type = internalmodel.Type

const (
	TypeTitle       = internalmodel.TypeTitle
	TypeSectionEnd  = internalmodel.TypeSectionEnd
	TypeText        = internalmodel.TypeText
	TypeTextarea    = internalmodel.TypeTextarea
	TypeNumber      = internalmodel.TypeNumber
	TypePassword    = internalmodel.TypePassword
	TypeDate        = internalmodel.TypeDate
	TypeColor       = internalmodel.TypeColor
	TypeSelect      = internalmodel.TypeSelect
	TypeMultiSelect = internalmodel.TypeMultiSelect
	TypeRadio       = internalmodel.TypeRadio
	TypeCheckbox    = internalmodel.TypeCheckbox
	TypeHidden      = internalmodel.TypeHidden
)

// PickerClass is the marker class added to enhanced picker fields.
const PickerClass = internalmodel.PickerClass

type (
	Descriptor  = internalmodel.Descriptor
	Field       = internalmodel.Field
	ValueField  = internalmodel.ValueField
	Common      = internalmodel.Common
	Title       = internalmodel.Title
	SectionEnd  = internalmodel.SectionEnd
	Input       = internalmodel.Input
	Select      = internalmodel.Select
	MultiSelect = internalmodel.MultiSelect
	Radio       = internalmodel.Radio
	Checkbox    = internalmodel.Checkbox
	Option      = internalmodel.Option
	Options     = internalmodel.Options
	Result      = internalmodel.Result

	ValidationError = internalmodel.ValidationError

	Event      = internalmodel.Event
	Logger     = internalmodel.Logger
	LoggerFunc = internalmodel.LoggerFunc
	Sanitizer  = internalmodel.Sanitizer
	Labeler    = internalmodel.Labeler
)

var (
	ErrInvalidSlug   = internalmodel.ErrInvalidSlug
	ErrMissingID     = internalmodel.ErrMissingID
	ErrDuplicateID   = internalmodel.ErrDuplicateID
	ErrFieldNotFound = internalmodel.ErrFieldNotFound
)

const (
	EventNormalized       = internalmodel.EventNormalized
	EventAutoTitle        = internalmodel.EventAutoTitle
	EventAutoSectionEnd   = internalmodel.EventAutoSectionEnd
	EventDefaultCorrected = internalmodel.EventDefaultCorrected
	EventAssetsEnqueued   = internalmodel.EventAssetsEnqueued
	EventAssetsSkipped    = internalmodel.EventAssetsSkipped
)

// NewOptions builds ordered options from value/label pairs.
func NewOptions(pairs ...string) Options {
	return internalmodel.NewOptions(pairs...)
}

// Prefix returns the id prefix of a tab.
func Prefix(slug string) string {
	return internalmodel.Prefix(slug)
}

// Unprefix strips the tab prefix from a prepared id.
func Unprefix(slug, id string) string {
	return internalmodel.Unprefix(slug, id)
}

// ValidateSlug checks the slug format.
func ValidateSlug(slug string) error {
	return internalmodel.ValidateSlug(slug)
}

// StringValue converts a stored value for single-value fields.
func StringValue(value any) string {
	return internalmodel.StringValue(value)
}

// StringSlice converts a stored value for multiselect fields.
func StringSlice(value any) []string {
	return internalmodel.StringSlice(value)
}

// NopLogger discards events.
func NopLogger() Logger {
	return internalmodel.NopLogger()
}
