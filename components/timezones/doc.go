// Package timezones provides a timezone picker for settings tabs: an embedded
// list of IANA zone names, a descriptor builder for an enhanced picker select,
// and a small net/http handler that searches zones and returns JSON options.
package timezones
