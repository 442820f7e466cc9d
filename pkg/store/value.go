package store

import (
	"fmt"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// Normalize converts value to the string or []string form kept by every
// store. Slices of any are converted element-wise.
func Normalize(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []string:
		return append([]string{}, v...), nil
	case []any:
		return model.StringSlice(v), nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return model.StringValue(v), nil
	default:
		return nil, fmt.Errorf("store: unsupported value type %T", value)
	}
}

func clone(value any) any {
	if list, ok := value.([]string); ok {
		return append([]string{}, list...)
	}
	return value
}
