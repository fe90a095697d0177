package field

import (
	"fmt"
	"time"
)

// Validate checks that a visible, non-json field names its type.
func Validate(d Descriptor) error {
	if !d.IsVisible() || d.kind == KindJson {
		return nil
	}

	if d.typeName == "" {
		return fmt.Errorf("%w: property %q requires a type name", ErrConfiguration, d.propertyName)
	}

	return nil
}

// CoerceSpecValue applies the value transform of the descriptor's spec role.
// Only RoleUtcDate transforms; nil and other roles pass through.
func CoerceSpecValue(d Descriptor, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch d.specRole {
	case RoleUtcDate:
		return CoerceUtcDate(value)
	default:
		return value, nil
	}
}

// CoerceUtcDate converts value to local time and then drops the zone, keeping
// the local wall clock. The result is an unzoned timestamp, not a UTC instant.
func CoerceUtcDate(value any) (time.Time, error) {
	t, ok := value.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: a field with the %s qualifier must be a date/time, got %T",
			ErrTypeMismatch, RoleUtcDate, value)
	}

	return StripZone(t.Local()), nil
}

// StripZone re-expresses the wall clock of t without a zone. UTC is used as the
// zone-less carrier, so the clock fields are kept and the offset is lost.
func StripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
