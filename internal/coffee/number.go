package coffee

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Number is a numeric coffee attribute. It is always written as a double, but
// documents created by older clients may hold it as an integer, a decimal or
// a numeric string, and all of those decode.
type Number float64

// NumberFrom converts an optional request value.
func NumberFrom(f *float64) *Number {
	if f == nil {
		return nil
	}
	n := Number(*f)
	return &n
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. Null never reaches it:
// pointer fields decode null as nil.
func (n *Number) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	var f float64
	switch t {
	case bsontype.Double:
		f = rv.Double()
	case bsontype.Int32:
		f = float64(rv.Int32())
	case bsontype.Int64:
		f = float64(rv.Int64())
	case bsontype.Decimal128:
		parsed, err := strconv.ParseFloat(rv.Decimal128().String(), 64)
		if err != nil {
			return fmt.Errorf("decimal %s is not a number: %w", rv.Decimal128(), err)
		}
		f = parsed
	case bsontype.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(rv.StringValue()), 64)
		if err != nil {
			return fmt.Errorf("string %q is not a number", rv.StringValue())
		}
		f = parsed
	default:
		return fmt.Errorf("cannot decode %s into a number", t)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%v is not a finite number", f)
	}
	*n = Number(f)
	return nil
}
