package httpclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// EncodeQuery form-encodes params with keys in sorted order. Spaces become '+'
// and ':' stays literal so timestamps remain readable; every other reserved byte
// is percent-escaped. Entries whose value is nil are left out entirely.
func EncodeQuery(params Params) string {
	if len(params) == 0 {
		return ""
	}
	values := make(url.Values, len(params))
	for k, v := range params {
		s, ok := queryValue(v)
		if !ok {
			continue
		}
		values.Set(k, s)
	}
	return strings.ReplaceAll(values.Encode(), "%3A", ":")
}

func queryValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return queryValue(rv.Elem().Interface())
	}

	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case fmt.Stringer:
		return val.String(), true
	}

	// Named string and bool types fall back to their underlying kind.
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return fmt.Sprint(v), true
}
