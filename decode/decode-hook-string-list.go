package decode

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DecodeHookStringList decodes strings into []string targets, see ToStrings.
func DecodeHookStringList() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		return ToStrings(data)
	}
}
