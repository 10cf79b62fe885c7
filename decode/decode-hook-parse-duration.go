package decode

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

func DecodeHookParseDuration() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(time.Duration(5)) {
			return data, nil
		}
		if f.Kind() != reflect.String {
			return data, nil
		}
		return Duration(data)
	}
}
