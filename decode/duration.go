package decode

import (
	"fmt"
	"strconv"
	"time"
)

// Duration accepts numbers of seconds or time.ParseDuration strings.
func Duration(durationInterface interface{}) (time.Duration, error) {
	var durationString string
	switch v := durationInterface.(type) {
	case float64:
		durationString = fmt.Sprintf("%f", v) + "s"
	case int:
		durationString = strconv.Itoa(v) + "s"
	case string:
		durationString = v
		if _, err := strconv.Atoi(durationString); err == nil {
			durationString = durationString + "s"
		}
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf(`invalid duration type:"%T", value:"%v"`, durationInterface, durationInterface)
	}
	return time.ParseDuration(durationString)
}
