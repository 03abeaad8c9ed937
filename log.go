package rango

import "net/url"

const LogMaskVal = "xxxxxx"

// Mask replaces every value stored under key in vals with LogMaskVal,
// squashing multiple values into one.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals.Set(key, LogMaskVal)
}
