package trailhead

import (
	"net/url"
	"strings"
)

const LogMaskVal = "xxxxxx"

// maskedKeys are the parameter keys whose values never appear in logs.
var maskedKeys = []string{"password", "token", "secret"}

// Mask replaces every value set for key in vals with a single LogMaskVal.
// Mask does nothing if key is not set.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}

// IsMasked asserts whether values paired to key ought to be hidden from log messages.
// Matching ignores case and underscores, so "Password", "user_password" and "apiToken" are all masked.
func IsMasked(key string) bool {
	k := strings.ToLower(strings.ReplaceAll(key, "_", ""))
	for _, m := range maskedKeys {
		if strings.Contains(k, m) {
			return true
		}
	}

	return false
}
