package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dtroode/userdir/internal/model"
)

const (
	ageParam    = "age"
	activeParam = "active"
)

// ExtractFilter reads the optional age and active parameters.
// It returns nil when neither is supplied. Supplying only one of them is rejected.
func ExtractFilter(values url.Values) (*model.Filter, error) {
	rawAge, hasAge := lookup(values, ageParam)
	rawActive, hasActive := lookup(values, activeParam)

	if !hasAge && !hasActive {
		return nil, nil
	}
	if hasAge != hasActive {
		return nil, fmt.Errorf("%w: %s and %s must be supplied together", model.ErrMalformedFilter, ageParam, activeParam)
	}

	age, err := strconv.ParseUint(rawAge, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not in 0-255", model.ErrMalformedFilter, ageParam, rawAge)
	}

	active, err := parseBool(rawActive)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a boolean", model.ErrMalformedFilter, activeParam, rawActive)
	}

	return &model.Filter{Age: uint8(age), Active: active}, nil
}

func lookup(values url.Values, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.ToLower(s))
}
