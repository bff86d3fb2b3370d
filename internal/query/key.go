package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtroode/userdir/internal/model"
)

// KeyDelimiter separates the name fragment from the grade in a composite key token.
const KeyDelimiter = "_"

// DecodeCompositeKey parses a "<name>_<grade>" path token.
func DecodeCompositeKey(token string) (model.CompositeKey, error) {
	parts := strings.Split(token, KeyDelimiter)
	if len(parts) != 2 {
		return model.CompositeKey{}, fmt.Errorf("%w: expected <name>%s<grade>, got %q", model.ErrMalformedKey, KeyDelimiter, token)
	}

	name, rawGrade := parts[0], parts[1]
	if name == "" || rawGrade == "" {
		return model.CompositeKey{}, fmt.Errorf("%w: empty part in %q", model.ErrMalformedKey, token)
	}

	grade, err := strconv.ParseUint(rawGrade, 10, 8)
	if err != nil {
		return model.CompositeKey{}, fmt.Errorf("%w: grade %q is not in 0-255", model.ErrMalformedKey, rawGrade)
	}

	return model.CompositeKey{NameFragment: name, Grade: uint8(grade)}, nil
}
