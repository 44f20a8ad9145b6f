package api

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a numeric identifier that tolerates both JSON number and string
// encodings. The backend is not consistent about which of the two it emits
// for owner and user ids, so every comparison must go through the numeric
// value, never the raw representation.
type ID int64

// Int64 returns the numeric value of the identifier.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UnmarshalJSON accepts `42`, `"42"` and `null`.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}
	*id = ID(n)
	return nil
}

// MarshalJSON always emits the numeric form.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}
