package validator

import (
	"strconv"

	"github.com/dmitrymomot/safeinput"
)

// Number parses a base-10 signed 32-bit integer.
type Number struct{}

func (Number) TargetType() string { return "i32" }

func (v Number) Validate(input string) (int32, error) {
	n, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		return 0, safeinput.InvalidFormat(v.TargetType())
	}
	return int32(n), nil
}
