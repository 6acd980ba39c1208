package common

import "strconv"

// ParseID parses a decimal path or payload segment into a positive record ID.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, NewError(CodeValidation, "invalid id", err)
	}
	if id <= 0 {
		return 0, NewError(CodeValidation, "invalid id", nil)
	}
	return id, nil
}
