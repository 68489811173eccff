package cli

import (
	"fmt"
	"strconv"
	"strings"
)

type invalidIDError struct {
	raw string
}

func (e invalidIDError) Error() string {
	return fmt.Sprintf("invalid account id: %q (want a positive integer)", e.raw)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidIDError{raw: raw}
	}
	return id, nil
}
