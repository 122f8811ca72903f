package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare returns -1 when a is older than b, 0 when equal and 1 when newer.
// Both arguments must be dotted semantic versions without a leading v.
func Compare(a, b string) (int, error) {
	partsA := strings.SplitN(a, ".", 3)
	partsB := strings.SplitN(b, ".", 3)

	if len(partsA) != 3 || len(partsB) != 3 {
		return 0, fmt.Errorf("malformed version pair %q, %q", a, b)
	}

	for i := 0; i < 3; i++ {
		numA, err := strconv.Atoi(partsA[i])
		if err != nil {
			return 0, fmt.Errorf("malformed version %q: %w", a, err)
		}

		numB, err := strconv.Atoi(partsB[i])
		if err != nil {
			return 0, fmt.Errorf("malformed version %q: %w", b, err)
		}

		switch {
		case numA < numB:
			return -1, nil
		case numA > numB:
			return 1, nil
		}
	}

	return 0, nil
}
