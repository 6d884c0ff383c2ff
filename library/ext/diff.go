package ext

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/r3labs/diff/v3"
)

// DiffLog compares two values of the same type and renders one line per
// changed field.
func DiffLog(from, to any) (diff.Changelog, string, error) {
	changes, err := diff.Diff(from, to)
	if err != nil {
		return nil, "", err
	}
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, fmt.Sprintf("  %s %s: %v -> %v", c.Type, strings.Join(c.Path, "."), c.From, c.To))
	}
	return changes, strings.Join(lines, "\n"), nil
}

// DeepCopy copies src into dst without sharing slices, maps or pointers.
func DeepCopy(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true})
}
