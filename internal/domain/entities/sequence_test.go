//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

func TestEqualSlices(t *testing.T) {
	t.Parallel()

	type item struct{ name string }
	a, b, c := &item{"a"}, &item{"b"}, &item{"c"}

	tests := []struct {
		name     string
		one      []*item
		other    []*item
		expected bool
	}{
		{name: "both nil", one: nil, other: nil, expected: true},
		{name: "nil and empty", one: nil, other: []*item{}, expected: true},
		{name: "different lengths", one: []*item{a}, other: []*item{a, b}, expected: false},
		{name: "same elements in order", one: []*item{a, b}, other: []*item{a, b}, expected: true},
		{name: "same elements reordered", one: []*item{a, b}, other: []*item{b, a}, expected: false},
		{name: "different element", one: []*item{a, c}, other: []*item{a, b}, expected: false},
		{name: "equal values with different identity", one: []*item{{"a"}}, other: []*item{{"a"}}, expected: false},
	}

	for _, tt := range tests {
		t.Run("should report "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.EqualSlices(tt.one, tt.other, nil)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("should short-circuit on the same backing array", func(t *testing.T) {
		t.Parallel()

		// given
		values := []string{"x", "y"}
		calls := 0

		// when
		result := entities.EqualSlices(values, values, func(a, b string) bool {
			calls++
			return a == b
		})

		// then
		assert.True(t, result)
		assert.Zero(t, calls)
	})

	t.Run("should use the element predicate when given", func(t *testing.T) {
		t.Parallel()

		// given
		one := []string{"Git", "HG"}
		other := []string{"git", "hg"}

		// when
		result := entities.EqualSlices(one, other, strings.EqualFold)

		// then
		assert.True(t, result)
	})
}
