package container_test

import (
	"testing"

	"github.com/damonallison/swift-fundamentals-sub000/container"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	require.Equal(t, 6, container.Total(container.NewStack(1, 2, 3)))
	require.Equal(t, 0, container.Total(container.NewStack[int]()))
	require.Equal(t, int8(-3), container.Total(container.NewStack[int8](-1, -2)))
	require.Equal(t, uint(10), container.Total(container.NewStack[uint](1, 2, 3, 4)))
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want float64
	}{
		{
			name: "whole",
			vals: []int{1, 2, 3},
			want: 2.0,
		},
		{
			name: "fraction",
			vals: []int{1, 2},
			want: 1.5,
		},
		{
			name: "single",
			vals: []int{-4},
			want: -4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, container.Average(container.NewStack(tt.vals...)), 1e-9)
		})
	}

	require.Panics(t, func() { container.Average(container.NewStack[int]()) })

	t.Run("narrow type", func(t *testing.T) {
		s := container.NewStack[int8](100, 100)

		require.Equal(t, int8(-56), container.Total(s))
		require.InDelta(t, 100.0, container.Average(s), 1e-9)
	})
}
