package display

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		count int
		want  Grid
	}{
		{1, Grid{Rows: 1, Cols: 1}},
		{2, Grid{Rows: 1, Cols: 2}},
		{3, Grid{Rows: 1, Cols: 3}},
		{4, Grid{Rows: 1, Cols: 4}},
		{5, Grid{Rows: 1, Cols: 5}},
		{6, Grid{Rows: 2, Cols: 5}},
		{7, Grid{Rows: 2, Cols: 5}},
		{10, Grid{Rows: 2, Cols: 5}},
		{11, Grid{Rows: 3, Cols: 5}},
	}
	for _, tc := range cases {
		got, err := LayoutFor(tc.count)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("LayoutFor(%d) mismatch (-want +got):\n%s", tc.count, diff)
		}
		assert.GreaterOrEqual(t, got.Cells(), tc.count)
		assert.Less(t, got.Cells()-tc.count, got.Cols, "at most one partial row")
	}
}

func TestLayoutFor_Empty(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		_, err := LayoutFor(n)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	}
}

func TestGridCell_RowMajor(t *testing.T) {
	t.Parallel()

	g, err := LayoutFor(7)
	require.NoError(t, err)

	type pos struct{ Row, Col int }
	var got []pos
	for i := 0; i < 7; i++ {
		r, c := g.Cell(i)
		got = append(got, pos{r, c})
	}
	want := []pos{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}
