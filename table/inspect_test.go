package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	node := fruitTable(t).Inspect(80)

	assert.Equal(t, "Table", node.Type)
	assert.True(t, node.Visible)
	assert.Equal(t, 15, node.Bounds.Width)
	assert.Equal(t, 6, node.Bounds.Height)
	assert.Equal(t, 73, node.State["cell_budget"])
	assert.Equal(t, 7, node.State["non_column_width"])
	assert.Equal(t, "ascii", node.State["box"])
	require.NotNil(t, node.Styles)
	assert.True(t, node.Styles.Bold)
	assert.Equal(t, "ascii", node.Styles.Border)

	require.Len(t, node.Children, 2)
	name, qty := node.Children[0], node.Children[1]

	assert.Equal(t, "Name", name.Content)
	assert.Equal(t, 2, name.Bounds.X)
	assert.Equal(t, 5, name.Bounds.Width)
	assert.Equal(t, 4, name.State["min"])
	assert.Equal(t, 5, name.State["max"])
	assert.Equal(t, "auto", name.State["hint"])
	assert.Nil(t, name.Truncated)

	assert.Equal(t, "Qty", qty.Content)
	assert.Equal(t, 10, qty.Bounds.X)
	assert.Equal(t, 1, qty.State["min"])
	assert.Equal(t, 3, qty.State["width"])

	assert.Same(t, qty, node.Find("Column", "1"))
}

func TestInspectNarrow(t *testing.T) {
	node := fruitTable(t).Inspect(12)
	require.Len(t, node.Children, 2)

	name := node.Children[0]
	assert.Equal(t, 2, name.State["width"])
	require.NotNil(t, name.Truncated)
	assert.Equal(t, 5, name.Truncated.NaturalWidth)
	assert.Equal(t, 2, name.Truncated.DisplayWidth)
	assert.False(t, name.Truncated.Ellipsis, "wrapping columns are not cut")
	assert.Nil(t, node.Children[1].Truncated)
}

func TestInspectTooNarrow(t *testing.T) {
	node := fruitTable(t).Inspect(4)
	assert.False(t, node.Visible)
	assert.Equal(t, -3, node.State["cell_budget"])
	for _, c := range node.Children {
		assert.False(t, c.Visible)
		assert.Equal(t, 0, c.State["width"])
	}
}

func TestInspectWithoutBorder(t *testing.T) {
	node := fruitTable(t, WithoutBorder()).Inspect(80)
	assert.Empty(t, node.Styles.Border)
	assert.Equal(t, 1, node.Children[0].Bounds.X)
	assert.Equal(t, 8, node.Children[1].Bounds.X)
}

func TestWithCopiesTable(t *testing.T) {
	base := fruitTable(t)
	derived := base.With(WithoutBorder(), WithColumnPadding(0, 0), WithExpand(true))

	assert.True(t, base.ShowBorder())
	assert.False(t, derived.ShowBorder())
	assert.True(t, derived.Expand())
	assert.Equal(t, DefaultPadding, base.Columns()[0].Padding)
	assert.Equal(t, Padding{}, derived.Columns()[0].Padding)

	require.NoError(t, derived.AddTextRow("fig", "1"))
	assert.Len(t, base.Rows(), 2)
	assert.Len(t, derived.Rows(), 3)
}
