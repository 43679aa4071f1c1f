package homology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallcrest/commtopo/homology"
)

func TestDisjointSet_Singletons(t *testing.T) {
	d := homology.NewDisjointSet(5)

	assert.Equal(t, 5, d.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i))
	}
}

func TestDisjointSet_Union(t *testing.T) {
	d := homology.NewDisjointSet(6)

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(2, 3))
	assert.Equal(t, 4, d.Count())

	// Joining two already-merged elements reports no merge.
	assert.False(t, d.Union(1, 0))
	assert.Equal(t, 4, d.Count())

	// Transitivity across set boundaries.
	assert.True(t, d.Union(1, 3))
	assert.Equal(t, d.Find(0), d.Find(2))
	assert.Equal(t, 3, d.Count())
}

func TestDisjointSet_UnionInto(t *testing.T) {
	d := homology.NewDisjointSet(4)

	d.Union(2, 3)

	// UnionInto keeps x's representative no matter the ranks.
	d.UnionInto(0, 2)
	assert.Equal(t, 0, d.Find(2))
	assert.Equal(t, 0, d.Find(3))
	assert.Equal(t, 2, d.Count())

	// Same-set merge is a no-op.
	d.UnionInto(0, 3)
	assert.Equal(t, 2, d.Count())
}
