package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_Empty(t *testing.T) {
	stats := New().Statistics()

	assert.Equal(t, 0, stats.LeafCount)
	assert.Equal(t, 0, stats.ContainerCount)
	assert.Equal(t, uint64(0), stats.TotalSize)
	assert.Equal(t, "", stats.LargestLeaf)
	assert.Equal(t, "", stats.MostCommonExtension)
	assert.Equal(t, 0, stats.TotalItems())
}

func TestStatistics_Counts(t *testing.T) {
	ix := sampleIndex(t)
	ix.AddContainer("Music")
	ix.AddLeaf("big.iso", 9000)

	stats := ix.Statistics()
	assert.Equal(t, 5, stats.LeafCount)
	assert.Equal(t, 2, stats.ContainerCount)
	assert.Equal(t, 7, stats.TotalItems())
	assert.Equal(t, uint64(1024+5120+300+80+9000), stats.TotalSize)
	assert.Equal(t, "big.iso", stats.LargestLeaf)
	assert.Equal(t, uint64(9000), stats.LargestLeafSize)
	assert.Equal(t, ix.Operations(), stats.Operations)
}

func TestStatistics_LargestFirstSeenWins(t *testing.T) {
	ix := New()
	ix.AddLeaf("zeta.bin", 10)
	ix.AddLeaf("alpha.bin", 10)

	assert.Equal(t, "alpha.bin", ix.Statistics().LargestLeaf)
}

func TestStatistics_ZeroSizedLeaf(t *testing.T) {
	ix := New()
	ix.AddLeaf("empty.txt", 0)

	stats := ix.Statistics()
	assert.Equal(t, "empty.txt", stats.LargestLeaf)
	assert.Equal(t, uint64(0), stats.LargestLeafSize)
}

func TestStatistics_MostCommonExtension(t *testing.T) {
	ix := New()
	ix.AddLeaf("a.TXT", 1)
	ix.AddLeaf("b.txt", 1)
	ix.AddLeaf("c.go", 1)
	ix.AddLeaf("Makefile", 1)

	assert.Equal(t, ".TXT", ix.Statistics().MostCommonExtension, "counted case-insensitively, first spelling kept")
}

func TestStatistics_MostCommonExtensionTieIsAlphabetical(t *testing.T) {
	ix := New()
	ix.AddLeaf("z.md", 1)
	ix.AddLeaf("y.go", 1)
	ix.AddLeaf("x.rs", 1)

	assert.Equal(t, ".go", ix.Statistics().MostCommonExtension)
}

func TestStatistics_NoExtensions(t *testing.T) {
	ix := New()
	ix.AddLeaf("LICENSE", 1)
	ix.AddContainer("src.d")

	assert.Equal(t, "", ix.Statistics().MostCommonExtension)
}

func TestStatistics_SessionDuration(t *testing.T) {
	ix := New()
	start := ix.sessionStart
	ix.now = func() time.Time { return start.Add(3 * time.Minute) }

	assert.Equal(t, 3*time.Minute, ix.Statistics().SessionDuration)
}
