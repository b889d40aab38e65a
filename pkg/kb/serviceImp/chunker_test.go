package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText_Empty(t *testing.T) {
	assert.Nil(t, splitText("", 100, 20))
	assert.Nil(t, splitText("   \n\t ", 100, 20))
}

func TestSplitText_ShortContentSingleChunk(t *testing.T) {
	chunks := splitText("short text", 100, 20)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplitText_CoversContentWithExactOverlap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString("The quick brown fox jumps over the lazy dog. ")
	}
	content := b.String()
	const size, overlap = 200, 40

	chunks := splitText(content, size, overlap)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), size)
	}

	// consecutive chunks share exactly `overlap` runes; stripping that
	// prefix from every chunk after the first reconstructs the content
	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0])
	for _, c := range chunks[1:] {
		runes := []rune(c)
		require.Greater(t, len(runes), overlap)
		rebuilt.WriteString(string(runes[overlap:]))
	}
	assert.Equal(t, content, rebuilt.String())
}

func TestSplitText_PrefersParagraphBreak(t *testing.T) {
	para := strings.Repeat("aaaa ", 12) // 60 runes
	content := para + "\n\n" + strings.Repeat("bbbb ", 30)

	chunks := splitText(content, 100, 0)
	require.Greater(t, len(chunks), 1)
	assert.True(t, strings.HasSuffix(chunks[0], "\n\n"), "first chunk should end at the paragraph break")
}

func TestSplitText_PrefersSentenceBoundary(t *testing.T) {
	content := "First sentence here. Second sentence follows. " + strings.Repeat("word ", 40)

	chunks := splitText(content, 50, 0)
	require.Greater(t, len(chunks), 1)
	assert.True(t, strings.HasSuffix(strings.TrimRight(chunks[0], " "), "."),
		"first chunk should end at a sentence boundary, got %q", chunks[0])
}

func TestSplitText_HardSplitWithoutBoundaries(t *testing.T) {
	content := strings.Repeat("x", 250)

	chunks := splitText(content, 100, 0)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[1], 100)
	assert.Len(t, chunks[2], 50)
	assert.Equal(t, content, strings.Join(chunks, ""))
}

func TestSplitText_OverlapOnHardSplit(t *testing.T) {
	content := strings.Repeat("y", 180)

	chunks := splitText(content, 100, 20)
	require.Len(t, chunks, 2)
	assert.Equal(t, chunks[0][80:], chunks[1][:20])
}

func TestSplitText_DefendsAgainstBadParams(t *testing.T) {
	// overlap >= size must not loop forever
	chunks := splitText(strings.Repeat("z ", 300), 100, 100)
	assert.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), 100)
	}
}
