package repositoryImp

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstudy/entities"
)

func TestAddAndList(t *testing.T) {
	r := New()

	ch := 2
	require.NoError(t, r.Add(&entities.Note{ID: "n1", BookID: "b1", Content: "first"}))
	require.NoError(t, r.Add(&entities.Note{ID: "n2", BookID: "b1", ChapterNumber: &ch, Content: "second"}))
	require.NoError(t, r.Add(&entities.Note{ID: "n3", BookID: "b2", Content: "other book"}))

	notes, err := r.ByBook("b1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Content, "insertion order preserved")
	assert.False(t, notes[0].CreatedAt.IsZero(), "timestamp filled on add")

	filtered, err := r.ByBookChapter("b1", 2)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "n2", filtered[0].ID)
}

func TestAddRejectsMissingBookID(t *testing.T) {
	r := New()
	assert.Error(t, r.Add(nil))
	assert.Error(t, r.Add(&entities.Note{ID: "n1", Content: "no book"}))
}

func TestByBookUnknownIsEmpty(t *testing.T) {
	r := New()
	notes, err := r.ByBook("nope")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestByBookReturnsCopy(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(&entities.Note{ID: "n1", BookID: "b1", Content: "original"}))

	notes, _ := r.ByBook("b1")
	notes[0].Content = "mutated"

	again, _ := r.ByBook("b1")
	assert.Equal(t, "original", again[0].Content)
}

func TestConcurrentAdds(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Add(&entities.Note{ID: fmt.Sprintf("n%d", i), BookID: "b1", Content: "x"})
			_, _ = r.ByBook("b1")
		}(i)
	}
	wg.Wait()

	notes, err := r.ByBook("b1")
	require.NoError(t, err)
	assert.Len(t, notes, 50)
}
