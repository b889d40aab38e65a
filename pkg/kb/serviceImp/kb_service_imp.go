package serviceImp

import (
	"log"
	"math"
	"sort"
	"strings"

	"bookstudy/entities"
	"bookstudy/pkg/kb/embedder"
	"bookstudy/pkg/kb/repository"
)

// Embedder is satisfied by *embedder.Client.
type Embedder interface {
	Embed(texts []string) ([][]float32, error)
}

type Svc struct {
	r       repository.ChunkRepository
	emb     Embedder
	size    int
	overlap int
}

func New(r repository.ChunkRepository, emb Embedder, chunkSize, chunkOverlap int) *Svc {
	return &Svc{r: r, emb: emb, size: chunkSize, overlap: chunkOverlap}
}

func (s *Svc) IndexChapters(bookID string, chapters []entities.Chapter) (int, error) {
	var rows []entities.BookChunk
	var texts []string
	for _, ch := range chapters {
		for i, text := range splitText(ch.Content, s.size, s.overlap) {
			rows = append(rows, entities.BookChunk{
				BookID:        bookID,
				ChapterNumber: ch.ChapterNumber,
				ChapterTitle:  ch.Title,
				PageStart:     ch.PageStart,
				PageEnd:       ch.PageEnd,
				Ord:           i,
				Text:          text,
			})
			texts = append(texts, text)
		}
	}

	if len(rows) > 0 && s.emb != nil {
		embs, err := s.emb.Embed(texts)
		if err != nil {
			// degrade gracefully: keep chunks without vectors, Search
			// falls back to keyword matching
			log.Printf("[kb] embed %s failed, indexing without vectors: %v", bookID, err)
		} else {
			for i := range rows {
				rows[i].Embedding = embedder.FloatsToBytes(embs[i])
			}
		}
	}

	if err := s.r.ReplaceBook(bookID, rows); err != nil {
		return 0, err
	}
	log.Printf("[kb] indexed %s: %d chunks from %d chapters", bookID, len(rows), len(chapters))
	return len(rows), nil
}

func (s *Svc) Search(bookID, query string, n int, chapterFilter *int) ([]entities.BookChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || n <= 0 {
		return nil, nil
	}

	var chunks []entities.BookChunk
	var err error
	if chapterFilter != nil {
		chunks, err = s.r.ByBookChapter(bookID, *chapterFilter)
	} else {
		chunks, err = s.r.ByBook(bookID)
	}
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vecs, embErr := s.emb.Embed([]string{q}); embErr == nil && len(vecs) > 0 {
			qvec = vecs[0]
		}
	}

	type scored struct {
		ch entities.BookChunk
		sc float64
	}
	ranked := make([]scored, 0, len(chunks))
	if len(qvec) > 0 {
		for _, ch := range chunks {
			vec := embedder.BytesToFloats(ch.Embedding)
			if sc, ok := cosine(qvec, vec); ok {
				ranked = append(ranked, scored{ch: ch, sc: sc})
			}
		}
	}
	if len(ranked) == 0 {
		// keyword fallback: no vectors stored, or the query failed to embed
		qlow := strings.ToLower(q)
		for _, ch := range chunks {
			sc := float64(strings.Count(strings.ToLower(ch.Text), qlow))
			ranked = append(ranked, scored{ch: ch, sc: sc})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].sc > ranked[j].sc })
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]entities.BookChunk, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ranked[i].ch)
	}
	return out, nil
}

func cosine(a, b []float32) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}
	var dot, na, nb float64
	for i := range a {
		v, w := float64(a[i]), float64(b[i])
		dot += v * w
		na += v * v
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), true
}
