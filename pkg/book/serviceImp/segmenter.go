package serviceImp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bookstudy/entities"
)

// HeadingDetector decides whether a page opens a new chapter. Kept as an
// interface so stronger heuristics can replace the regex one without
// touching the segmentation loop.
type HeadingDetector interface {
	Detect(pageText string) (number int, title string, ok bool)
}

type regexDetector struct {
	rx *regexp.Regexp
}

// NewRegexDetector matches the literal word "chapter" followed by a number,
// case-insensitive, anywhere on the page. The chapter title is taken from
// the line after the heading line.
func NewRegexDetector() HeadingDetector {
	return &regexDetector{rx: regexp.MustCompile(`(?i)chapter\s+(\d+)`)}
}

func (d *regexDetector) Detect(pageText string) (int, string, bool) {
	m := d.rx.FindStringSubmatch(pageText)
	if m == nil {
		return 0, "", false
	}
	num, err := strconv.Atoi(m[1])
	if err != nil || num <= 0 {
		return 0, "", false
	}

	title := ""
	lines := strings.Split(pageText, "\n")
	needle := strings.ToLower(m[0])
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			if i+1 < len(lines) {
				title = strings.TrimSpace(lines[i+1])
			}
			break
		}
	}
	if title == "" {
		title = fmt.Sprintf("Chapter %d", num)
	}
	return num, title, true
}

// Segmenter partitions page-ordered text into contiguous chapters.
type Segmenter struct {
	det HeadingDetector
}

func NewSegmenter(det HeadingDetector) *Segmenter { return &Segmenter{det: det} }

// Segment walks pages in order, opening a chapter on each heading match and
// closing the previous one at the page before. Headings whose number does
// not increase (running headers, back-references) are treated as body text.
// With no match at all, the whole document becomes one "Full Book" chapter.
func (s *Segmenter) Segment(bookID string, pages []string) []entities.Chapter {
	var chapters []entities.Chapter
	var current *entities.Chapter
	var content []string

	for pageNum, text := range pages {
		num, title, ok := s.det.Detect(text)
		if ok && (current == nil || num > current.ChapterNumber) {
			if current != nil {
				current.Content = strings.Join(content, "\n")
				current.PageEnd = pageNum - 1
				chapters = append(chapters, *current)
			}
			current = &entities.Chapter{
				BookID:        bookID,
				ChapterNumber: num,
				Title:         title,
				PageStart:     pageNum,
				PageEnd:       pageNum,
			}
			content = []string{text}
		} else if current != nil {
			content = append(content, text)
		}
	}

	if current != nil {
		current.Content = strings.Join(content, "\n")
		current.PageEnd = len(pages) - 1
		chapters = append(chapters, *current)
	}

	if len(chapters) == 0 && len(pages) > 0 {
		chapters = append(chapters, entities.Chapter{
			BookID:        bookID,
			ChapterNumber: 1,
			Title:         "Full Book",
			Content:       strings.Join(pages, "\n"),
			PageStart:     0,
			PageEnd:       len(pages) - 1,
		})
	}

	return chapters
}
