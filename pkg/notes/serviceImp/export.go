package serviceImp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

func (s *Svc) ExportWorkbook(bookID string, chapterNumber *int) (*excelize.File, error) {
	byTopic, err := s.MergeNotes(bookID, chapterNumber)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	for i, topic := range topics {
		sheet := sheetName(topic, i)
		if i == 0 {
			// reuse the default sheet instead of leaving it empty
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		header := []any{"Source", "Chapter", "Created", "Content"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, err
		}
		for row, n := range byTopic[topic] {
			chapter := ""
			if n.ChapterNumber != nil {
				chapter = fmt.Sprintf("%d", *n.ChapterNumber)
			}
			cells := []any{n.Source, chapter, n.CreatedAt.Format("2006-01-02 15:04"), n.Content}
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row+2), &cells); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// sheetName keeps excelize's 31-char limit and strips characters sheet
// names cannot contain.
func sheetName(topic string, idx int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, topic)
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Topic %d", idx+1)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
