package retrieval

import (
	"strings"
	"unicode/utf8"
)

// Splitter cuts text into overlapping chunks of at most Size runes,
// preferring the coarsest separator that occurs in the text.
type Splitter struct {
	Size       int
	Overlap    int
	Separators []string
}

// NewSplitter returns a Splitter with DefaultSeparators.
// Non-positive sizes fall back to the defaults.
func NewSplitter(size, overlap int) Splitter {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
		if DefaultChunkOverlap < size {
			overlap = DefaultChunkOverlap
		}
	}
	return Splitter{Size: size, Overlap: overlap, Separators: DefaultSeparators}
}

// Split returns the chunks of text in order.
func (s Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return s.split(text, s.Separators)
}

// SplitDocuments splits every document, numbering chunks per source.
func (s Splitter) SplitDocuments(docs []Document) []Chunk {
	var chunks []Chunk
	for _, d := range docs {
		for i, text := range s.Split(d.Text) {
			chunks = append(chunks, Chunk{Source: d.Source, Index: i, Text: text})
		}
	}
	return chunks
}

func (s Splitter) split(text string, separators []string) []string {
	sep := ""
	var rest []string
	for i, c := range separators {
		if strings.Contains(text, c) {
			sep, rest = c, separators[i+1:]
			break
		}
	}
	if sep == "" {
		return s.hardSplit(text)
	}

	var out, fits []string
	for _, piece := range strings.Split(text, sep) {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		if utf8.RuneCountInString(piece) <= s.Size {
			fits = append(fits, piece)
			continue
		}
		if len(fits) > 0 {
			out = append(out, s.merge(fits, sep)...)
			fits = nil
		}
		if len(rest) == 0 {
			out = append(out, s.hardSplit(piece)...)
		} else {
			out = append(out, s.split(piece, rest)...)
		}
	}
	if len(fits) > 0 {
		out = append(out, s.merge(fits, sep)...)
	}
	return out
}

// merge packs pieces into chunks of at most Size runes, carrying up to
// Overlap runes of trailing pieces into the next chunk.
func (s Splitter) merge(pieces []string, sep string) []string {
	sepLen := utf8.RuneCountInString(sep)
	var out, window []string
	total := 0

	joinedLen := func(extra int) int {
		if len(window) == 0 {
			return extra
		}
		return total + sepLen + extra
	}

	for _, p := range pieces {
		pLen := utf8.RuneCountInString(p)
		if len(window) > 0 && joinedLen(pLen) > s.Size {
			if chunk := strings.TrimSpace(strings.Join(window, sep)); chunk != "" {
				out = append(out, chunk)
			}
			for len(window) > 0 && (total > s.Overlap || joinedLen(pLen) > s.Size) {
				total -= utf8.RuneCountInString(window[0])
				if len(window) > 1 {
					total -= sepLen
				}
				window = window[1:]
			}
		}
		total = joinedLen(pLen)
		window = append(window, p)
	}
	if chunk := strings.TrimSpace(strings.Join(window, sep)); chunk != "" {
		out = append(out, chunk)
	}
	return out
}

func (s Splitter) hardSplit(text string) []string {
	r := []rune(text)
	step := s.Size - s.Overlap
	var out []string
	for start := 0; start < len(r); start += step {
		end := start + s.Size
		if end > len(r) {
			end = len(r)
		}
		if chunk := strings.TrimSpace(string(r[start:end])); chunk != "" {
			out = append(out, chunk)
		}
		if end == len(r) {
			break
		}
	}
	return out
}
