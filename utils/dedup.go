package utils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Deduper remembers the keys of known cards. Keys are normalized terms,
// stemmed when the analyzer stems. Not safe for concurrent use.
type Deduper struct {
	analyzer *Analyzer
	seen     map[string]struct{}
}

func NewDeduper(a *Analyzer) *Deduper {
	return &Deduper{analyzer: a, seen: make(map[string]struct{})}
}

// Add records term and reports whether it was new. Blank terms are never
// recorded.
func (d *Deduper) Add(term string) bool {
	key := d.analyzer.Key(term)
	if key == "" {
		return false
	}
	if _, ok := d.seen[key]; ok {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// Contains reports whether term is already known. Blank terms count as
// known so they are never imported.
func (d *Deduper) Contains(term string) bool {
	key := d.analyzer.Key(term)
	if key == "" {
		return true
	}
	_, ok := d.seen[key]
	return ok
}

func (d *Deduper) AddCards(cards []Card) {
	for _, c := range cards {
		d.Add(c.Key)
	}
}

func (d *Deduper) Len() int { return len(d.seen) }

// scanTerms is a bufio.SplitFunc yielding the same words as Tokenize.
func scanTerms(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
		start += width
	}
	for i := start; i < len(data); {
		r, width := utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
		i += width
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// StreamTerms emits the words of an import text in order.
func StreamTerms(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	out := make(chan string, 100)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		sc := bufio.NewScanner(r)
		sc.Split(scanTerms)
		for sc.Scan() {
			select {
			case out <- sc.Text():
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		if err := sc.Err(); err != nil {
			errCh <- err
		}
	}()

	return out, errCh
}

// Import appends a card for every word of r that is neither ignored nor
// already known, and returns the grown deck with the number of new cards.
func Import(ctx context.Context, cards []Card, r io.Reader, d *Deduper) ([]Card, int, error) {
	added := 0
	ch, errCh := StreamTerms(ctx, r)
	for term := range ch {
		term = d.analyzer.Lower(strings.TrimSpace(term))
		if IsIgnoredTerm(term) || d.Contains(term) {
			continue
		}
		cards = append(cards, Card{Key: term, ID: len(cards)})
		d.Add(term)
		added++
	}
	return cards, added, <-errCh
}

// ImportFile runs Import over a text file. A missing file is logged and
// leaves the deck unchanged.
func ImportFile(ctx context.Context, cards []Card, path string, d *Deduper, log *zap.Logger) ([]Card, int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("import file does not exist, ignoring", zap.String("file", path))
		return cards, 0, nil
	}
	if err != nil {
		return cards, 0, err
	}
	defer f.Close()

	cards, added, err := Import(ctx, cards, f, d)
	if err != nil {
		return cards, added, fmt.Errorf("import %s: %w", path, err)
	}
	log.Info("imported file", zap.String("file", path), zap.Int("new_cards", added))
	return cards, added, nil
}

// LoadDedupSources adds the keys of other decks to d. Each path is a card
// file or a directory whose .csv files are all read.
func LoadDedupSources(ctx context.Context, paths []string, d *Deduper, log *zap.Logger) error {
	for _, p := range paths {
		files, err := dedupFiles(p)
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("dedup source does not exist, ignoring", zap.String("path", p))
			continue
		}
		if err != nil {
			return err
		}
		for _, f := range files {
			cards, err := ReadCardsFile(ctx, f, log)
			if err != nil {
				return err
			}
			d.AddCards(cards)
		}
	}
	return nil
}

func dedupFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	return files, nil
}
