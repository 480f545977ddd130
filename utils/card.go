package utils

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// CSVDelimiter separates the columns of a flashcard file.
const CSVDelimiter = ';'

// Card is one flashcard: the term on the front, its translation on the back
// and a free-form note.
type Card struct {
	Key     string
	Value   string
	Comment string
	ID      int
}

func (c Card) record() []string {
	return []string{c.Key, c.Value, c.Comment}
}

// Text is the card content the search index sees.
func (c Card) Text() string {
	return strings.Join([]string{c.Key, c.Value, c.Comment}, " ")
}

// NewCard builds a card from CSV columns. Missing columns stay empty and
// columns past the comment are dropped. ok is false when the key is blank.
func NewCard(columns []string) (c Card, ok bool) {
	get := func(i int) string {
		if i < len(columns) {
			return columns[i]
		}
		return ""
	}
	c = Card{Key: get(0), Value: get(1), Comment: get(2)}
	return c, c.Key != ""
}

// StreamCards decodes cards from r. Rows that fail to parse or have an empty
// key are skipped; IDs count the accepted cards from 0.
func StreamCards(ctx context.Context, r io.Reader) (<-chan Card, <-chan error) {
	out := make(chan Card, 100)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		dec := csv.NewReader(r)
		dec.Comma = CSVDelimiter
		dec.FieldsPerRecord = -1
		dec.LazyQuotes = true
		var id int

		for {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			default:
			}

			rec, err := dec.Read()
			if err == io.EOF {
				return
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			if err != nil {
				errCh <- err
				return
			}

			card, ok := NewCard(rec)
			if !ok {
				continue
			}
			card.ID = id
			id++

			select {
			case out <- card:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()

	return out, errCh
}

// ReadCards collects every card from r.
func ReadCards(ctx context.Context, r io.Reader) ([]Card, error) {
	var cards []Card
	ch, errCh := StreamCards(ctx, r)
	for c := range ch {
		cards = append(cards, c)
	}
	if err := <-errCh; err != nil {
		return cards, err
	}
	return cards, nil
}

// ReadCardsFile loads a flashcard file. A missing file is an empty deck.
func ReadCardsFile(ctx context.Context, path string, log *zap.Logger) ([]Card, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("card file does not exist, starting from scratch", zap.String("file", path))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cards, err := ReadCards(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Info("read card file", zap.String("file", path), zap.Int("cards", len(cards)))
	return cards, nil
}

// WriteCards encodes cards as CSV.
func WriteCards(w io.Writer, cards []Card) error {
	enc := csv.NewWriter(w)
	enc.Comma = CSVDelimiter
	for _, c := range cards {
		if err := enc.Write(c.record()); err != nil {
			return err
		}
	}
	enc.Flush()
	return enc.Error()
}

// WriteCardsFile writes cards to path, replacing any existing file.
func WriteCardsFile(path string, cards []Card) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := WriteCards(f, cards); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// OutputFileName swaps the .csv extension of a deck file for ending.
func OutputFileName(deckFile, ending string) string {
	return strings.TrimSuffix(deckFile, ".csv") + ending
}
