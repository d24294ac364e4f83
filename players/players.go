// Package players loads draftable player datasets from ranked cheatsheet
// CSVs. The dataset is loaded once by the caller and passed into environment
// construction; nothing here holds global state.
package players

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

// FromCSV parses a ranked cheatsheet with columns name, position, value.
// Position accepts abbreviations with optional rank suffixes ("RB12");
// value accepts an optional "$" prefix. A header row is detected and
// skipped. Values are assumed normalized to the reference budget.
func FromCSV(r io.Reader) ([]auction.Player, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var out []auction.Player
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("players: read csv: %w", err)
		}
		line++
		if len(rec) < 3 {
			return nil, fmt.Errorf("players: line %d: want at least 3 columns, got %d", line, len(rec))
		}

		pos, ok := auction.ParsePosition(strings.TrimSpace(rec[1]))
		if !ok {
			if line == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("players: line %d: unknown position %q", line, rec[1])
		}

		raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rec[2]), "$"))
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("players: line %d: bad value %q", line, rec[2])
		}
		if value < 0 {
			return nil, fmt.Errorf("players: line %d: negative value %d", line, value)
		}

		out = append(out, auction.Player{
			Name:  strings.TrimSpace(rec[0]),
			Pos:   pos,
			Value: value,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("players: no player rows found")
	}
	return out, nil
}
