package sheets

import (
	"context"
	"fmt"
	"strings"

	"bgg_sheet_sync/internal/bgg"

	"github.com/rs/zerolog/log"
)

// titleColumnRange covers the title column below the header row.
const titleColumnRange = "A2:A1000"

// TitleRow is one physical row of the sheet's title column. RowIndex is the
// 1-based display row (>= 2, row 1 is the header) and is the row's identity
// for the write-back. Title may be blank; skipping blanks is the
// orchestrator's call so the skip shows up in the run summary.
type TitleRow struct {
	RowIndex int
	Title    string
}

// Store binds the sheets client to one spreadsheet and sheet name. It is the
// tabular source and sink for a sync run.
type Store struct {
	client        *Client
	spreadsheetID string
	sheetName     string
}

func NewStore(client *Client, spreadsheetID, sheetName string) *Store {
	return &Store{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}
}

// ReadTitleRows reads the title column once, in physical order, and maps each
// cell to its display row. Row order is never changed and no row is dropped.
func (s *Store) ReadTitleRows(ctx context.Context) ([]TitleRow, error) {
	readRange := fmt.Sprintf("%s!%s", s.sheetName, titleColumnRange)
	data, err := s.client.ReadSheet(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return nil, err
	}

	rows := ParseTitleRows(data)
	log.Debug().
		Int("rows", len(rows)).
		Str("range", readRange).
		Msg("Read title rows")
	return rows, nil
}

// ParseTitleRows converts raw cell data into TitleRows. Index i of the data
// corresponds to display row i+2 because reading starts below the header.
func ParseTitleRows(data [][]interface{}) []TitleRow {
	rows := make([]TitleRow, 0, len(data))
	for i, row := range data {
		title := ""
		if len(row) > 0 && row[0] != nil {
			title = strings.TrimSpace(fmt.Sprintf("%v", row[0]))
		}
		rows = append(rows, TitleRow{RowIndex: i + 2, Title: title})
	}
	return rows
}

// WriteRecordRow writes the record's seven display fields into the row's
// B..H range. The derived used buy/sell prices are part of the record but
// not part of the write range, matching the sheet's column layout.
func (s *Store) WriteRecordRow(ctx context.Context, rowIndex int, record bgg.GameRecord) error {
	values := [][]interface{}{
		{
			record.Rank,
			record.Rating,
			record.Players,
			record.BestPlayers,
			record.PlayingTime,
			record.Weight,
			record.SuggestedRetail,
		},
	}

	writeRange := recordRange(s.sheetName, rowIndex)
	if err := s.client.UpdateRange(ctx, s.spreadsheetID, writeRange, values); err != nil {
		return err
	}

	log.Debug().
		Int("row", rowIndex).
		Str("range", writeRange).
		Msg("Wrote record row")
	return nil
}

// recordRange maps a display row to its record write range, columns B..H.
func recordRange(sheetName string, rowIndex int) string {
	return fmt.Sprintf("%s!B%d:H%d", sheetName, rowIndex, rowIndex)
}
