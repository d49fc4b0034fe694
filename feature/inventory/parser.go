package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cardstock/core/recon"
	"cardstock/core/utils"
)

// ParseStats reports what a snapshot parse kept and dropped.
type ParseStats struct {
	// Rows is the number of data rows seen (header excluded).
	Rows int `json:"rows"`
	// Loaded is the number of rows that became listings.
	Loaded int `json:"loaded"`
	// Dropped is the number of rows discarded for missing price/quantity.
	Dropped int `json:"dropped"`
}

// column indices resolved from the header row. -1 means absent.
type columnMap struct {
	name      int
	set       int
	number    int
	condition int
	language  int
	foil      int
	signed    int
	quantity  int
	price     int
	location  int
	comment   int
}

// ParseSnapshot reads a stock export and returns sanitized listings.
// The delimiter (";" or ",") is sniffed from the header line. Rows with an
// empty price or quantity field are dropped rather than failing the whole
// snapshot; an unparsable quantity on a surviving row defaults to zero.
func ParseSnapshot(r io.Reader) ([]recon.Listing, ParseStats, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.Comma = sniffDelimiter(string(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if len(records) == 0 {
		return nil, ParseStats{}, nil
	}

	cols := resolveColumns(records[0])
	if cols.name < 0 || cols.quantity < 0 || cols.price < 0 {
		return nil, ParseStats{}, fmt.Errorf("snapshot header missing name, quantity or price column")
	}

	var stats ParseStats
	listings := make([]recon.Listing, 0, len(records)-1)

	for _, record := range records[1:] {
		stats.Rows++

		if field(record, cols.quantity) == "" || field(record, cols.price) == "" {
			stats.Dropped++
			continue
		}

		price, err := utils.ParsePrice(field(record, cols.price))
		if err != nil {
			stats.Dropped++
			continue
		}

		listings = append(listings, recon.Listing{
			Name:      field(record, cols.name),
			Set:       field(record, cols.set),
			Number:    field(record, cols.number),
			Condition: recon.Condition(strings.ToUpper(field(record, cols.condition))),
			Language:  parseLanguage(field(record, cols.language)),
			Foil:      utils.ParseFlag(field(record, cols.foil)),
			Signed:    utils.ParseFlag(field(record, cols.signed)),
			Quantity:  utils.ParseQuantity(field(record, cols.quantity)),
			Price:     price,
			Location:  field(record, cols.location),
			Comment:   field(record, cols.comment),
		})
		stats.Loaded++
	}

	return listings, stats, nil
}

// sniffDelimiter picks the delimiter from the first line of the export.
// Semicolon wins when present since comma then usually sits inside names.
func sniffDelimiter(content string) rune {
	line := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		line = content[:idx]
	}
	if strings.ContainsRune(line, ';') {
		return ';'
	}
	return ','
}

// resolveColumns maps known header labels to their indices,
// case-insensitively. Exports from different tools label the same column
// differently ("Quantity" vs "Amount").
func resolveColumns(header []string) columnMap {
	cols := columnMap{
		name: -1, set: -1, number: -1, condition: -1, language: -1,
		foil: -1, signed: -1, quantity: -1, price: -1, location: -1, comment: -1,
	}

	for i, label := range header {
		switch strings.ToLower(strings.TrimSpace(label)) {
		case "name", "english name", "card":
			if cols.name < 0 {
				cols.name = i
			}
		case "set", "expansion", "exp.":
			cols.set = i
		case "number", "collector number":
			cols.number = i
		case "condition":
			cols.condition = i
		case "language":
			cols.language = i
		case "foil", "foil?":
			cols.foil = i
		case "signed", "signed?":
			cols.signed = i
		case "quantity", "amount", "count":
			cols.quantity = i
		case "price", "unit price":
			cols.price = i
		case "location", "storage":
			cols.location = i
		case "comment", "comments", "note":
			cols.comment = i
		}
	}

	return cols
}

// field returns the trimmed value at idx, or "" when the column is absent
// or the row is short.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseLanguage normalizes the language column to one of the five supported
// print languages. Unknown or empty values fall back to English.
func parseLanguage(s string) recon.Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "german", "de", "deutsch":
		return recon.LanguageGerman
	case "spanish", "es", "español":
		return recon.LanguageSpanish
	case "french", "fr", "français":
		return recon.LanguageFrench
	case "italian", "it", "italiano":
		return recon.LanguageItalian
	default:
		return recon.LanguageEnglish
	}
}
