package wantlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cardstock/core/recon"
)

// sectionHeader is the deck-section token exported deck lists carry.
const sectionHeader = "Deck"

// ParseWants reads a want-list and returns its entries in line order.
// Blank lines and the section header are skipped. A line that is not
// exactly "<positive int><space><name>" is dropped without error; partial
// lists are more useful than rejected ones.
func ParseWants(r io.Reader) ([]recon.WantEntry, error) {
	var wants []recon.WantEntry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == sectionHeader {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}

		quantity, err := strconv.Atoi(parts[0])
		if err != nil || quantity <= 0 {
			continue
		}

		name := strings.TrimSpace(parts[1])
		if name == "" {
			continue
		}

		wants = append(wants, recon.WantEntry{Quantity: quantity, Name: name})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read want-list: %w", err)
	}

	return wants, nil
}
