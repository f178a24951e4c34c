package csvimport

import (
	"fmt"
	"strings"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
)

// Summarize lists the errors of the first limit invalid rows and a trailer for the rest.
func Summarize(result domain.ParseResult, limit int) []string {
	var lines []string
	shown := 0
	for _, row := range result.Rows {
		if row.IsValid {
			continue
		}
		if shown == limit {
			break
		}
		lines = append(lines, fmt.Sprintf("Fila %d: %s", row.RowNumber, strings.Join(row.Errors, ", ")))
		shown++
	}
	if rest := result.InvalidCount - shown; rest > 0 {
		lines = append(lines, fmt.Sprintf("... y %d errores más", rest))
	}
	return lines
}
