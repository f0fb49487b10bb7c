package database

import (
	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
)

var messageColumns = []string{"language", "key", "value"}

// tableRows turns table into COPY rows, ordered by key.
func tableRows(table *entities.MessageTable) [][]any {
	keys := table.Keys()
	rows := make([][]any, 0, len(keys))
	for _, key := range keys {
		value, _ := table.Get(key)
		rows = append(rows, []any{table.Language(), key.String(), value})
	}
	return rows
}

func rowsToTable(language string, keys, values []string) *entities.MessageTable {
	entries := make(map[entities.FlatKey]string, len(keys))
	for i, k := range keys {
		entries[entities.FlatKey(k)] = values[i]
	}
	return entities.NewMessageTable(language, entries)
}
