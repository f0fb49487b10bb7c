package output

import (
	"context"

	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
)

// TablePublisher stores a resolved message table outside the process.
type TablePublisher interface {
	Publish(ctx context.Context, table *entities.MessageTable) error
	// Fetch reads back the stored table for language.
	Fetch(ctx context.Context, language string) (*entities.MessageTable, error)
}
