package input

import "github.com/MegaNoam/CitizensCMD/internal/domain/entities"

type LangUseCase interface {
	// Load resolves, reconciles and flattens the language file for lang. The
	// returned result always carries a table, empty when loading failed early.
	Load(lang string) (*entities.LoadResult, error)
}
