package application

import (
	"bytes"
	"errors"
	"io/fs"
	"log"

	"golang.org/x/text/language"

	"github.com/MegaNoam/CitizensCMD/internal/domain"
	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/yamldoc"
	"github.com/MegaNoam/CitizensCMD/internal/ports/input"
	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
)

// FallbackLanguage is used for defaults when a language ships no resource.
const FallbackLanguage = "en"

var _ input.LangUseCase = (*LangService)(nil)

type LangService struct {
	resources output.ResourceSource
	store     output.LangStore
}

func NewLangService(resources output.ResourceSource, store output.LangStore) *LangService {
	return &LangService{
		resources: resources,
		store:     store,
	}
}

// Load seeds or reconciles the saved language file against the bundled
// defaults and flattens the result. On failure the result still holds the
// table built so far (possibly empty) so callers can keep running.
func (s *LangService) Load(lang string) (*entities.LoadResult, error) {
	res := &entities.LoadResult{
		Language: lang,
		Table:    entities.EmptyTable(lang),
	}
	if _, err := language.Parse(lang); err != nil {
		return res, domain.NewLoadError(domain.ErrMissingResource, "resolve language", lang, err)
	}
	res.Path = s.store.Path(lang)

	bundled, fallback, err := s.bundled(lang)
	if err != nil {
		return res, err
	}
	res.Fallback = fallback

	resolved, writeErr := s.resolve(lang, bundled, res)
	if resolved == nil {
		return res, writeErr
	}

	doc, err := yamldoc.Parse(resolved)
	if err != nil {
		return res, domain.NewLoadError(domain.ErrParse, "load", res.Path, err)
	}
	table, err := BuildTable(lang, doc)
	res.Table = table
	if err != nil {
		return res, domain.NewLoadError(domain.ErrMissingSection, "load", res.Path, err)
	}
	return res, writeErr
}

// bundled returns the resource for lang, or the fallback language's resource
// when lang ships none.
func (s *LangService) bundled(lang string) ([]byte, bool, error) {
	data, err := s.resources.Open(lang)
	if err == nil {
		return data, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, domain.NewLoadError(domain.ErrIO, "open resource", lang, err)
	}
	if lang != FallbackLanguage {
		data, ferr := s.resources.Open(FallbackLanguage)
		if ferr == nil {
			log.Printf("⚠️ lang: no bundled %q resource, using %q defaults", lang, FallbackLanguage)
			return data, true, nil
		}
		if !errors.Is(ferr, fs.ErrNotExist) {
			return nil, false, domain.NewLoadError(domain.ErrIO, "open resource", FallbackLanguage, ferr)
		}
	}
	return nil, false, domain.NewLoadError(domain.ErrMissingResource, "open resource", lang, err)
}

// resolve produces the authoritative file content and writes it when the
// saved file is missing or differs. A nil slice means nothing usable could be
// produced; otherwise the returned error only reports a failed write.
func (s *LangService) resolve(lang string, bundled []byte, res *entities.LoadResult) ([]byte, error) {
	saved, err := s.store.Read(lang)
	if errors.Is(err, fs.ErrNotExist) {
		res.Created = true
		if err := s.store.Replace(lang, bundled); err != nil {
			return bundled, domain.NewLoadError(domain.ErrIO, "create", res.Path, err)
		}
		res.Written = true
		log.Printf("✅ lang: created %s", res.Path)
		return bundled, nil
	}
	if err != nil {
		return nil, domain.NewLoadError(domain.ErrIO, "read", res.Path, err)
	}

	defaults, err := yamldoc.Parse(bundled)
	if err != nil {
		return nil, domain.NewLoadError(domain.ErrParse, "parse resource", lang, err)
	}
	user, err := yamldoc.Parse(saved)
	if err != nil {
		return nil, domain.NewLoadError(domain.ErrParse, "parse", res.Path, err)
	}
	merged, changed, err := Merge(defaults, user)
	if err != nil {
		return nil, domain.NewLoadError(kindOf(err, domain.ErrMissingSection), "merge resource", lang, err)
	}

	resolved := bundled
	if changed {
		res.Changed = true
		if resolved, err = merged.Encode(); err != nil {
			return nil, domain.NewLoadError(domain.ErrIO, "encode", res.Path, err)
		}
	}
	if bytes.Equal(resolved, saved) {
		return resolved, nil
	}
	if err := s.store.Replace(lang, resolved); err != nil {
		return resolved, domain.NewLoadError(domain.ErrIO, "write", res.Path, err)
	}
	res.Written = true
	return resolved, nil
}

// kindOf returns the domain error kind err already carries, or fallback.
func kindOf(err error, fallback error) error {
	for _, kind := range []error{domain.ErrParse, domain.ErrMissingSection, domain.ErrMissingResource, domain.ErrIO} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return fallback
}
