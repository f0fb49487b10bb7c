package application

import (
	"context"
	"fmt"
	"log"

	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/ports/input"
	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
)

type PublishService struct {
	langs     input.LangUseCase
	publisher output.TablePublisher
}

func NewPublishService(langs input.LangUseCase, publisher output.TablePublisher) *PublishService {
	return &PublishService{
		langs:     langs,
		publisher: publisher,
	}
}

// Publish loads lang and hands the table to the publisher. Tables from a
// failed load are never published, so a broken file cannot blank the rows.
func (s *PublishService) Publish(ctx context.Context, lang string) (*entities.LoadResult, error) {
	res, err := s.langs.Load(lang)
	if err != nil {
		return res, fmt.Errorf("publish %s: %w", lang, err)
	}
	if err := s.publisher.Publish(ctx, res.Table); err != nil {
		return res, fmt.Errorf("publish %s: %w", lang, err)
	}
	stored, err := s.publisher.Fetch(ctx, res.Table.Language())
	if err != nil {
		return res, fmt.Errorf("verify %s: %w", lang, err)
	}
	if stored.Len() != res.Table.Len() {
		return res, fmt.Errorf("verify %s: stored %d of %d messages", lang, stored.Len(), res.Table.Len())
	}
	log.Printf("✅ lang: published %d %s messages", res.Table.Len(), lang)
	return res, nil
}
