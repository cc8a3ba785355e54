package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Etozheigor/phonebook/internal/match"
	"github.com/Etozheigor/phonebook/internal/models"
)

// EditResult описывает выполненное изменение.
type EditResult struct {
	Position int
	Before   models.Contact
	After    models.Contact
}

// Edit находит единственный контакт по criteria и сливает с ним update.
// Ноль совпадений — ErrNotFound, больше одного — *AmbiguousMatchError;
// в обоих случаях хранилище не изменяется.
// Запись заменяется по позиции, одинаковые строки в других позициях не затрагиваются.
func (p *Phonebook) Edit(ctx context.Context, update models.ContactUpdate, criteria models.Criteria) (EditResult, error) {
	contacts, err := p.store.ReadAll(ctx)
	if err != nil {
		return EditResult{}, err
	}

	positions := match.Filter(contacts, criteria)
	if len(positions) == 0 {
		return EditResult{}, ErrNotFound
	}
	if len(positions) > 1 {
		candidates := make([]models.Contact, 0, len(positions))
		for _, pos := range positions {
			candidates = append(candidates, contacts[pos])
		}
		p.logger.Warn("неоднозначный запрос на редактирование", zap.Int("matches", len(positions)))
		return EditResult{}, &AmbiguousMatchError{Candidates: candidates}
	}

	pos := positions[0]
	result := EditResult{
		Position: pos,
		Before:   contacts[pos],
		After:    update.Apply(contacts[pos]),
	}

	updated := make([]models.Contact, len(contacts))
	copy(updated, contacts)
	updated[pos] = result.After

	if err := p.store.Rewrite(ctx, updated); err != nil {
		return EditResult{}, err
	}

	p.logger.Debug("контакт изменён", zap.Int("position", pos))
	return result, nil
}
