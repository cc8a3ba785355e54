package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Etozheigor/phonebook/internal/models"
)

func TestEditScenarioUpdatesOnlyCompany(t *testing.T) {
	book, path := newFileBook(t, petrov)
	ctx := context.Background()

	found, err := book.Search(ctx, models.Criteria{Surname: models.Some("Петров")})
	require.NoError(t, err)
	require.Equal(t, []models.Contact{petrov}, found)

	res, err := book.Edit(ctx,
		models.ContactUpdate{Company: models.Some("Новая Фирма")},
		models.Criteria{Surname: models.Some("Петров")},
	)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Position)
	assert.Equal(t, petrov, res.Before)
	assert.Equal(t,
		`"Иван";"Иванович";"Петров";"Новая Фирма";"89161234567";"84951234567"`+"\n",
		readFile(t, path))
}

func TestEditNoMatchLeavesStoreUntouched(t *testing.T) {
	book, path := newFileBook(t, petrov, smirnova)
	before := readFile(t, path)

	_, err := book.Edit(context.Background(),
		models.ContactUpdate{Name: models.Some("Никто")},
		models.Criteria{Surname: models.Some("Кузнецов")},
	)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, readFile(t, path))
}

func TestEditAmbiguousListsCandidates(t *testing.T) {
	book, path := newFileBook(t, petrov, smirnova, ivanov)
	before := readFile(t, path)

	_, err := book.Edit(context.Background(),
		models.ContactUpdate{Company: models.Some("Новая Фирма")},
		models.Criteria{Name: models.Some("Иван")},
	)

	var amb *AmbiguousMatchError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, []models.Contact{petrov, ivanov}, amb.Candidates)
	assert.Equal(t, before, readFile(t, path))
}

func TestEditMergesSubsetOfFields(t *testing.T) {
	book, path := newFileBook(t, smirnova, petrov, ivanov)

	res, err := book.Edit(context.Background(),
		models.ContactUpdate{
			Patronymic: models.Some("Сергеевна"),
			WorkPhone:  models.Some("84990000000"),
			Name:       models.Some(""),
		},
		models.Criteria{Phone: models.Some("+7 926")},
	)
	require.NoError(t, err)

	want := smirnova
	want.Patronymic = "Сергеевна"
	want.WorkPhone = "84990000000"
	assert.Equal(t, want, res.After)
	assert.Equal(t, want.Line()+"\n"+petrov.Line()+"\n"+ivanov.Line()+"\n", readFile(t, path))
}

func TestEditByPositionDoesNotTouchOtherRecords(t *testing.T) {
	// Новое значение совпадает с соседней записью: позиционная замена не должна её затронуть.
	book, path := newFileBook(t, ivanov, petrov, ivanov)

	res, err := book.Edit(context.Background(),
		models.ContactUpdate{Surname: models.Some("Иванов"), Company: models.None(), Patronymic: models.Some("")},
		models.Criteria{Surname: models.Some("Петров")},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Position)

	changed := petrov
	changed.Surname = "Иванов"
	assert.Equal(t, ivanov.Line()+"\n"+changed.Line()+"\n"+ivanov.Line()+"\n", readFile(t, path))
}

func TestEditDuplicateRecordsAreAmbiguous(t *testing.T) {
	book, path := newFileBook(t, petrov, smirnova, petrov)
	before := readFile(t, path)

	_, err := book.Edit(context.Background(),
		models.ContactUpdate{Company: models.Some("Новая Фирма")},
		models.Criteria{Surname: models.Some("Петров")},
	)

	var amb *AmbiguousMatchError
	require.True(t, errors.As(err, &amb))
	assert.Len(t, amb.Candidates, 2)
	assert.Equal(t, before, readFile(t, path))
}

func TestEditWithoutCriteria(t *testing.T) {
	book, path := newFileBook(t, petrov)

	res, err := book.Edit(context.Background(), models.ContactUpdate{Company: models.Some("Одна")}, models.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, "Одна", res.After.Company)
	assert.Contains(t, readFile(t, path), `"Одна"`)

	book, _ = newFileBook(t, petrov, smirnova)
	_, err = book.Edit(context.Background(), models.ContactUpdate{Company: models.Some("Одна")}, models.Criteria{})
	var amb *AmbiguousMatchError
	assert.True(t, errors.As(err, &amb))
}

func TestEditEmptyStore(t *testing.T) {
	book, _ := newFileBook(t)

	_, err := book.Edit(context.Background(), models.ContactUpdate{Name: models.Some("Иван")}, models.Criteria{})
	assert.ErrorIs(t, err, ErrNotFound)
}
