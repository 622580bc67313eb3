package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/repository"
)

func TestNoteServiceSanitizesContent(t *testing.T) {
	db := openTestDB(t)

	svc := NewNoteService(repository.NewNoteRepository(db), noopBroadcaster(), validator.New(), zerolog.Nop())

	note, err := svc.Create(context.Background(), testOwner, dto.NoteCreateRequest{
		Title:   "<b>Midterm</b> topics",
		Content: `<p>Chapters 1-4</p><script>alert("x")</script>`,
	})
	require.NoError(t, err)
	require.Equal(t, "Midterm topics", note.Title)
	require.Contains(t, note.Content, "<p>Chapters 1-4</p>")
	require.NotContains(t, note.Content, "<script>")
}

func TestNoteServiceRejectsEmptyTitleAfterSanitization(t *testing.T) {
	db := openTestDB(t)

	svc := NewNoteService(repository.NewNoteRepository(db), noopBroadcaster(), validator.New(), zerolog.Nop())

	_, err := svc.Create(context.Background(), testOwner, dto.NoteCreateRequest{
		Title:   "<script></script>",
		Content: "body",
	})
	require.ErrorIs(t, err, ErrNoteTitleEmpty)
}

func TestNoteServiceOwnerScoping(t *testing.T) {
	db := openTestDB(t)

	svc := NewNoteService(repository.NewNoteRepository(db), noopBroadcaster(), validator.New(), zerolog.Nop())

	note, err := svc.Create(context.Background(), testOwner, dto.NoteCreateRequest{
		Title:   "Office hours",
		Content: "Thursdays at 2pm",
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "someone-else", note.ID)
	require.ErrorIs(t, err, ErrNoteNotFound)
}
