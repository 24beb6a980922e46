package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
)

func setupPublicationService() (*PublicationService, *mockPublicationRepo) {
	publicationRepo := newMockPublicationRepo()
	return NewPublicationService(publicationRepo), publicationRepo
}

func TestPublicationService_Create_GeneratesSlug(t *testing.T) {
	svc, _ := setupPublicationService()

	publication, err := svc.Create(context.Background(), dto.CreatePublicationRequest{
		Title:      "Методичні Вказівки",
		Publicator: "Львівська політехніка",
		Authors:    []string{"Ivanenko I.", "Petrenko P."},
	})
	require.NoError(t, err)

	assert.Equal(t, "metodychni-vkazivky", publication.Slug)
	assert.Equal(t, []string{"Ivanenko I.", "Petrenko P."}, publication.Authors)
}

// Slugs are not unique; a collision resolves to the oldest row.
func TestPublicationService_GetBySlug_OldestWinsOnCollision(t *testing.T) {
	svc, _ := setupPublicationService()
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreatePublicationRequest{Title: "Конспект Лекцій"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, dto.CreatePublicationRequest{Title: "Конспект Лекцій"})
	require.NoError(t, err)
	require.Equal(t, first.Slug, second.Slug)

	found, err := svc.GetBySlug(ctx, first.Slug)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestPublicationService_Update_TitleChangeRegeneratesSlug(t *testing.T) {
	svc, _ := setupPublicationService()
	ctx := context.Background()

	publication, err := svc.Create(ctx, dto.CreatePublicationRequest{Title: "Старий Заголовок"})
	require.NoError(t, err)

	title := "Новий Заголовок"
	updated, err := svc.Update(ctx, publication.ID, dto.UpdatePublicationRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "novyi-zaholovok", updated.Slug)
}

func TestPublicationService_List_SearchMatchesTitleAndPublicator(t *testing.T) {
	svc, _ := setupPublicationService()
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreatePublicationRequest{Title: "Databases Handbook", Publicator: "KPI Press"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreatePublicationRequest{Title: "Algorithms", Publicator: "Lviv Press"})
	require.NoError(t, err)

	byTitle, err := svc.List(ctx, "databases")
	require.NoError(t, err)
	assert.Len(t, byTitle, 1)

	byPublicator, err := svc.List(ctx, "lviv")
	require.NoError(t, err)
	assert.Len(t, byPublicator, 1)
	assert.Equal(t, "Algorithms", byPublicator[0].Title)
}

func TestPublicationService_BatchRemove(t *testing.T) {
	svc, publicationRepo := setupPublicationService()
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreatePublicationRequest{Title: "One"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreatePublicationRequest{Title: "Two"})
	require.NoError(t, err)

	require.NoError(t, svc.BatchRemove(ctx, []int64{1}))
	assert.NotContains(t, publicationRepo.publications, int64(1))
	assert.Contains(t, publicationRepo.publications, int64(2))

	assert.Error(t, svc.BatchRemove(ctx, nil))
}
