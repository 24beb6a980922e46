package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/helpers"
)

func setupArticleService() (*ArticleService, *mockArticleRepo, *mockTagRepo) {
	articleRepo := newMockArticleRepo()
	tagRepo := newMockTagRepo()
	return NewArticleService(articleRepo, tagRepo), articleRepo, tagRepo
}

func seedArticles(t *testing.T, svc *ArticleService, authorID int64, count int) {
	t.Helper()
	session := models.Session{UserID: authorID, Role: models.RoleAuthor}
	for i := 1; i <= count; i++ {
		_, err := svc.Create(context.Background(), session, dto.CreateArticleRequest{
			Title:   fmt.Sprintf("Article %02d", i),
			Content: "body",
		})
		require.NoError(t, err)
	}
}

func TestArticleService_List_FirstPage(t *testing.T) {
	svc, _, _ := setupArticleService()
	seedArticles(t, svc, 1, 25)

	resp, err := svc.List(context.Background(), helpers.ListParams{Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), resp.Total)
	assert.Len(t, resp.Items, 10)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, int64(11), *resp.NextCursor)
}

func TestArticleService_List_LastPageHasNoCursor(t *testing.T) {
	svc, _, _ := setupArticleService()
	seedArticles(t, svc, 1, 25)

	resp, err := svc.List(context.Background(), helpers.ListParams{Limit: 10, Skip: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(25), resp.Total)
	assert.Len(t, resp.Items, 5)
	assert.Nil(t, resp.NextCursor)
}

func TestArticleService_List_CursorContinuation(t *testing.T) {
	svc, _, _ := setupArticleService()
	seedArticles(t, svc, 1, 25)

	resp, err := svc.List(context.Background(), helpers.ListParams{Limit: 10, Cursor: 11})
	require.NoError(t, err)

	require.Len(t, resp.Items, 10)
	assert.Equal(t, int64(11), resp.Items[0].ID)
	assert.Equal(t, int64(20), resp.Items[9].ID)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, int64(21), *resp.NextCursor)
}

func TestArticleService_List_ZeroLimitFallsBackToDefault(t *testing.T) {
	svc, _, _ := setupArticleService()
	seedArticles(t, svc, 1, 15)

	resp, err := svc.List(context.Background(), helpers.ListParams{})
	require.NoError(t, err)

	assert.Len(t, resp.Items, helpers.DefaultPageSize)
}

func TestArticleService_Create_GeneratesSlug(t *testing.T) {
	svc, _, _ := setupArticleService()
	session := models.Session{UserID: 7, Role: models.RoleAuthor}

	article, err := svc.Create(context.Background(), session, dto.CreateArticleRequest{
		Title:   "Привіт Світ",
		Content: "body",
	})
	require.NoError(t, err)

	assert.Equal(t, "pryvit-svit", article.Slug)
	assert.Equal(t, int64(7), article.AuthorID)
}

func TestArticleService_Create_UnknownTagRejected(t *testing.T) {
	svc, articleRepo, tagRepo := setupArticleService()
	require.NoError(t, tagRepo.Create(context.Background(), &models.Tag{Name: "golang"}))

	session := models.Session{UserID: 1, Role: models.RoleAuthor}
	_, err := svc.Create(context.Background(), session, dto.CreateArticleRequest{
		Title:   "Untagged",
		Content: "body",
		TagIDs:  []int64{1, 99},
	})

	assert.ErrorIs(t, err, apperrors.ErrTagNotFound)
	assert.Empty(t, articleRepo.articles)
}

func TestArticleService_Update_NonOwnerDenied(t *testing.T) {
	svc, _, _ := setupArticleService()
	seedArticles(t, svc, 1, 1)

	stranger := models.Session{UserID: 2, Role: models.RoleAuthor}
	title := "Hijacked"
	_, err := svc.Update(context.Background(), stranger, 1, dto.UpdateArticleRequest{Title: &title})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestArticleService_Update_TitleChangeRegeneratesSlug(t *testing.T) {
	svc, _, _ := setupArticleService()
	seedArticles(t, svc, 1, 1)

	owner := models.Session{UserID: 1, Role: models.RoleAuthor}
	title := "Нова Назва"
	updated, err := svc.Update(context.Background(), owner, 1, dto.UpdateArticleRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "nova-nazva", updated.Slug)
}

// An update carrying an unknown tag id must be rejected before any field
// change reaches storage.
func TestArticleService_Update_UnknownTagLeavesRowUntouched(t *testing.T) {
	svc, articleRepo, tagRepo := setupArticleService()
	seedArticles(t, svc, 1, 1)
	require.NoError(t, tagRepo.Create(context.Background(), &models.Tag{Name: "golang"}))

	owner := models.Session{UserID: 1, Role: models.RoleAuthor}
	title := "Mutated"
	tagIDs := []int64{1, 99}
	_, err := svc.Update(context.Background(), owner, 1, dto.UpdateArticleRequest{
		Title:  &title,
		TagIDs: &tagIDs,
	})

	assert.ErrorIs(t, err, apperrors.ErrTagNotFound)
	assert.Equal(t, "Article 01", articleRepo.articles[1].Title)
	assert.Empty(t, articleRepo.tagSets[1])
}

func TestArticleService_Update_AdminMayEditForeignArticle(t *testing.T) {
	svc, _, _ := setupArticleService()
	seedArticles(t, svc, 1, 1)

	admin := models.Session{UserID: 99, Role: models.RoleAdmin}
	content := "edited by admin"
	updated, err := svc.Update(context.Background(), admin, 1, dto.UpdateArticleRequest{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, "edited by admin", updated.Content)
	assert.Equal(t, int64(1), updated.AuthorID)
}

func TestArticleService_Remove_NonOwnerDeniedAndRowRetained(t *testing.T) {
	svc, articleRepo, _ := setupArticleService()
	seedArticles(t, svc, 1, 1)

	stranger := models.Session{UserID: 2, Role: models.RoleUser}
	err := svc.Remove(context.Background(), stranger, 1)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Contains(t, articleRepo.articles, int64(1))
}

func TestArticleService_Remove_Owner(t *testing.T) {
	svc, articleRepo, _ := setupArticleService()
	seedArticles(t, svc, 1, 1)

	owner := models.Session{UserID: 1, Role: models.RoleAuthor}
	require.NoError(t, svc.Remove(context.Background(), owner, 1))

	assert.Empty(t, articleRepo.articles)
}

func TestArticleService_Remove_Admin(t *testing.T) {
	svc, articleRepo, _ := setupArticleService()
	seedArticles(t, svc, 1, 1)

	admin := models.Session{UserID: 50, Role: models.RoleAdmin}
	require.NoError(t, svc.Remove(context.Background(), admin, 1))

	assert.Empty(t, articleRepo.articles)
}
