package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
)

var (
	adminSession  = models.Session{UserID: 1, Role: models.RoleAdmin}
	authorSession = models.Session{UserID: 2, Role: models.RoleAuthor}
)

func setupTagService() (*TagService, *mockTagRepo, *mockArticleRepo) {
	tagRepo := newMockTagRepo()
	articleRepo := newMockArticleRepo()
	return NewTagService(tagRepo, articleRepo), tagRepo, articleRepo
}

func TestTagService_Create_AdminOnly(t *testing.T) {
	svc, tagRepo, _ := setupTagService()

	_, err := svc.Create(context.Background(), authorSession, dto.CreateTagRequest{Name: "golang"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, tagRepo.tags)

	tag, err := svc.Create(context.Background(), adminSession, dto.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)
	assert.Equal(t, "golang", tag.Name)
}

func TestTagService_Create_NameTooShort(t *testing.T) {
	svc, _, _ := setupTagService()

	_, err := svc.Create(context.Background(), adminSession, dto.CreateTagRequest{Name: "x"})
	assert.Error(t, err)
}

func TestTagService_Create_DuplicateName(t *testing.T) {
	svc, _, _ := setupTagService()

	_, err := svc.Create(context.Background(), adminSession, dto.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), adminSession, dto.CreateTagRequest{Name: "golang"})
	assert.ErrorIs(t, err, apperrors.ErrTagAlreadyExists)
}

func TestTagService_Update_AdminOnly(t *testing.T) {
	svc, _, _ := setupTagService()

	tag, err := svc.Create(context.Background(), adminSession, dto.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), authorSession, tag.ID, dto.UpdateTagRequest{Name: "go"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	renamed, err := svc.Update(context.Background(), adminSession, tag.ID, dto.UpdateTagRequest{Name: "go"})
	require.NoError(t, err)
	assert.Equal(t, "go", renamed.Name)
}

// Renaming follows the same name rules as creation: length-checked, and a
// name already held by another tag is a conflict, not a bare driver error.
func TestTagService_Update_DuplicateName(t *testing.T) {
	svc, _, _ := setupTagService()
	ctx := context.Background()

	_, err := svc.Create(ctx, adminSession, dto.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)
	tag, err := svc.Create(ctx, adminSession, dto.CreateTagRequest{Name: "web"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, adminSession, tag.ID, dto.UpdateTagRequest{Name: "golang"})
	assert.ErrorIs(t, err, apperrors.ErrTagAlreadyExists)
}

func TestTagService_Update_SameNameAllowed(t *testing.T) {
	svc, _, _ := setupTagService()

	tag, err := svc.Create(context.Background(), adminSession, dto.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)

	renamed, err := svc.Update(context.Background(), adminSession, tag.ID, dto.UpdateTagRequest{Name: "golang"})
	require.NoError(t, err)
	assert.Equal(t, "golang", renamed.Name)
}

func TestTagService_Update_NameTooShort(t *testing.T) {
	svc, _, _ := setupTagService()

	tag, err := svc.Create(context.Background(), adminSession, dto.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), adminSession, tag.ID, dto.UpdateTagRequest{Name: "x"})
	assert.Error(t, err)
}

func TestTagService_BatchRemove_AdminOnly(t *testing.T) {
	svc, _, _ := setupTagService()

	err := svc.BatchRemove(context.Background(), authorSession, []int64{1})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestTagService_BatchRemove_EmptyIDs(t *testing.T) {
	svc, _, _ := setupTagService()

	err := svc.BatchRemove(context.Background(), adminSession, nil)
	assert.Error(t, err)
}

// Deleting tags must rewrite the tag set of every referencing article so that
// exactly the deleted ids disappear and everything else survives in order.
func TestTagService_BatchRemove_PrunesArticleTagSets(t *testing.T) {
	svc, tagRepo, articleRepo := setupTagService()
	ctx := context.Background()

	for _, name := range []string{"go", "web", "infra", "db"} {
		_, err := svc.Create(ctx, adminSession, dto.CreateTagRequest{Name: name})
		require.NoError(t, err)
	}

	articleSvc := NewArticleService(articleRepo, tagRepo)
	_, err := articleSvc.Create(ctx, authorSession, dto.CreateArticleRequest{
		Title: "First", Content: "body", TagIDs: []int64{1, 2, 3},
	})
	require.NoError(t, err)
	_, err = articleSvc.Create(ctx, authorSession, dto.CreateArticleRequest{
		Title: "Second", Content: "body", TagIDs: []int64{2, 4},
	})
	require.NoError(t, err)
	_, err = articleSvc.Create(ctx, authorSession, dto.CreateArticleRequest{
		Title: "Third", Content: "body", TagIDs: []int64{3, 4},
	})
	require.NoError(t, err)

	require.NoError(t, svc.BatchRemove(ctx, adminSession, []int64{2, 3}))

	assert.Equal(t, []int64{1}, articleRepo.tagSets[1])
	assert.Equal(t, []int64{4}, articleRepo.tagSets[2])
	assert.Equal(t, []int64{4}, articleRepo.tagSets[3])
	assert.NotContains(t, tagRepo.tags, int64(2))
	assert.NotContains(t, tagRepo.tags, int64(3))
	assert.Contains(t, tagRepo.tags, int64(1))
	assert.Contains(t, tagRepo.tags, int64(4))
}

func TestSubtractIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 4}, subtractIDs([]int64{1, 2, 3, 4}, []int64{2, 3}))
	assert.Equal(t, []int64{1, 2}, subtractIDs([]int64{1, 2}, []int64{9}))
	assert.Empty(t, subtractIDs([]int64{5}, []int64{5}))
	assert.Empty(t, subtractIDs(nil, []int64{1}))
}
