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

func setupSubjectService() (*SubjectService, *mockSubjectRepo, *mockEmployeeRepo) {
	subjectRepo := newMockSubjectRepo()
	employeeRepo := newMockEmployeeRepo()
	return NewSubjectService(subjectRepo, employeeRepo), subjectRepo, employeeRepo
}

func seedEmployees(t *testing.T, repo *mockEmployeeRepo, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, repo.Create(context.Background(), &models.Employee{Name: name}))
	}
}

func TestSubjectService_Create_LinksLecturers(t *testing.T) {
	svc, subjectRepo, employeeRepo := setupSubjectService()
	seedEmployees(t, employeeRepo, "Ivanenko", "Petrenko")

	subject, err := svc.Create(context.Background(), dto.CreateSubjectRequest{
		Name:        "Databases",
		Semesters:   []string{"3", "4"},
		LecturerIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, subjectRepo.lecturerSets[subject.ID])
}

func TestSubjectService_Create_UnknownLecturerRejected(t *testing.T) {
	svc, subjectRepo, employeeRepo := setupSubjectService()
	seedEmployees(t, employeeRepo, "Ivanenko")

	_, err := svc.Create(context.Background(), dto.CreateSubjectRequest{
		Name:        "Databases",
		LecturerIDs: []int64{1, 42},
	})

	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	assert.Empty(t, subjectRepo.subjects)
}

func TestSubjectService_Update_ReplacesLecturerSet(t *testing.T) {
	svc, subjectRepo, employeeRepo := setupSubjectService()
	seedEmployees(t, employeeRepo, "Ivanenko", "Petrenko", "Shevchenko")

	subject, err := svc.Create(context.Background(), dto.CreateSubjectRequest{
		Name:        "Databases",
		LecturerIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	lecturers := []int64{3}
	_, err = svc.Update(context.Background(), subject.ID, dto.UpdateSubjectRequest{LecturerIDs: &lecturers})
	require.NoError(t, err)

	assert.Equal(t, []int64{3}, subjectRepo.lecturerSets[subject.ID])
}

// An update carrying an unknown lecturer id must be rejected before any
// field change reaches storage.
func TestSubjectService_Update_UnknownLecturerLeavesRowUntouched(t *testing.T) {
	svc, subjectRepo, employeeRepo := setupSubjectService()
	ctx := context.Background()
	seedEmployees(t, employeeRepo, "Ivanenko")

	subject, err := svc.Create(ctx, dto.CreateSubjectRequest{
		Name:        "Databases",
		LecturerIDs: []int64{1},
	})
	require.NoError(t, err)

	name := "Mutated"
	lecturers := []int64{1, 42}
	_, err = svc.Update(ctx, subject.ID, dto.UpdateSubjectRequest{
		Name:        &name,
		LecturerIDs: &lecturers,
	})

	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	assert.Equal(t, "Databases", subjectRepo.subjects[subject.ID].Name)
	assert.Equal(t, []int64{1}, subjectRepo.lecturerSets[subject.ID])
}

// A subject listing several semesters must land in every matching bucket.
func TestSubjectService_GetGroupedBySemester(t *testing.T) {
	svc, _, _ := setupSubjectService()
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateSubjectRequest{Name: "Algorithms", Semesters: []string{"1", "2"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateSubjectRequest{Name: "Databases", Semesters: []string{"2"}})
	require.NoError(t, err)

	grouped, err := svc.GetGroupedBySemester(ctx)
	require.NoError(t, err)

	require.Len(t, grouped.Semesters["1"], 1)
	assert.Equal(t, "Algorithms", grouped.Semesters["1"][0].Name)
	require.Len(t, grouped.Semesters["2"], 2)
	assert.Equal(t, "Algorithms", grouped.Semesters["2"][0].Name)
	assert.Equal(t, "Databases", grouped.Semesters["2"][1].Name)
}

func TestSubjectService_BatchRemove_EmptyIDs(t *testing.T) {
	svc, _, _ := setupSubjectService()

	err := svc.BatchRemove(context.Background(), nil)
	assert.Error(t, err)
}

// Deleting subjects must rewrite the subject set of every referencing
// employee so that exactly the deleted ids disappear and the rest survives.
func TestSubjectService_BatchRemove_PrunesEmployeeSubjectSets(t *testing.T) {
	svc, subjectRepo, _ := setupSubjectService()
	ctx := context.Background()

	subjectRepo.employeeSubjects[10] = []int64{1, 2, 3}
	subjectRepo.employeeSubjects[11] = []int64{2}
	subjectRepo.employeeSubjects[12] = []int64{3, 4}

	require.NoError(t, svc.BatchRemove(ctx, []int64{1, 2}))

	assert.Equal(t, []int64{3}, subjectRepo.employeeSubjects[10])
	assert.Empty(t, subjectRepo.employeeSubjects[11])
	assert.Equal(t, []int64{3, 4}, subjectRepo.employeeSubjects[12])
	assert.NotContains(t, subjectRepo.subjects, int64(1))
	assert.NotContains(t, subjectRepo.subjects, int64(2))
}
