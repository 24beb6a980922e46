package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
)

// In-memory repository doubles shared by the service tests. The relation-set
// mutators guard their maps with a mutex because the removal cleanups call
// them from multiple goroutines.

// ── Mock ArticleRepository ──

type mockArticleRepo struct {
	mu       sync.Mutex
	nextID   int64
	articles map[int64]*models.Article
	tagSets  map[int64][]int64
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{
		articles: make(map[int64]*models.Article),
		tagSets:  make(map[int64][]int64),
	}
}

func (m *mockArticleRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(m.articles))
	for id := range m.articles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *mockArticleRepo) List(_ context.Context, search string, limit, skip int, cursor int64) ([]models.Article, error) {
	var result []models.Article
	skipped := 0
	for _, id := range m.sortedIDs() {
		article := m.articles[id]
		if cursor > 0 && article.ID < cursor {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(article.Title), strings.ToLower(search)) {
			continue
		}
		if skipped < skip {
			skipped++
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *article)
	}
	return result, nil
}

func (m *mockArticleRepo) Count(_ context.Context, search string) (int64, error) {
	var total int64
	for _, article := range m.articles {
		if search != "" && !strings.Contains(strings.ToLower(article.Title), strings.ToLower(search)) {
			continue
		}
		total++
	}
	return total, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	if article, ok := m.articles[id]; ok {
		copied := *article
		return &copied, nil
	}
	return nil, apperrors.ErrArticleNotFound
}

func (m *mockArticleRepo) GetBySlug(_ context.Context, slug string) (*models.Article, error) {
	for _, id := range m.sortedIDs() {
		if m.articles[id].Slug == slug {
			copied := *m.articles[id]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrArticleNotFound
}

func (m *mockArticleRepo) Create(_ context.Context, article *models.Article, tagIDs []int64) error {
	m.nextID++
	article.ID = m.nextID
	copied := *article
	m.articles[article.ID] = &copied
	m.tagSets[article.ID] = append([]int64(nil), tagIDs...)
	return nil
}

func (m *mockArticleRepo) Update(_ context.Context, article *models.Article) error {
	if _, ok := m.articles[article.ID]; !ok {
		return apperrors.ErrArticleNotFound
	}
	copied := *article
	m.articles[article.ID] = &copied
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id int64) error {
	delete(m.articles, id)
	delete(m.tagSets, id)
	return nil
}

func (m *mockArticleRepo) SetTags(_ context.Context, articleID int64, tagIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tagSets[articleID] = append([]int64(nil), tagIDs...)
	return nil
}

func (m *mockArticleRepo) GetTagSetsByTagIDs(_ context.Context, tagIDs []int64) ([]models.ArticleTagSet, error) {
	wanted := make(map[int64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = struct{}{}
	}

	var sets []models.ArticleTagSet
	for _, articleID := range m.sortedIDs() {
		for _, tagID := range m.tagSets[articleID] {
			if _, ok := wanted[tagID]; ok {
				sets = append(sets, models.ArticleTagSet{
					ArticleID: articleID,
					TagIDs:    append([]int64(nil), m.tagSets[articleID]...),
				})
				break
			}
		}
	}
	return sets, nil
}

// ── Mock TagRepository ──

type mockTagRepo struct {
	nextID int64
	tags   map[int64]*models.Tag
}

func newMockTagRepo() *mockTagRepo {
	return &mockTagRepo{tags: make(map[int64]*models.Tag)}
}

func (m *mockTagRepo) GetAll(_ context.Context) ([]models.Tag, error) {
	var result []models.Tag
	for _, tag := range m.tags {
		result = append(result, *tag)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockTagRepo) GetByID(_ context.Context, id int64) (*models.Tag, error) {
	if tag, ok := m.tags[id]; ok {
		copied := *tag
		return &copied, nil
	}
	return nil, apperrors.ErrTagNotFound
}

func (m *mockTagRepo) GetByIDs(_ context.Context, ids []int64) ([]models.Tag, error) {
	var result []models.Tag
	for _, id := range ids {
		if tag, ok := m.tags[id]; ok {
			result = append(result, *tag)
		}
	}
	return result, nil
}

func (m *mockTagRepo) Create(_ context.Context, tag *models.Tag) error {
	m.nextID++
	tag.ID = m.nextID
	copied := *tag
	m.tags[tag.ID] = &copied
	return nil
}

func (m *mockTagRepo) Update(_ context.Context, tag *models.Tag) error {
	if _, ok := m.tags[tag.ID]; !ok {
		return apperrors.ErrTagNotFound
	}
	copied := *tag
	m.tags[tag.ID] = &copied
	return nil
}

func (m *mockTagRepo) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(m.tags, id)
	}
	return nil
}

func (m *mockTagRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, tag := range m.tags {
		if tag.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock SubjectRepository ──

// Relation sets are kept in both directions so either side can be seeded and
// inspected directly; the Set* methods keep the two maps in sync.
type mockSubjectRepo struct {
	mu               sync.Mutex
	nextID           int64
	subjects         map[int64]*models.Subject
	lecturerSets     map[int64][]int64 // subject id -> employee ids
	employeeSubjects map[int64][]int64 // employee id -> subject ids
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{
		subjects:         make(map[int64]*models.Subject),
		lecturerSets:     make(map[int64][]int64),
		employeeSubjects: make(map[int64][]int64),
	}
}

func (m *mockSubjectRepo) GetAll(_ context.Context) ([]models.Subject, error) {
	ids := make([]int64, 0, len(m.subjects))
	for id := range m.subjects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]models.Subject, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.subjects[id])
	}
	return result, nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	if subject, ok := m.subjects[id]; ok {
		copied := *subject
		return &copied, nil
	}
	return nil, apperrors.ErrSubjectNotFound
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *models.Subject, lecturerIDs []int64) error {
	m.nextID++
	subject.ID = m.nextID
	copied := *subject
	m.subjects[subject.ID] = &copied
	m.lecturerSets[subject.ID] = append([]int64(nil), lecturerIDs...)
	for _, employeeID := range lecturerIDs {
		m.employeeSubjects[employeeID] = append(m.employeeSubjects[employeeID], subject.ID)
	}
	return nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *models.Subject) error {
	if _, ok := m.subjects[subject.ID]; !ok {
		return apperrors.ErrSubjectNotFound
	}
	copied := *subject
	m.subjects[subject.ID] = &copied
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(m.subjects, id)
		delete(m.lecturerSets, id)
	}
	return nil
}

func (m *mockSubjectRepo) SetLecturers(_ context.Context, subjectID int64, employeeIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lecturerSets[subjectID] = append([]int64(nil), employeeIDs...)
	return nil
}

func (m *mockSubjectRepo) SetEmployeeSubjects(_ context.Context, employeeID int64, subjectIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employeeSubjects[employeeID] = append([]int64(nil), subjectIDs...)
	return nil
}

func (m *mockSubjectRepo) GetEmployeeSetsBySubjectIDs(_ context.Context, subjectIDs []int64) ([]models.EmployeeSubjectSet, error) {
	wanted := make(map[int64]struct{}, len(subjectIDs))
	for _, id := range subjectIDs {
		wanted[id] = struct{}{}
	}

	employeeIDs := make([]int64, 0, len(m.employeeSubjects))
	for employeeID := range m.employeeSubjects {
		employeeIDs = append(employeeIDs, employeeID)
	}
	sort.Slice(employeeIDs, func(i, j int) bool { return employeeIDs[i] < employeeIDs[j] })

	var sets []models.EmployeeSubjectSet
	for _, employeeID := range employeeIDs {
		for _, subjectID := range m.employeeSubjects[employeeID] {
			if _, ok := wanted[subjectID]; ok {
				sets = append(sets, models.EmployeeSubjectSet{
					EmployeeID: employeeID,
					SubjectIDs: append([]int64(nil), m.employeeSubjects[employeeID]...),
				})
				break
			}
		}
	}
	return sets, nil
}

func (m *mockSubjectRepo) GetSubjectSetsByEmployeeIDs(_ context.Context, employeeIDs []int64) ([]models.SubjectEmployeeSet, error) {
	wanted := make(map[int64]struct{}, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = struct{}{}
	}

	subjectIDs := make([]int64, 0, len(m.lecturerSets))
	for subjectID := range m.lecturerSets {
		subjectIDs = append(subjectIDs, subjectID)
	}
	sort.Slice(subjectIDs, func(i, j int) bool { return subjectIDs[i] < subjectIDs[j] })

	var sets []models.SubjectEmployeeSet
	for _, subjectID := range subjectIDs {
		for _, employeeID := range m.lecturerSets[subjectID] {
			if _, ok := wanted[employeeID]; ok {
				sets = append(sets, models.SubjectEmployeeSet{
					SubjectID:   subjectID,
					EmployeeIDs: append([]int64(nil), m.lecturerSets[subjectID]...),
				})
				break
			}
		}
	}
	return sets, nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	nextID    int64
	employees map[int64]*models.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[int64]*models.Employee)}
}

func (m *mockEmployeeRepo) GetAll(_ context.Context) ([]models.Employee, error) {
	result := make([]models.Employee, 0, len(m.employees))
	for _, employee := range m.employees {
		result = append(result, *employee)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id int64) (*models.Employee, error) {
	if employee, ok := m.employees[id]; ok {
		copied := *employee
		return &copied, nil
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) GetByIDs(_ context.Context, ids []int64) ([]models.Employee, error) {
	var result []models.Employee
	for _, id := range ids {
		if employee, ok := m.employees[id]; ok {
			result = append(result, *employee)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *models.Employee) error {
	m.nextID++
	employee.ID = m.nextID
	copied := *employee
	m.employees[employee.ID] = &copied
	return nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *models.Employee) error {
	if _, ok := m.employees[employee.ID]; !ok {
		return apperrors.ErrEmployeeNotFound
	}
	copied := *employee
	m.employees[employee.ID] = &copied
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(m.employees, id)
	}
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) List(_ context.Context, search string, limit, skip int, cursor int64) ([]models.User, error) {
	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []models.User
	skipped := 0
	for _, id := range ids {
		user := m.users[id]
		if cursor > 0 && user.ID < cursor {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(user.Name), strings.ToLower(search)) {
			continue
		}
		if skipped < skip {
			skipped++
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *user)
	}
	return result, nil
}

func (m *mockUserRepo) Count(_ context.Context, search string) (int64, error) {
	var total int64
	for _, user := range m.users {
		if search != "" && !strings.Contains(strings.ToLower(user.Name), strings.ToLower(search)) {
			continue
		}
		total++
	}
	return total, nil
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id int64, role models.Role) error {
	user, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Role = role
	return nil
}

// ── Mock TokenRepository ──

type mockTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	copied := *token
	m.tokens[token.Token] = &copied
	return nil
}

func (m *mockTokenRepo) GetByToken(_ context.Context, token string) (*models.RefreshToken, error) {
	if stored, ok := m.tokens[token]; ok {
		copied := *stored
		return &copied, nil
	}
	return nil, apperrors.ErrTokenNotFound
}

func (m *mockTokenRepo) Revoke(_ context.Context, token string) error {
	stored, ok := m.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.Revoked = true
	return nil
}

func (m *mockTokenRepo) DeleteExpired(_ context.Context) error {
	return nil
}

// ── Mock PublicationRepository ──

type mockPublicationRepo struct {
	nextID       int64
	publications map[int64]*models.LibraryPublication
}

func newMockPublicationRepo() *mockPublicationRepo {
	return &mockPublicationRepo{publications: make(map[int64]*models.LibraryPublication)}
}

func (m *mockPublicationRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(m.publications))
	for id := range m.publications {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *mockPublicationRepo) List(_ context.Context, search string) ([]models.LibraryPublication, error) {
	var result []models.LibraryPublication
	for _, id := range m.sortedIDs() {
		publication := m.publications[id]
		if search != "" {
			needle := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(publication.Title), needle) &&
				!strings.Contains(strings.ToLower(publication.Publicator), needle) {
				continue
			}
		}
		result = append(result, *publication)
	}
	return result, nil
}

func (m *mockPublicationRepo) GetByID(_ context.Context, id int64) (*models.LibraryPublication, error) {
	if publication, ok := m.publications[id]; ok {
		copied := *publication
		return &copied, nil
	}
	return nil, apperrors.ErrPublicationNotFound
}

func (m *mockPublicationRepo) GetBySlug(_ context.Context, slug string) (*models.LibraryPublication, error) {
	for _, id := range m.sortedIDs() {
		if m.publications[id].Slug == slug {
			copied := *m.publications[id]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrPublicationNotFound
}

func (m *mockPublicationRepo) Create(_ context.Context, publication *models.LibraryPublication) error {
	m.nextID++
	publication.ID = m.nextID
	copied := *publication
	m.publications[publication.ID] = &copied
	return nil
}

func (m *mockPublicationRepo) Update(_ context.Context, publication *models.LibraryPublication) error {
	if _, ok := m.publications[publication.ID]; !ok {
		return apperrors.ErrPublicationNotFound
	}
	copied := *publication
	m.publications[publication.ID] = &copied
	return nil
}

func (m *mockPublicationRepo) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(m.publications, id)
	}
	return nil
}
