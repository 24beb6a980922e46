package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances behind their interfaces
type Repositories struct {
	Users        UserRepository
	Tokens       TokenRepository
	Articles     ArticleRepository
	Tags         TagRepository
	Subjects     SubjectRepository
	Employees    EmployeeRepository
	Publications PublicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Tokens:       NewTokenRepository(db),
		Articles:     NewArticleRepository(db),
		Tags:         NewTagRepository(db),
		Subjects:     NewSubjectRepository(db),
		Employees:    NewEmployeeRepository(db),
		Publications: NewPublicationRepository(db),
	}
}
