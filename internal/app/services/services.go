package services

import (
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/repositories"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/auth"
)

// Services holds all the business-logic service instances
type Services struct {
	Auth         *AuthService
	Articles     *ArticleService
	Tags         *TagService
	Subjects     *SubjectService
	Employees    *EmployeeService
	Users        *UserService
	Publications *PublicationService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:         NewAuthService(repos.Users, repos.Tokens, jwtService),
		Articles:     NewArticleService(repos.Articles, repos.Tags),
		Tags:         NewTagService(repos.Tags, repos.Articles),
		Subjects:     NewSubjectService(repos.Subjects, repos.Employees),
		Employees:    NewEmployeeService(repos.Employees, repos.Subjects),
		Users:        NewUserService(repos.Users),
		Publications: NewPublicationService(repos.Publications),
	}
}
