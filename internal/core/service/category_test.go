package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"todotrack/internal/adapter/database/repository"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/service"
	"todotrack/pkg/test"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	Service *service.CategoryService
}

func (s *CategoryServiceTestSuite) SetupTest() {
	db := test.InitTestDatabase()
	s.Service = service.NewCategoryService(repository.NewCategoryRepository(db))
}

func TestCategoryServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreate_Success() {
	category, err := s.Service.Create(context.Background(), domain.Category{
		Name:  "Work",
		Color: "#ef4444",
	})

	Expect(err).To(BeNil())
	Expect(category.ID).NotTo(BeZero())
	Expect(category.Name).To(Equal("Work"))
}

func (s *CategoryServiceTestSuite) TestCreate_DefaultColor() {
	category, err := s.Service.Create(context.Background(), domain.Category{Name: "Misc"})

	Expect(err).To(BeNil())
	Expect(category.Color).To(Equal("#64748b"))
}

func (s *CategoryServiceTestSuite) TestCreate_BlankName() {
	_, err := s.Service.Create(context.Background(), domain.Category{Name: "  "})

	var validationErr *domain.ValidationError
	assert.ErrorAs(s.T(), err, &validationErr)
	assert.Equal(s.T(), "name", validationErr.Field)
}

func (s *CategoryServiceTestSuite) TestDelete_Unknown() {
	err := s.Service.Delete(context.Background(), 12345)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CategoryServiceTestSuite) TestList() {
	_, err := s.Service.Create(context.Background(), domain.Category{Name: "Work", Color: "#ef4444"})
	s.Require().NoError(err)

	_, err = s.Service.Create(context.Background(), domain.Category{Name: "Home", Color: "#22c55e"})
	s.Require().NoError(err)

	categories, err := s.Service.List(context.Background())

	Expect(err).To(BeNil())
	Expect(categories).To(HaveLen(2))
}
