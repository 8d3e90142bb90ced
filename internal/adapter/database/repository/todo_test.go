package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"todotrack/internal/adapter/database/repository"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/port"
	"todotrack/internal/core/util"
	"todotrack/pkg/test"
	"todotrack/pkg/test/factory"
)

func cursorFor(todo domain.Todo) string {
	return util.EncodeCursor(todo.CreatedAt.Format(time.RFC3339Nano), todo.ID)
}

type TodoRepositoryTestSuite struct {
	suite.Suite
	TodoRepo port.TodoRepository
	UserRepo port.UserRepository
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	db := test.InitTestDatabase()

	s.TodoRepo = repository.NewTodoRepository(db, nil)
	s.UserRepo = repository.NewUserRepository(db)
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TodoRepositoryTestSuite))
}

func (s *TodoRepositoryTestSuite) createUser(username string) domain.User {
	user, err := s.UserRepo.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"UUID":     uuid.New(),
		"Username": username,
		"Email":    username + "@example.com",
	}))

	s.Require().NoError(err)

	return user
}

func (s *TodoRepositoryTestSuite) createTodo(userId int, title string, createdAt time.Time) domain.Todo {
	todo, err := s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Title":     title,
		"DueDate":   createdAt.Add(24 * time.Hour),
		"UserId":    userId,
		"CreatedAt": createdAt,
		"UpdatedAt": createdAt,
	}))

	s.Require().NoError(err)

	return todo
}

func (s *TodoRepositoryTestSuite) TestCreateAndGetByUUID() {
	user := s.createUser("alice")

	todo := s.createTodo(user.ID, "Buy milk", time.Now())

	found, err := s.TodoRepo.GetByUUID(context.Background(), user.ID, todo.UUID.String())

	Expect(err).To(BeNil())
	Expect(found.Title).To(Equal("Buy milk"))
	Expect(found.Priority).To(Equal(domain.PriorityMedium))
}

func (s *TodoRepositoryTestSuite) TestGetByUUID_ForeignRowIsNotFound() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	todo := s.createTodo(alice.ID, "Private", time.Now())

	_, err := s.TodoRepo.GetByUUID(context.Background(), bob.ID, todo.UUID.String())

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TodoRepositoryTestSuite) TestUpdate_UnknownRowIsNotFound() {
	user := s.createUser("alice")

	_, err := s.TodoRepo.Update(context.Background(), domain.Todo{
		UUID:    uuid.New(),
		Title:   "Ghost",
		DueDate: time.Now(),
		UserId:  user.ID,
	})

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TodoRepositoryTestSuite) TestDelete_ForeignRowIsNotFound() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	todo := s.createTodo(alice.ID, "Private", time.Now())

	err := s.TodoRepo.Delete(context.Background(), bob.ID, todo.UUID.String())
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	// still there for the owner
	_, err = s.TodoRepo.GetByUUID(context.Background(), alice.ID, todo.UUID.String())
	assert.NoError(s.T(), err)
}

func (s *TodoRepositoryTestSuite) TestGetAllWithCursor_KeysetWalk() {
	user := s.createUser("alice")
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		s.createTodo(user.ID, "Task", base.Add(time.Duration(i)*time.Minute))
	}

	page1, hasNext, err := s.TodoRepo.GetAllWithCursor(context.Background(), user.ID, 2, "")

	Expect(err).To(BeNil())
	Expect(page1).To(HaveLen(2))
	Expect(hasNext).To(BeTrue())

	seen := map[string]bool{}
	for _, todo := range page1 {
		seen[todo.UUID.String()] = true
	}

	cursor := cursorFor(page1[len(page1)-1])

	page2, _, err := s.TodoRepo.GetAllWithCursor(context.Background(), user.ID, 2, cursor)

	Expect(err).To(BeNil())
	Expect(page2).To(HaveLen(2))

	for _, todo := range page2 {
		Expect(seen[todo.UUID.String()]).To(BeFalse())
	}
}

func (s *TodoRepositoryTestSuite) TestGetAllWithCursor_InvalidCursor() {
	user := s.createUser("alice")

	_, _, err := s.TodoRepo.GetAllWithCursor(context.Background(), user.ID, 10, "garbage")

	assert.Error(s.T(), err)
}

func (s *TodoRepositoryTestSuite) TestDeleteAll_OnlyOwnRows() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	s.createTodo(alice.ID, "A", time.Now())
	s.createTodo(bob.ID, "B", time.Now())

	err := s.TodoRepo.DeleteAll(context.Background(), alice.ID)
	Expect(err).To(BeNil())

	bobTodos, err := s.TodoRepo.GetAll(context.Background(), bob.ID)
	Expect(err).To(BeNil())
	Expect(bobTodos).To(HaveLen(1))
}
