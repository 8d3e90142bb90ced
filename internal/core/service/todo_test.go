package service_test

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
	"todotrack/internal/core/service"
	"todotrack/pkg/test"
	"todotrack/pkg/test/factory"
)

type TodoServiceTestSuite struct {
	suite.Suite
	Service      *service.TodoService
	UserRepo     port.UserRepository
	TodoRepo     port.TodoRepository
	ActivityRepo port.ActivityRepository
	Recorder     port.ActivityRecorder
}

func (s *TodoServiceTestSuite) SetupTest() {
	db := test.InitTestDatabase()

	s.TodoRepo = repository.NewTodoRepository(db, nil)
	s.UserRepo = repository.NewUserRepository(db)
	s.ActivityRepo = repository.NewActivityRepository(db)

	s.Recorder = service.NewActivityService(s.ActivityRepo)
	s.Service = service.NewTodoService(s.TodoRepo, s.Recorder, nil)
}

func TestTodoServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TodoServiceTestSuite))
}

func (s *TodoServiceTestSuite) createUser(username, email string) domain.User {
	user, err := s.UserRepo.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"UUID":     uuid.New(),
		"Username": username,
		"Email":    email,
	}))

	s.Require().NoError(err)

	return user
}

func (s *TodoServiceTestSuite) createTodo(userId int, title string) domain.Todo {
	todo, err := s.Service.Create(context.Background(), domain.Todo{
		Title:   title,
		DueDate: time.Now().Add(24 * time.Hour),
		UserId:  userId,
	})

	s.Require().NoError(err)

	return todo
}

func (s *TodoServiceTestSuite) TestList_Empty() {
	user := s.createUser("alice", "alice@example.com")

	resp, err := s.Service.List(context.Background(), user.ID, 10, "")

	Expect(err).To(BeNil())
	Expect(resp.Size).To(Equal(0))
	Expect(resp.Data.MarshalJSON()).To(Equal([]byte("[]")))
}

func (s *TodoServiceTestSuite) TestCreate_Defaults() {
	user := s.createUser("alice", "alice@example.com")

	todo, err := s.Service.Create(context.Background(), domain.Todo{
		Title:   "  Buy groceries  ",
		DueDate: time.Now().Add(time.Hour),
		UserId:  user.ID,
	})

	Expect(err).To(BeNil())
	Expect(todo.ID).NotTo(BeZero())
	Expect(todo.UUID).NotTo(Equal(uuid.Nil))
	Expect(todo.Title).To(Equal("Buy groceries"))
	Expect(todo.Priority).To(Equal(domain.PriorityMedium))
	Expect(todo.Completed).To(BeFalse())
}

func (s *TodoServiceTestSuite) TestCreate_RecordsActivity() {
	user := s.createUser("alice", "alice@example.com")

	s.createTodo(user.ID, "Buy groceries")

	entries, err := s.Recorder.Recent(context.Background(), user.ID, 10)

	Expect(err).To(BeNil())
	Expect(entries).To(HaveLen(1))
	Expect(entries[0].Action).To(Equal(domain.ActionCreate))
	Expect(entries[0].TodoTitle).To(Equal("Buy groceries"))
}

func (s *TodoServiceTestSuite) TestCreate_BlankTitle() {
	user := s.createUser("alice", "alice@example.com")

	_, err := s.Service.Create(context.Background(), domain.Todo{
		Title:   "   ",
		DueDate: time.Now().Add(time.Hour),
		UserId:  user.ID,
	})

	var validationErr *domain.ValidationError
	assert.ErrorAs(s.T(), err, &validationErr)
	assert.Equal(s.T(), "title", validationErr.Field)
}

func (s *TodoServiceTestSuite) TestCreate_ReminderWithoutDate() {
	user := s.createUser("alice", "alice@example.com")

	_, err := s.Service.Create(context.Background(), domain.Todo{
		Title:           "Water plants",
		DueDate:         time.Now().Add(time.Hour),
		ReminderEnabled: true,
		UserId:          user.ID,
	})

	var validationErr *domain.ValidationError
	assert.ErrorAs(s.T(), err, &validationErr)
	assert.Equal(s.T(), "reminder_at", validationErr.Field)
}

func (s *TodoServiceTestSuite) TestUpdate_ForeignTodoIsNotFound() {
	owner := s.createUser("alice", "alice@example.com")
	other := s.createUser("bob", "bob@example.com")

	todo := s.createTodo(owner.ID, "Private task")

	_, err := s.Service.Update(context.Background(), other.ID, todo.UUID.String(), domain.Todo{
		Title:   "Hijacked",
		DueDate: todo.DueDate,
	})

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TodoServiceTestSuite) TestUpdate_UnknownUUIDIsNotFound() {
	user := s.createUser("alice", "alice@example.com")

	_, err := s.Service.Update(context.Background(), user.ID, uuid.New().String(), domain.Todo{
		Title:   "Ghost",
		DueDate: time.Now().Add(time.Hour),
	})

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TodoServiceTestSuite) TestToggleComplete_RecordsSingleCompleteEntry() {
	user := s.createUser("alice", "alice@example.com")
	todo := s.createTodo(user.ID, "Finish report")

	updated, err := s.Service.ToggleComplete(context.Background(), user.ID, todo.UUID.String(), true)

	Expect(err).To(BeNil())
	Expect(updated.Completed).To(BeTrue())

	entries, err := s.Recorder.Recent(context.Background(), user.ID, 10)

	Expect(err).To(BeNil())

	var completes int
	for _, entry := range entries {
		if entry.Action == domain.ActionComplete {
			completes++
		}
	}

	Expect(completes).To(Equal(1))
}

func (s *TodoServiceTestSuite) TestToggleComplete_SameStateIsIdempotent() {
	user := s.createUser("alice", "alice@example.com")
	todo := s.createTodo(user.ID, "Finish report")

	before, err := s.Recorder.Recent(context.Background(), user.ID, 10)
	Expect(err).To(BeNil())

	unchanged, err := s.Service.ToggleComplete(context.Background(), user.ID, todo.UUID.String(), false)

	Expect(err).To(BeNil())
	Expect(unchanged.Completed).To(BeFalse())
	Expect(unchanged.UpdatedAt).To(Equal(todo.UpdatedAt))

	after, err := s.Recorder.Recent(context.Background(), user.ID, 10)

	Expect(err).To(BeNil())
	Expect(after).To(HaveLen(len(before)))
}

func (s *TodoServiceTestSuite) TestToggleComplete_OverdueBecomesCompleted() {
	user := s.createUser("alice", "alice@example.com")

	todo, err := s.Service.Create(context.Background(), domain.Todo{
		Title:   "Late task",
		DueDate: time.Now().Add(-2 * time.Hour),
		UserId:  user.ID,
	})

	Expect(err).To(BeNil())
	Expect(todo.IsOverdue(time.Now())).To(BeTrue())

	completed, err := s.Service.ToggleComplete(context.Background(), user.ID, todo.UUID.String(), true)

	Expect(err).To(BeNil())
	Expect(completed.IsOverdue(time.Now())).To(BeFalse())
}

func (s *TodoServiceTestSuite) TestDelete_RecordsTitleSnapshot() {
	user := s.createUser("alice", "alice@example.com")
	todo := s.createTodo(user.ID, "Disposable")

	err := s.Service.Delete(context.Background(), user.ID, todo.UUID.String())

	Expect(err).To(BeNil())

	_, err = s.TodoRepo.GetByUUID(context.Background(), user.ID, todo.UUID.String())
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	entries, err := s.Recorder.Recent(context.Background(), user.ID, 10)

	Expect(err).To(BeNil())
	Expect(entries[0].Action).To(Equal(domain.ActionDelete))
	Expect(entries[0].TodoTitle).To(Equal("Disposable"))
}

func (s *TodoServiceTestSuite) TestDeleteAll_ScopedToOwner() {
	alice := s.createUser("alice", "alice@example.com")
	bob := s.createUser("bob", "bob@example.com")

	s.createTodo(alice.ID, "Alice 1")
	s.createTodo(alice.ID, "Alice 2")
	s.createTodo(bob.ID, "Bob 1")

	err := s.Service.DeleteAll(context.Background(), alice.ID)

	Expect(err).To(BeNil())

	aliceTodos, err := s.TodoRepo.GetAll(context.Background(), alice.ID)
	Expect(err).To(BeNil())
	Expect(aliceTodos).To(BeEmpty())

	bobTodos, err := s.TodoRepo.GetAll(context.Background(), bob.ID)
	Expect(err).To(BeNil())
	Expect(bobTodos).To(HaveLen(1))
}

func (s *TodoServiceTestSuite) TestList_AnnotatesAndPaginates() {
	user := s.createUser("alice", "alice@example.com")

	for i := 0; i < 3; i++ {
		s.createTodo(user.ID, "Task")
	}

	page, err := s.Service.List(context.Background(), user.ID, 2, "")

	Expect(err).To(BeNil())
	Expect(page.Size).To(Equal(2))
	Expect(page.Pagination.HasNext).To(BeTrue())
	Expect(page.Pagination.NextCursor).NotTo(BeEmpty())

	rest, err := s.Service.List(context.Background(), user.ID, 2, page.Pagination.NextCursor)

	Expect(err).To(BeNil())
	Expect(rest.Size).To(Equal(1))
	Expect(rest.Pagination.HasNext).To(BeFalse())
}
