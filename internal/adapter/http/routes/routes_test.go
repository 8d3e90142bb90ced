package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todotrack/internal/adapter/database/repository"
	"todotrack/internal/adapter/http/handler"
	"todotrack/internal/adapter/http/routes"
	"todotrack/internal/core/service"
	"todotrack/pkg/auth"
	"todotrack/pkg/config"
	"todotrack/pkg/test"
)

type RoutesTestSuite struct {
	suite.Suite
	Router http.Handler
	Token  string
	UserID int
}

func (s *RoutesTestSuite) SetupTest() {
	s.T().Setenv("JWT_SECRET", "test-secret")

	db := test.InitTestDatabase()

	todoRepo := repository.NewTodoRepository(db, nil)
	activityRepo := repository.NewActivityRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	activitySvc := service.NewActivityService(activityRepo)
	todoSvc := service.NewTodoService(todoRepo, activitySvc, nil)
	reportSvc := service.NewReportService(todoRepo, categoryRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	authSvc := service.NewAuthService(userRepo)

	logger, err := config.NewAppLogger("todotrack-test", "")
	s.Require().NoError(err)

	s.Router = routes.SetupRouterForTests(routes.HandlersConfig{
		AuthHandler:     handler.NewAuthHandler(authSvc),
		TodoHandler:     handler.NewTodoHandler(todoSvc, logger),
		ActivityHandler: handler.NewActivityHandler(activitySvc),
		ReportHandler:   handler.NewReportHandler(reportSvc),
		CategoryHandler: handler.NewCategoryHandler(categorySvc),
	})

	s.signUpAndLogin()
}

func TestRoutesTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(RoutesTestSuite))
}

func (s *RoutesTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func (s *RoutesTestSuite) signUpAndLogin() {
	w := s.do("POST", "/signup", "", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do("POST", "/auth", "", map[string]any{
		"username": "alice",
		"password": "secret123",
	})

	s.Require().Equal(http.StatusOK, w.Code)

	var authResp struct {
		Token string `json:"token"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &authResp))
	s.Require().NotEmpty(authResp.Token)

	s.Token = authResp.Token

	claims, err := auth.VerifyJwtToken(authResp.Token)
	s.Require().NoError(err)

	s.UserID = int(claims["user_id"].(float64))
}

func (s *RoutesTestSuite) createTodo(title string) map[string]any {
	w := s.do("POST", "/todos", s.Token, map[string]any{
		"title":    title,
		"due_date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	s.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		Data map[string]any `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	return resp.Data
}

func (s *RoutesTestSuite) TestProtectedRoutesRejectMissingToken() {
	w := s.do("GET", "/todos", "", nil)
	Expect(w.Code).To(Equal(http.StatusUnauthorized))
}

func (s *RoutesTestSuite) TestAuthRejectsBadCredentials() {
	w := s.do("POST", "/auth", "", map[string]any{
		"username": "alice",
		"password": "wrong-password",
	})

	Expect(w.Code).To(Equal(http.StatusUnauthorized))
}

func (s *RoutesTestSuite) TestCreateAndListTodos() {
	s.createTodo("Write tests")

	w := s.do("GET", "/todos", s.Token, nil)

	Expect(w.Code).To(Equal(http.StatusOK))

	var resp struct {
		Size int `json:"size"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	Expect(resp.Size).To(Equal(1))
}

func (s *RoutesTestSuite) TestCreateTodo_MissingDueDate() {
	w := s.do("POST", "/todos", s.Token, map[string]any{
		"title": "No due date",
	})

	Expect(w.Code).To(Equal(http.StatusBadRequest))
}

func (s *RoutesTestSuite) TestToggleComplete() {
	todo := s.createTodo("Toggle me")
	uid := todo["uuid"].(string)

	w := s.do("PATCH", fmt.Sprintf("/todos/%s/toggle", uid), s.Token, map[string]any{
		"completed": true,
	})

	Expect(w.Code).To(Equal(http.StatusOK))

	var resp struct {
		Data struct {
			Completed bool `json:"completed"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	Expect(resp.Data.Completed).To(BeTrue())
}

func (s *RoutesTestSuite) TestToggleComplete_UnknownTodo() {
	w := s.do("PATCH", "/todos/7c3cbd51-0000-0000-0000-000000000000/toggle", s.Token, map[string]any{
		"completed": true,
	})

	Expect(w.Code).To(Equal(http.StatusNotFound))
}

func (s *RoutesTestSuite) TestDeleteAllTodos() {
	s.createTodo("One")
	s.createTodo("Two")

	w := s.do("DELETE", "/todos", s.Token, nil)
	Expect(w.Code).To(Equal(http.StatusOK))

	w = s.do("GET", "/todos", s.Token, nil)

	var resp struct {
		Size int `json:"size"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	Expect(resp.Size).To(Equal(0))
}

func (s *RoutesTestSuite) TestActivityFeedReflectsMutations() {
	todo := s.createTodo("Tracked")
	uid := todo["uuid"].(string)

	s.do("PATCH", fmt.Sprintf("/todos/%s/toggle", uid), s.Token, map[string]any{"completed": true})

	w := s.do("GET", "/activity", s.Token, nil)
	Expect(w.Code).To(Equal(http.StatusOK))

	var resp struct {
		Data []struct {
			Action string `json:"action"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	Expect(len(resp.Data)).To(Equal(2))
	Expect(resp.Data[0].Action).To(Equal("COMPLETE"))
}

func (s *RoutesTestSuite) TestSubmitActivityEntry() {
	w := s.do("POST", "/activity", s.Token, map[string]any{
		"action":      "UPDATE",
		"description": "Imported 3 todos",
	})

	Expect(w.Code).To(Equal(http.StatusCreated))

	w = s.do("GET", "/activity", s.Token, nil)

	var resp struct {
		Data []struct {
			Description string `json:"description"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	Expect(resp.Data).To(HaveLen(1))
	Expect(resp.Data[0].Description).To(Equal("Imported 3 todos"))
}

func (s *RoutesTestSuite) TestSubmitActivityEntry_UnknownAction() {
	w := s.do("POST", "/activity", s.Token, map[string]any{
		"action": "ARCHIVE",
	})

	Expect(w.Code).To(Equal(http.StatusBadRequest))
}

func (s *RoutesTestSuite) TestReportEndpoint() {
	todo := s.createTodo("Done soon")
	uid := todo["uuid"].(string)

	s.do("PATCH", fmt.Sprintf("/todos/%s/toggle", uid), s.Token, map[string]any{"completed": true})
	s.createTodo("Still open")

	w := s.do("GET", "/reports", s.Token, nil)
	Expect(w.Code).To(Equal(http.StatusOK))

	var resp struct {
		Data struct {
			Summary struct {
				Total          int `json:"total"`
				Completed      int `json:"completed"`
				CompletionRate int `json:"completionRate"`
			} `json:"summary"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	Expect(resp.Data.Summary.Total).To(Equal(2))
	Expect(resp.Data.Summary.Completed).To(Equal(1))
	Expect(resp.Data.Summary.CompletionRate).To(Equal(50))
}

func (s *RoutesTestSuite) TestCategories() {
	w := s.do("POST", "/categories", s.Token, map[string]any{
		"name":  "Work",
		"color": "#ef4444",
	})

	Expect(w.Code).To(Equal(http.StatusCreated))

	w = s.do("GET", "/categories", s.Token, nil)
	Expect(w.Code).To(Equal(http.StatusOK))

	var resp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	Expect(resp.Data).To(HaveLen(1))
	Expect(resp.Data[0].Name).To(Equal("Work"))
}
