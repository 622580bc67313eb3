package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/handler"
	"github.com/trackademic/trackademic-api/internal/service"
)

type stubClassService struct {
	classes   []dto.ClassResponse
	created   dto.ClassResponse
	err       error
	lastOwner string
	calls     int
}

func (s *stubClassService) List(_ context.Context, ownerID string) ([]dto.ClassResponse, error) {
	s.calls++
	s.lastOwner = ownerID
	if s.err != nil {
		return nil, s.err
	}
	return s.classes, nil
}

func (s *stubClassService) Get(_ context.Context, ownerID string, id uint) (dto.ClassResponse, error) {
	s.calls++
	s.lastOwner = ownerID
	if s.err != nil {
		return dto.ClassResponse{}, s.err
	}
	for _, class := range s.classes {
		if class.ID == id {
			return class, nil
		}
	}
	return dto.ClassResponse{}, service.ErrClassNotFound
}

func (s *stubClassService) Create(_ context.Context, ownerID string, _ dto.ClassCreateRequest) (dto.ClassResponse, error) {
	s.calls++
	s.lastOwner = ownerID
	if s.err != nil {
		return dto.ClassResponse{}, s.err
	}
	return s.created, nil
}

func (s *stubClassService) Update(_ context.Context, ownerID string, _ uint, _ dto.ClassUpdateRequest) (dto.ClassResponse, error) {
	s.calls++
	s.lastOwner = ownerID
	if s.err != nil {
		return dto.ClassResponse{}, s.err
	}
	return s.created, nil
}

func (s *stubClassService) Archive(_ context.Context, ownerID string, _ uint, _ dto.ClassArchiveRequest) (dto.ClassResponse, error) {
	s.calls++
	s.lastOwner = ownerID
	if s.err != nil {
		return dto.ClassResponse{}, s.err
	}
	return s.created, nil
}

func (s *stubClassService) Delete(_ context.Context, ownerID string, _ uint) error {
	s.calls++
	s.lastOwner = ownerID
	return s.err
}

var _ service.ClassService = (*stubClassService)(nil)

func newClassApp(svc service.ClassService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/classes", func(c *fiber.Ctx) error {
		c.Locals("owner_id", "owner-42")
		return c.Next()
	})
	handler.NewClassHandler(svc, zerolog.Nop()).Register(group)
	return app
}

func TestClassHandlerList(t *testing.T) {
	svc := &stubClassService{
		classes: []dto.ClassResponse{
			{ID: 1, CourseCode: "CS101", CourseName: "Intro to Computer Science"},
			{ID: 2, CourseCode: "MATH201", CourseName: "Linear Algebra"},
		},
	}

	app := newClassApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/classes", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    []dto.ClassResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Len(t, payload.Data, 2)
	require.Equal(t, "owner-42", svc.lastOwner)
}

func TestClassHandlerGetNotFound(t *testing.T) {
	svc := &stubClassService{}

	app := newClassApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/classes/99", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.False(t, payload.Success)
	require.Equal(t, "class not found", payload.Message)
}

func TestClassHandlerCreate(t *testing.T) {
	svc := &stubClassService{
		created: dto.ClassResponse{ID: 7, CourseCode: "PHYS110", CourseName: "Mechanics"},
	}

	app := newClassApp(svc)

	body, err := json.Marshal(map[string]any{
		"course_code": "PHYS110",
		"course_name": "Mechanics",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var payload struct {
		Success bool              `json:"success"`
		Data    dto.ClassResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Equal(t, uint(7), payload.Data.ID)
}

func TestClassHandlerInvalidIDParam(t *testing.T) {
	svc := &stubClassService{}

	app := newClassApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/classes/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	require.Equal(t, 0, svc.calls)
}
