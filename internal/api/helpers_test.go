package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
	"workout-tracker/internal/service"
)

const testJWTSecret = "unit-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Service mocks (function-field style) ---

type mockAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	profileFn  func(ctx context.Context, userID int64) (*domain.User, error)
}

var _ service.AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	return m.registerFn(ctx, username, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return m.profileFn(ctx, userID)
}

type mockExerciseService struct {
	listFn         func(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error)
	getFn          func(ctx context.Context, id int64) (*domain.Exercise, error)
	categoriesFn   func(ctx context.Context) ([]string, error)
	muscleGroupsFn func(ctx context.Context) ([]string, error)
}

var _ service.ExerciseService = (*mockExerciseService)(nil)

func (m *mockExerciseService) ListExercises(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error) {
	return m.listFn(ctx, category, muscleGroup)
}

func (m *mockExerciseService) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	return m.getFn(ctx, id)
}

func (m *mockExerciseService) ListCategories(ctx context.Context) ([]string, error) {
	return m.categoriesFn(ctx)
}

func (m *mockExerciseService) ListMuscleGroups(ctx context.Context) ([]string, error) {
	return m.muscleGroupsFn(ctx)
}

type mockPlanService struct {
	createFn func(ctx context.Context, userID int64, name, description string, items []service.PlanExerciseItem) (*domain.WorkoutPlan, error)
	updateFn func(ctx context.Context, planID, userID int64, name, description string, items []service.PlanExerciseItem) (*domain.WorkoutPlan, error)
	getFn    func(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	deleteFn func(ctx context.Context, planID, userID int64) error
}

var _ service.PlanService = (*mockPlanService)(nil)

func (m *mockPlanService) CreatePlan(ctx context.Context, userID int64, name, description string, items []service.PlanExerciseItem) (*domain.WorkoutPlan, error) {
	return m.createFn(ctx, userID, name, description, items)
}

func (m *mockPlanService) UpdatePlan(ctx context.Context, planID, userID int64, name, description string, items []service.PlanExerciseItem) (*domain.WorkoutPlan, error) {
	return m.updateFn(ctx, planID, userID, name, description, items)
}

func (m *mockPlanService) GetPlan(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error) {
	return m.getFn(ctx, planID, userID)
}

func (m *mockPlanService) GetPlans(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	return m.listFn(ctx, userID)
}

func (m *mockPlanService) DeletePlan(ctx context.Context, planID, userID int64) error {
	return m.deleteFn(ctx, planID, userID)
}

type mockWorkoutService struct {
	createFn func(ctx context.Context, userID int64, input service.CreateWorkoutInput) (*domain.Workout, error)
	getFn    func(ctx context.Context, workoutID, userID int64) (*domain.Workout, error)
	listFn   func(ctx context.Context, userID int64, filter repository.WorkoutFilter) ([]domain.Workout, error)
	updateFn func(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate) (*domain.Workout, error)
	deleteFn func(ctx context.Context, workoutID, userID int64) error
	addLogFn func(ctx context.Context, workoutID, userID int64, input service.LogInput) (*domain.WorkoutLog, error)
}

var _ service.WorkoutService = (*mockWorkoutService)(nil)

func (m *mockWorkoutService) CreateWorkout(ctx context.Context, userID int64, input service.CreateWorkoutInput) (*domain.Workout, error) {
	return m.createFn(ctx, userID, input)
}

func (m *mockWorkoutService) GetWorkout(ctx context.Context, workoutID, userID int64) (*domain.Workout, error) {
	return m.getFn(ctx, workoutID, userID)
}

func (m *mockWorkoutService) GetWorkouts(ctx context.Context, userID int64, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockWorkoutService) UpdateWorkout(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate) (*domain.Workout, error) {
	return m.updateFn(ctx, workoutID, userID, update)
}

func (m *mockWorkoutService) DeleteWorkout(ctx context.Context, workoutID, userID int64) error {
	return m.deleteFn(ctx, workoutID, userID)
}

func (m *mockWorkoutService) AddLog(ctx context.Context, workoutID, userID int64, input service.LogInput) (*domain.WorkoutLog, error) {
	return m.addLogFn(ctx, workoutID, userID, input)
}

type mockProgressService struct {
	getFn func(ctx context.Context, userID int64, windowDays int) (*domain.ProgressReport, error)
}

var _ service.ProgressService = (*mockProgressService)(nil)

func (m *mockProgressService) GetProgress(ctx context.Context, userID int64, windowDays int) (*domain.ProgressReport, error) {
	return m.getFn(ctx, userID, windowDays)
}

// testServices bundles the mocks behind one router.
type testServices struct {
	auth     *mockAuthService
	exercise *mockExerciseService
	plan     *mockPlanService
	workout  *mockWorkoutService
	progress *mockProgressService
}

func newTestRouter(svcs testServices) *gin.Engine {
	if svcs.auth == nil {
		svcs.auth = &mockAuthService{}
	}
	if svcs.exercise == nil {
		svcs.exercise = &mockExerciseService{}
	}
	if svcs.plan == nil {
		svcs.plan = &mockPlanService{}
	}
	if svcs.workout == nil {
		svcs.workout = &mockWorkoutService{}
	}
	if svcs.progress == nil {
		svcs.progress = &mockProgressService{}
	}

	router := gin.New()
	SetupRoutes(router, testJWTSecret, svcs.auth, svcs.exercise, svcs.plan, svcs.workout, svcs.progress)
	return router
}

// signToken issues a token the router's auth middleware accepts.
func signToken(t *testing.T, userID int64, expiresIn time.Duration) string {
	t.Helper()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}
