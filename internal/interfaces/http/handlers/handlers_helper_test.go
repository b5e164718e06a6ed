package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"ouibooking.backend/internal/domain/entities"
	"ouibooking.backend/internal/infrastructure/repositories"
	"ouibooking.backend/internal/infrastructure/storage"
	"ouibooking.backend/internal/interfaces/http/middleware"
	"ouibooking.backend/internal/usecases"
	"ouibooking.backend/pkg/crypto"
	"ouibooking.backend/pkg/jwt"
)

// testEnv wires the full handler stack over in-memory stores
type testEnv struct {
	router     *gin.Engine
	jwtService *jwt.JWTService
	userRepo   *repositories.UserRepository
	botRepo    *repositories.BotRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	userRepo, err := repositories.NewUserRepository(ctx, storage.NewMemoryStore())
	require.NoError(t, err)
	botRepo, err := repositories.NewBotRepository(ctx, storage.NewMemoryStore())
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, nil, time.Hour)
	userUsecase := usecases.NewUserUsecase(userRepo, botRepo)
	botUsecase := usecases.NewBotUsecase(botRepo)
	wizardUsecase := usecases.NewWizardUsecase(botUsecase)
	dashboardUsecase := usecases.NewDashboardUsecase(userRepo, botRepo)

	authHandler := NewAuthHandler(authUsecase)
	userHandler := NewUserHandler(userUsecase)
	botHandler := NewBotHandler(botUsecase)
	wizardHandler := NewWizardHandler(wizardUsecase)
	taxonomyHandler := NewTaxonomyHandler()
	dashboardHandler := NewDashboardHandler(dashboardUsecase)

	authMW := middleware.AuthMiddleware(jwtService, nil)

	r := gin.New()
	r.Use(middleware.LanguageMiddleware())
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authMW, authHandler.GetMe)

	bots := v1.Group("/bots", authMW)
	bots.GET("", botHandler.ListBots)
	bots.POST("", botHandler.CreateBot)
	bots.GET("/:id", botHandler.GetBot)
	bots.PATCH("/:id", botHandler.UpdateBot)
	bots.DELETE("/:id", botHandler.DeleteBot)

	wizard := v1.Group("/wizard", authMW)
	wizard.GET("/steps", wizardHandler.ListSteps)
	wizard.GET("/industries", wizardHandler.ListIndustries)
	wizard.POST("/drafts", wizardHandler.StartDraft)
	wizard.GET("/drafts/:id", wizardHandler.GetDraft)
	wizard.PATCH("/drafts/:id", wizardHandler.UpdateDraft)
	wizard.DELETE("/drafts/:id", wizardHandler.CancelDraft)
	wizard.POST("/drafts/:id/advance", wizardHandler.Advance)
	wizard.POST("/drafts/:id/retreat", wizardHandler.Retreat)
	wizard.POST("/drafts/:id/submit", wizardHandler.Submit)

	taxonomyGroup := v1.Group("/taxonomy")
	taxonomyGroup.GET("/categories", taxonomyHandler.ListCategories)
	taxonomyGroup.GET("/industries", taxonomyHandler.ListIndustries)
	taxonomyGroup.GET("/languages", taxonomyHandler.ListLanguages)

	dashboard := v1.Group("/dashboard", authMW)
	dashboard.GET("/stats", dashboardHandler.GetUserStats)
	dashboard.GET("/platform", middleware.RequireAdmin(), dashboardHandler.GetPlatformStats)

	users := v1.Group("/users", authMW, middleware.RequireAdmin())
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.AddUser)
	users.GET("/:id", userHandler.GetUser)
	users.PATCH("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	return &testEnv{
		router:     r,
		jwtService: jwtService,
		userRepo:   userRepo,
		botRepo:    botRepo,
	}
}

// createUser inserts a user directly and returns it with a valid access token
func (e *testEnv) createUser(t *testing.T, email string, role entities.UserRole) (*entities.User, string) {
	t.Helper()

	hash, err := crypto.HashPassword("Password123!")
	require.NoError(t, err)
	user := &entities.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, e.userRepo.Create(context.Background(), user))

	pair, err := e.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	return user, pair.AccessToken
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func fieldID(t *testing.T, body map[string]interface{}, key string) uuid.UUID {
	t.Helper()
	obj, ok := body[key].(map[string]interface{})
	require.True(t, ok, "missing %q object in response", key)
	id, err := uuid.Parse(obj["id"].(string))
	require.NoError(t, err)
	return id
}
