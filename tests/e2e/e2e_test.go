package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karshdev/LeadBlock-BE/internal/middleware"
	"github.com/karshdev/LeadBlock-BE/internal/modules/auth"
	"github.com/karshdev/LeadBlock-BE/internal/modules/lead"
	jwtsvc "github.com/karshdev/LeadBlock-BE/internal/pkg/jwt"
	"github.com/karshdev/LeadBlock-BE/internal/pkg/response"
	"github.com/karshdev/LeadBlock-BE/internal/storage"
)

type testSuite struct {
	router *gin.Engine
	token  string
}

type testResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Token      string           `json:"token"`
	Data       json.RawMessage  `json:"data"`
	User       *auth.UserPublic `json:"user"`
	Pagination *lead.Pagination `json:"pagination"`
}

func setupTestSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	leadStore := storage.NewStore(filepath.Join(dir, "leads.json"))
	userStore := storage.NewStore(filepath.Join(dir, "users.json"))

	j := jwtsvc.New("e2e-test-secret", time.Hour)

	userRepo := auth.NewRepository(userStore)
	require.NoError(t, userRepo.EnsureDefaultAdmin(context.Background()))

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	leadHandler := lead.NewHandler(lead.NewService(lead.NewRepository(leadStore)))

	limiter := middleware.NewLoginLimiter(600, 100)
	t.Cleanup(limiter.Stop)

	r := gin.New()
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "Server is running")
	})

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api, middleware.Auth(j), limiter.Middleware())

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			lead.RegisterRoutes(protected, leadHandler)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	s := &testSuite{router: r}
	s.token = s.login(t, "admin", "admin123")
	return s
}

func (s *testSuite) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func (s *testSuite) login(t *testing.T, username, password string) string {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testSuite) createLead(t *testing.T, name, company, email, status string) lead.Lead {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/leads", s.token, gin.H{
		"name":    name,
		"company": company,
		"email":   email,
		"status":  status,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var l lead.Lead
	require.NoError(t, json.Unmarshal(resp.Data, &l))
	return l
}

func TestHealth(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Server is running", resp.Message)
}

func TestLogin(t *testing.T) {
	s := setupTestSuite(t)

	t.Run("success returns token and public user", func(t *testing.T) {
		w, resp := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "admin123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, "admin-001", resp.User.ID)
		assert.Equal(t, "admin", resp.User.Username)
		assert.Equal(t, "admin", resp.User.Role)

		// Token decodes back to the same identity.
		claims, err := jwtsvc.New("e2e-test-secret", time.Hour).ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin-001", claims.UserID)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		w, resp := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid username or password", resp.Message)
	})

	t.Run("unknown username", func(t *testing.T) {
		w, _ := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "ghost",
			"password": "admin123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields aggregate into one message", func(t *testing.T) {
		w, resp := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username is required, Password is required", resp.Message)
	})

	t.Run("stored hash replayed as password", func(t *testing.T) {
		w, _ := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "$2a$10$abcdefghijklmnopqrstuvabcdefghijklmnopqrstuvabcdefghi",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMe(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.do(t, http.MethodGet, "/api/auth/me", s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me auth.UserPublic
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, auth.UserPublic{ID: "admin-001", Username: "admin", Role: "admin"}, me)
}

func TestLeadRoutesRequireAuth(t *testing.T) {
	s := setupTestSuite(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/leads"},
		{http.MethodGet, "/api/leads/some-id"},
		{http.MethodPost, "/api/leads"},
		{http.MethodPut, "/api/leads/some-id"},
		{http.MethodDelete, "/api/leads/some-id"},
	} {
		w, resp := s.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Authentication required", resp.Message)
	}
}

func TestLeadCRUDRoundtrip(t *testing.T) {
	s := setupTestSuite(t)

	created := s.createLead(t, "Ann", "Acme", "ann@acme.com", "active")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, lead.StatusActive, created.Status)

	// Flip the status; everything else must survive the merge.
	w, resp := s.do(t, http.MethodPut, "/api/leads/"+created.ID, s.token, gin.H{"status": "inactive"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated lead.Lead
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, lead.StatusInactive, updated.Status)

	w, resp = s.do(t, http.MethodGet, "/api/leads/"+created.ID, s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got lead.Lead
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, lead.StatusInactive, got.Status)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "ann@acme.com", got.Email)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	w, resp = s.do(t, http.MethodDelete, "/api/leads/"+created.ID, s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lead deleted successfully", resp.Message)

	w, _ = s.do(t, http.MethodGet, "/api/leads/"+created.ID, s.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeadValidation(t *testing.T) {
	s := setupTestSuite(t)

	t.Run("create aggregates all violations", func(t *testing.T) {
		w, resp := s.do(t, http.MethodPost, "/api/leads", s.token, gin.H{
			"email":  "not-an-email",
			"status": "archived",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `Name is required, Company is required, Invalid email address, Status must be either "active" or "inactive"`, resp.Message)
	})

	t.Run("update with no recognized fields", func(t *testing.T) {
		created := s.createLead(t, "Bob", "Globex", "bob@globex.io", "active")

		w, resp := s.do(t, http.MethodPut, "/api/leads/"+created.ID, s.token, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "At least one field must be provided", resp.Message)
	})

	t.Run("update with empty name", func(t *testing.T) {
		created := s.createLead(t, "Carla", "Initech", "carla@initech.dev", "active")

		w, resp := s.do(t, http.MethodPut, "/api/leads/"+created.ID, s.token, gin.H{"name": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name cannot be empty", resp.Message)
	})
}

func TestLeadPaginationScenario(t *testing.T) {
	s := setupTestSuite(t)

	s.createLead(t, "Lead One", "Alpha", "one@alpha.com", "active")
	second := s.createLead(t, "Lead Two", "Beta", "two@beta.com", "active")
	s.createLead(t, "Lead Three", "Gamma", "three@gamma.com", "inactive")

	w, resp := s.do(t, http.MethodGet, "/api/leads?page=2&limit=1", s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []lead.Lead
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, lead.Pagination{Page: 2, Limit: 1, Total: 3, TotalPages: 3}, *resp.Pagination)
}

func TestLeadListFilters(t *testing.T) {
	s := setupTestSuite(t)

	s.createLead(t, "Ann Chambers", "Acme", "ann@acme.com", "active")
	s.createLead(t, "Bob Roberts", "Globex", "bob@globex.io", "inactive")

	t.Run("status filter", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/api/leads?status=inactive", s.token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []lead.Lead
		require.NoError(t, json.Unmarshal(resp.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Bob Roberts", items[0].Name)
	})

	t.Run("search over company, case-insensitive", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/api/leads?search=ACME", s.token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []lead.Lead
		require.NoError(t, json.Unmarshal(resp.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Ann Chambers", items[0].Name)
	})

	t.Run("page beyond range is an empty success", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/api/leads?page=99", s.token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)

		var items []lead.Lead
		require.NoError(t, json.Unmarshal(resp.Data, &items))
		assert.Empty(t, items)
	})

	t.Run("bad page and limit fall back to defaults", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/api/leads?page=zero&limit=-5", s.token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, resp.Pagination)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 10, resp.Pagination.Limit)
	})
}

func TestLeadNotFoundMessages(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.do(t, http.MethodDelete, "/api/leads/unknown-id", s.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Lead with id unknown-id not found", resp.Message)

	w, resp = s.do(t, http.MethodPut, "/api/leads/unknown-id", s.token, gin.H{"status": "inactive"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Lead with id unknown-id not found", resp.Message)
}

func TestUnmatchedRoute(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.do(t, http.MethodGet, "/api/unknown", s.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Route not found", resp.Message)
}

func TestNonAdminTokenAcceptedOnLeadRoutes(t *testing.T) {
	s := setupTestSuite(t)

	// Lead routes check authentication only; any valid identity is accepted.
	j := jwtsvc.New("e2e-test-secret", time.Hour)
	token, err := j.GenerateToken("user-042", "viewer", "viewer")
	require.NoError(t, err)

	w, _ := s.do(t, http.MethodGet, "/api/leads", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPluralCreatesHaveUniqueIDs(t *testing.T) {
	s := setupTestSuite(t)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		l := s.createLead(t, fmt.Sprintf("Lead %d", i), "Acme", fmt.Sprintf("l%d@acme.com", i), "active")
		assert.False(t, seen[l.ID])
		seen[l.ID] = true
	}
}
