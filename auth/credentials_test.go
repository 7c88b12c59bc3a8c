package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirix/market-sfu/models"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.users[user.Email] = *user
	return nil
}

func newAuthRouter(t *testing.T, users UserStore) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/auth/register", Register(users))
	r.POST("/auth/login", Login(users))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterCreatesUser(t *testing.T) {
	store := newFakeUserStore()
	r := newAuthRouter(t, store)

	w := post(r, "/auth/register", `{"name":"Ivan","email":"ivan@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	created, err := store.FindByEmail("ivan@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", created.Password, "password must be stored hashed")
	assert.NotContains(t, w.Body.String(), created.Password, "hash must not leak in the response")
}

func TestRegisterConflictOnDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	require.NoError(t, store.Create(&models.User{
		ID:    "u-1",
		Name:  "Ivan",
		Email: "ivan@example.com",
	}))
	r := newAuthRouter(t, store)

	w := post(r, "/auth/register", `{"name":"Other","email":"ivan@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "already exists")
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	r := newAuthRouter(t, newFakeUserStore())

	cases := []string{
		`{"name":"I","email":"ivan@example.com","password":"password123"}`,
		`{"name":"Ivan","email":"not-an-email","password":"password123"}`,
		`{"name":"Ivan","email":"ivan@example.com","password":"short"}`,
	}
	for _, payload := range cases {
		assert.Equal(t, http.StatusBadRequest, post(r, "/auth/register", payload).Code)
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := newFakeUserStore()
	require.NoError(t, store.Create(&models.User{
		ID:       "u-1",
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: string(hash),
	}))
	r := newAuthRouter(t, store)

	w := post(r, "/auth/login", `{"email":"ivan@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := newFakeUserStore()
	require.NoError(t, store.Create(&models.User{
		ID:       "u-1",
		Email:    "ivan@example.com",
		Password: string(hash),
	}))
	r := newAuthRouter(t, store)

	w := post(r, "/auth/login", `{"email":"ivan@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(r, "/auth/login", `{"email":"nobody@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
