package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"estate-cms/config"
	"estate-cms/logger"
	"estate-cms/models"
	"estate-cms/services"
	"estate-cms/testutil"
)

type IntegrationTestSuite struct {
	suite.Suite
	cfg    *config.Config
	router *gin.Engine
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	services.PasswordCost = bcrypt.MinCost
}

func (suite *IntegrationTestSuite) SetupTest() {
	suite.cfg = testutil.Config(suite.T())
	router, err := Setup(suite.cfg, testutil.NewDB(suite.T()), logger.Nop())
	suite.Require().NoError(err)
	suite.router = router
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) do(method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) doJSON(method, path string, payload any, token string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(data)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return suite.do(method, path, body, headers)
}

func (suite *IntegrationTestSuite) doMultipart(method, path string, fields map[string][]string, token string, files ...testutil.File) *httptest.ResponseRecorder {
	body, contentType := testutil.MultipartBody(suite.T(), fields, files...)
	return suite.do(method, path, body, map[string]string{
		"Content-Type":  contentType,
		"Authorization": "Bearer " + token,
	})
}

func (suite *IntegrationTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *IntegrationTestSuite) codeType(w *httptest.ResponseRecorder) string {
	var body map[string]any
	suite.decode(w, &body)
	s, _ := body["code_type"].(string)
	return s
}

// adminToken registers the initial admin and logs in.
func (suite *IntegrationTestSuite) adminToken() string {
	w := suite.doJSON(http.MethodPost, "/api/auth/register-admin", map[string]string{"email": "a@x.com", "password": "pw"}, "")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return suite.login("a@x.com", "pw")
}

func (suite *IntegrationTestSuite) login(email, password string) string {
	w := suite.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	suite.decode(w, &res)
	suite.Require().NotEmpty(res.Token)
	return res.Token
}

func projectFields() map[string][]string {
	return map[string][]string{
		"title":            {"Green Acres"},
		"city":             {"Pune"},
		"location":         {"Baner"},
		"type":             {"Villas"},
		"configuration":    {"3 BHK"},
		"shortDescription": {"Villas near the hills"},
		"price":            {"1 Cr"},
		"amenities":        {"Pool, Gym"},
		"featured":         {"on"},
	}
}

func png(field, name string) testutil.File {
	return testutil.File{Field: field, Filename: name, Content: testutil.PNG}
}

func (suite *IntegrationTestSuite) TestRegisterAdminOnlyOnce() {
	payload := map[string]string{"email": "a@x.com", "password": "pw"}

	w := suite.doJSON(http.MethodPost, "/api/auth/register-admin", payload, "")
	suite.Equal(http.StatusCreated, w.Code)
	suite.NotContains(w.Body.String(), "password")

	w = suite.doJSON(http.MethodPost, "/api/auth/register-admin", payload, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(models.CodeAdminExists, suite.codeType(w))
}

func (suite *IntegrationTestSuite) TestRegisterAdminValidatesBody() {
	w := suite.doJSON(http.MethodPost, "/api/auth/register-admin", map[string]string{"email": "not-an-email"}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(models.CodeValidation, suite.codeType(w))
}

func (suite *IntegrationTestSuite) TestLoginSetsCookieAndTokenWorks() {
	suite.adminToken()

	w := suite.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"email": "a@x.com", "password": "pw"}, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	suite.Require().NotNil(cookie)
	suite.True(cookie.HttpOnly)
	suite.Equal("/", cookie.Path)

	var res map[string]string
	suite.decode(w, &res)
	suite.Equal(cookie.Value, res["token"])

	w = suite.doJSON(http.MethodGet, "/api/settings", nil, res["token"])
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/auth/me", nil, res["token"])
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"email":"a@x.com"`)
}

func (suite *IntegrationTestSuite) TestLoginWithBadCredentials() {
	suite.adminToken()

	w := suite.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"email": "a@x.com", "password": "wrong"}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(models.CodeInvalidCredentials, suite.codeType(w))
}

func (suite *IntegrationTestSuite) TestTamperedAndExpiredTokensRejectedEverywhere() {
	token := suite.adminToken()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{
		UserID: 1,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(testutil.JWTSecret))
	suite.Require().NoError(err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/settings"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/media"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPatch, "/api/blogs/1"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPost, "/api/pages/home"},
	}
	for _, bad := range []string{expiredToken, tampered} {
		for _, r := range routes {
			w := suite.doJSON(r.method, r.path, nil, bad)
			suite.Equal(http.StatusForbidden, w.Code, "%s %s", r.method, r.path)
			suite.Equal(models.CodeInvalidToken, suite.codeType(w), "%s %s", r.method, r.path)
		}
	}
}

func (suite *IntegrationTestSuite) TestMissingTokenIsUnauthorized() {
	w := suite.doJSON(http.MethodDelete, "/api/projects/1", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestNonAdminIsForbidden() {
	token := suite.adminToken()
	w := suite.doJSON(http.MethodPost, "/api/users", map[string]string{"email": "e@x.com", "password": "pw", "role": "editor"}, token)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	editor := suite.login("e@x.com", "pw")
	w = suite.doJSON(http.MethodGet, "/api/settings", nil, editor)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(models.CodeForbidden, suite.codeType(w))
}

func (suite *IntegrationTestSuite) TestUserRoleIsNotCoerced() {
	token := suite.adminToken()

	w := suite.doJSON(http.MethodPost, "/api/users", map[string]string{"email": "e@x.com", "password": "pw", "role": "Admin"}, token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestPublicReadsIgnoreMalformedTokens() {
	token := suite.adminToken()
	title := "Welcome"
	suite.Require().Equal(http.StatusOK, suite.doJSON(http.MethodPost, "/api/pages/home", map[string]any{"title": title}, token).Code)

	for _, path := range []string{"/api/projects", "/api/blogs", "/api/pages", "/api/pages/home"} {
		w := suite.doJSON(http.MethodGet, path, nil, "malformed.token.value")
		suite.Equal(http.StatusOK, w.Code, path)
		suite.Empty(w.Result().Cookies(), path)
	}
}

func (suite *IntegrationTestSuite) TestProjectLifecycle() {
	token := suite.adminToken()

	w := suite.doMultipart(http.MethodPost, "/api/projects", projectFields(), token,
		png("mainImage", "main.png"), png("galleryImages", "a.png"), png("galleryImages", "b.png"))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created models.Project
	suite.decode(w, &created)
	suite.Equal(models.ProjectStatusUpcoming, created.Status)
	suite.Equal([]string{"Pool", "Gym"}, []string(created.Amenities))
	suite.Require().Len(created.GalleryImages, 2)
	suite.FileExists(filepath.Join(suite.cfg.UploadDir, strings.TrimPrefix(created.MainImage, "/uploads/")))

	w = suite.doMultipart(http.MethodPatch, "/api/projects/"+itoa(created.ID), map[string][]string{"price": {"2 Cr"}}, token,
		png("galleryImages", "c.png"))
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var updated models.Project
	suite.decode(w, &updated)
	suite.Equal("2 Cr", updated.Price)
	suite.Equal("Green Acres", updated.Title)
	suite.Require().Len(updated.GalleryImages, 3)
	suite.Equal([]string(created.GalleryImages), []string(updated.GalleryImages[:2]))

	w = suite.doJSON(http.MethodPatch, "/api/projects/"+itoa(created.ID), map[string]any{"type": "Castle"}, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/projects/"+itoa(created.ID), nil, "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON(http.MethodDelete, "/api/projects/"+itoa(created.ID), nil, token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/projects/"+itoa(created.ID), nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestProjectCreateRequiresFields() {
	token := suite.adminToken()
	fields := projectFields()
	fields["type"] = []string{"Castle"}

	w := suite.doMultipart(http.MethodPost, "/api/projects", fields, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	delete(fields, "title")
	w = suite.doMultipart(http.MethodPost, "/api/projects", fields, token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestBlogLifecycle() {
	token := suite.adminToken()

	w := suite.doMultipart(http.MethodPost, "/api/blogs", map[string][]string{
		"title":            {"Hello"},
		"shortDescription": {"Short"},
		"fullContent":      {"<p>Full</p>"},
	}, token, png("coverImage", "cover.png"))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var post models.BlogPost
	suite.decode(w, &post)
	suite.Contains(post.CoverImage, "/uploads/blogs/")

	w = suite.doJSON(http.MethodPatch, "/api/blogs/"+itoa(post.ID), map[string]any{"title": "Hello again"}, token)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), "Hello again")

	w = suite.doJSON(http.MethodGet, "/api/blogs", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var posts []models.BlogPost
	suite.decode(w, &posts)
	suite.Len(posts, 1)
}

func (suite *IntegrationTestSuite) TestMediaDeleteWithMissingFileKeepsRecord() {
	token := suite.adminToken()

	w := suite.doMultipart(http.MethodPost, "/api/media", nil, token, png("mediaFile", "photo.png"))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var media models.Media
	suite.decode(w, &media)

	suite.Require().NoError(os.Remove(filepath.Join(suite.cfg.UploadDir, "media", media.Filename)))

	w = suite.doJSON(http.MethodDelete, "/api/media/"+itoa(media.ID), nil, token)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to delete file from server.")

	w = suite.doJSON(http.MethodGet, "/api/media/"+itoa(media.ID), nil, token)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestMediaUploadLimits() {
	token := suite.adminToken()

	w := suite.doMultipart(http.MethodPost, "/api/media/upload", nil, token,
		testutil.File{Field: "mediaFile", Filename: "script.png", Content: []byte("#!/bin/sh\necho hi\n")})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doMultipart(http.MethodPost, "/api/media", nil, token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestPageUpsert() {
	token := suite.adminToken()

	for _, title := range []string{"First", "Second"} {
		w := suite.doJSON(http.MethodPost, "/api/pages/home", map[string]any{"title": title, "content": map[string]any{"heroTitle": title}}, token)
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}

	w := suite.doJSON(http.MethodGet, "/api/pages", nil, "")
	var pages []models.PageSummary
	suite.decode(w, &pages)
	suite.Require().Len(pages, 1)
	suite.Equal("Second", pages[0].Title)

	w = suite.doJSON(http.MethodPost, "/api/pages/careers", map[string]any{"title": "Careers"}, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/pages/about", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestSettings() {
	token := suite.adminToken()

	w := suite.doJSON(http.MethodGet, "/api/settings", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), models.DefaultSiteTitle)

	w = suite.doJSON(http.MethodPut, "/api/settings", map[string]any{"siteTitle": "Estates", "itemsPerPage": 5}, token)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var setting models.Setting
	suite.decode(w, &setting)
	suite.Equal("Estates", setting.SiteTitle)
	suite.Equal(5, setting.ItemsPerPage)
	suite.Equal(models.DefaultAdminEmail, setting.AdminEmail)
}

func (suite *IntegrationTestSuite) TestContact() {
	w := suite.doJSON(http.MethodPost, "/api/contact", map[string]string{"name": "N", "email": "n@x.com", "phone": "1", "message": "Hi"}, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"success":true`)
}

func (suite *IntegrationTestSuite) TestSitePages() {
	token := suite.adminToken()
	w := suite.doMultipart(http.MethodPost, "/api/projects", projectFields(), token)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var project models.Project
	suite.decode(w, &project)

	for _, path := range []string{"/", "/home", "/about", "/about-us", "/contact", "/projects", "/all-projects", "/blog",
		"/projects/" + itoa(project.ID), "/single-property/" + itoa(project.ID), "/health"} {
		w := suite.do(http.MethodGet, path, nil, nil)
		suite.Equal(http.StatusOK, w.Code, path)
	}

	w = suite.do(http.MethodGet, "/", nil, nil)
	suite.Contains(w.Body.String(), "Green Acres")

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/projects/999", nil, nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/no-such-page", nil, nil).Code)
}

func (suite *IntegrationTestSuite) TestStaticFilesAreServed() {
	suite.Require().NoError(os.MkdirAll(filepath.Join(suite.cfg.PublicDir, "css"), 0o755))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.cfg.PublicDir, "css", "style.css"), []byte("body{}"), 0o644))

	w := suite.do(http.MethodGet, "/css/style.css", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("body{}", w.Body.String())
}

func (suite *IntegrationTestSuite) TestAdminPagesUseTheCookie() {
	w := suite.do(http.MethodGet, "/admin", nil, nil)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/admin/login", w.Header().Get("Location"))

	w = suite.do(http.MethodGet, "/admin/projects", nil, map[string]string{"Cookie": "token=garbage"})
	suite.Equal(http.StatusFound, w.Code)
	suite.Contains(w.Header().Get("Set-Cookie"), "token=;")

	token := suite.adminToken()

	// the rendered pages ignore the bearer header
	w = suite.do(http.MethodGet, "/admin", nil, map[string]string{"Authorization": "Bearer " + token})
	suite.Equal(http.StatusFound, w.Code)

	for _, path := range []string{"/admin", "/admin/projects", "/admin/projects/new", "/admin/blogs", "/admin/media",
		"/admin/users", "/admin/settings", "/admin/pages/about"} {
		w = suite.do(http.MethodGet, path, nil, map[string]string{"Cookie": "token=" + token})
		suite.Equal(http.StatusOK, w.Code, path)
	}

	w = suite.do(http.MethodGet, "/admin/pages/careers", nil, map[string]string{"Cookie": "token=" + token})
	suite.Equal(http.StatusNotFound, w.Code)

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/admin/login", nil, nil).Code)
}

func (suite *IntegrationTestSuite) TestAdminFormLoginAndLogout() {
	suite.adminToken()

	w := suite.do(http.MethodPost, "/admin/login", strings.NewReader("email=a%40x.com&password=pw"),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	suite.Require().Equal(http.StatusFound, w.Code)
	suite.Equal("/admin", w.Header().Get("Location"))
	suite.Contains(w.Header().Get("Set-Cookie"), "token=")

	w = suite.do(http.MethodPost, "/admin/login", strings.NewReader("email=a%40x.com&password=bad"),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/admin/logout", nil, nil)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/admin/login", w.Header().Get("Location"))
	suite.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
