package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"estate-cms/helper"
	"estate-cms/models"
	"estate-cms/services"
)

// Context keys set by the guard.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// TokenCarrier pulls a session token out of a request.
type TokenCarrier interface {
	Token(c *gin.Context) (string, bool)
}

// HeaderCarrier reads "Authorization: Bearer <token>".
type HeaderCarrier struct{}

func (HeaderCarrier) Token(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimSpace(authHeader[7:])
	return tokenString, tokenString != ""
}

// CookieCarrier reads the session cookie.
type CookieCarrier struct {
	Cookie SessionCookie
}

func (cc CookieCarrier) Token(c *gin.Context) (string, bool) {
	tokenString, err := c.Cookie(cc.Cookie.name())
	if err != nil || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// SessionCookie describes the HTTP-only cookie holding the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) name() string {
	if s.Name == "" {
		return "token"
	}
	return s.Name
}

// Set stores token in the cookie for the whole site.
func (s SessionCookie) Set(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.name(), token, int(ttl.Seconds()), "/", "", s.Secure, true)
}

// Clear expires the cookie on the client.
func (s SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.name(), "", -1, "/", "", s.Secure, true)
}

// Responder turns a rejected request into the response of its surface.
type Responder interface {
	Reject(c *gin.Context, err error)
}

// APIResponder answers with the JSON error envelope.
type APIResponder struct {
	Helper *helper.HTTPHelper
}

func (r APIResponder) Reject(c *gin.Context, err error) {
	r.Helper.HandleError(c, err)
	c.Abort()
}

// SiteResponder sends unauthenticated visitors to the login page. Forbidden
// requests get the rendered error page.
type SiteResponder struct {
	LoginPath string
	Helper    *helper.HTTPHelper
}

func (r SiteResponder) Reject(c *gin.Context, err error) {
	status := r.Helper.GetStatusCode(err)
	if _, forbidden := err.(models.ErrorForbidden); forbidden || status == http.StatusInternalServerError {
		c.HTML(status, "error.html", gin.H{"Status": status, "Message": err.Error()})
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, r.LoginPath)
	c.Abort()
}

// Guard authenticates requests and admits administrators only. Carriers are
// tried in order; the first one holding a token wins.
type Guard struct {
	tokens    services.TokenService
	carriers  []TokenCarrier
	responder Responder
	cookie    SessionCookie
}

func NewGuard(tokens services.TokenService, cookie SessionCookie, responder Responder, carriers ...TokenCarrier) *Guard {
	return &Guard{
		tokens:    tokens,
		carriers:  carriers,
		responder: responder,
		cookie:    cookie,
	}
}

// Authenticate decodes the request's token into an identity.
func (g *Guard) Authenticate(c *gin.Context) (models.Identity, error) {
	var (
		tokenString string
		found       bool
	)
	for _, carrier := range g.carriers {
		if tokenString, found = carrier.Token(c); found {
			break
		}
	}
	if !found {
		return models.Identity{}, models.ErrorUnauthorized{Message: "Authentication required"}
	}

	claims, err := g.tokens.Parse(tokenString)
	if err != nil {
		return models.Identity{}, err
	}
	return claims.Identity(), nil
}

// Handle is the gin handler that admits administrators.
func (g *Guard) Handle(c *gin.Context) {
	identity, err := g.Authenticate(c)
	if err != nil {
		if _, invalid := err.(models.ErrorInvalidToken); invalid {
			g.cookie.Clear(c)
		}
		g.responder.Reject(c, err)
		return
	}

	if !identity.IsAdmin() {
		g.responder.Reject(c, models.ErrorForbidden{Message: "Administrator access required"})
		return
	}

	c.Set(ContextUserID, identity.UserID)
	c.Set(ContextRole, identity.Role)
	c.Next()
}

// CurrentIdentity returns the identity the guard attached to c.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return models.Identity{}, false
	}
	role, _ := c.Get(ContextRole)
	id, _ := userID.(uint)
	r, _ := role.(models.UserRole)
	return models.Identity{UserID: id, Role: r}, true
}
