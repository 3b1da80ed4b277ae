package security

import (
	"net/http"
	"strings"

	errs "conectify/tools/errs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context key the rest of the modules use to read the caller.
const CtxUserIDKey = "authUserID"

type Options struct {
	Secret []byte

	// Header to read when not using Authorization: Bearer. Default "authorization".
	HeaderToken               string
	EnableAuthorizationBearer bool
}

func DefaultOptions(secret []byte) *Options {
	return &Options{
		Secret:                    secret,
		HeaderToken:               "authorization",
		EnableAuthorizationBearer: true,
	}
}

// Middleware verifies the bearer token and stores its subject (the caller's
// user id) in the gin context. Requests without a valid token never reach
// the handlers.
func Middleware(opts *Options) gin.HandlerFunc {
	if opts == nil {
		panic("security: nil options")
	}
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(opts.HeaderToken))

		if token == "" && opts.EnableAuthorizationBearer {
			if authz := strings.TrimSpace(c.GetHeader("Authorization")); authz != "" {
				if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					token = strings.TrimSpace(authz[len("bearer "):])
				}
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
			return
		}

		userID, err := ParseUserID(token, opts.Secret)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
			return
		}

		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

// ParseUserID validates an HS256 token and returns its subject.
func ParseUserID(token string, secret []byte) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	return tok.Claims.GetSubject()
}

// SignUserToken issues an HS256 token for a user id. Used by tests and dev
// tooling; production tokens come from the account service.
func SignUserToken(userID string, secret []byte) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID})
	return tok.SignedString(secret)
}

// CallerID reads the authenticated user id set by Middleware.
func CallerID(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
