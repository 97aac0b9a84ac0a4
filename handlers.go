package main

import (
	"errors"
	"net/http"
	"strings"

	"finboard/pkg/auth"
	"finboard/pkg/store"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "token"
	// The cookie carries the session expiry; the token itself never expires.
	sessionMaxAge = 8 * 60 * 60
)

func setupRoutes(r *gin.Engine, svc *auth.Service, issuer *auth.TokenIssuer, st *store.Store) {
	r.POST("/register", registerHandler(svc))
	r.POST("/login", loginHandler(svc))
	authGroup := r.Group("")
	authGroup.Use(sessionMiddleware(issuer))
	authGroup.POST("/logout", logoutHandler(svc))
	authGroup.GET("/me", meHandler(st))
}

// sessionMiddleware verifies the session token from the httpOnly cookie,
// falling back to an Authorization: Bearer header for non-browser clients.
func sessionMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(sessionCookie)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
				c.Abort()
				return
			}
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
		userID, email, err := issuer.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			c.Abort()
			return
		}
		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}

func registerHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=5"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		profile, err := svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": auth.ErrEmailTaken.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func loginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		profile, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		// secure=false: behind TLS termination in production this should be true
		c.SetCookie(sessionCookie, token, sessionMaxAge, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": profile, "token": token})
	}
}

func logoutHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Logout()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful", "ok": true})
	}
}

func meHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		user, err := st.FindUserByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, auth.Profile{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}
