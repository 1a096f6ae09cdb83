package httpserver

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/httpx"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,notblank"`
}

type tokenResponse struct {
	Token      string    `json:"token"`
	ExpireTime time.Time `json:"expireTime"`
}

func (s *HTTPServer) createUser(c *gin.Context) {
	var req credentialsRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	id, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "user_id", id)
	c.JSON(http.StatusOK, id)
}

func (s *HTTPServer) createToken(c *gin.Context) {
	var req credentialsRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	issued, err := s.users.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: issued.Token, ExpireTime: issued.ExpireTime})
}
