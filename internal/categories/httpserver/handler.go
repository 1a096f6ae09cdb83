package httpserver

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/moviecategories/internal/categories/models"
	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/httpx"
	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Category    string `json:"category" validate:"required,notblank"`
	Description string `json:"description"`
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.Error(common.BadRequest("Invalid id.", err))
		return 0, false
	}
	return id, true
}

func (s *HTTPServer) getAll(c *gin.Context) {
	list, err := s.categories.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) getByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	mc, err := s.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mc)
}

func (s *HTTPServer) create(c *gin.Context) {
	var req categoryRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	id, err := s.categories.Create(c.Request.Context(), &models.MovieCategory{
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	if claims, ok := httpx.ClaimsFrom(c); ok {
		s.logger.Info(c.Request.Context(), "Category created", "id", id, "user_id", claims.UserID)
	}
	c.JSON(http.StatusOK, id)
}

func (s *HTTPServer) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	err := s.categories.Update(c.Request.Context(), &models.MovieCategory{
		ID:          id,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *HTTPServer) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.categories.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusOK)
}

// getAllHTTPAuth is the anonymous listing: credentials travel in headers and
// are checked against the identity service. Any failure there is a 401.
func (s *HTTPServer) getAllHTTPAuth(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.GetHeader(common.EmailHeaderName)
	password := c.GetHeader(common.PasswordHeaderName)

	if email == "" || password == "" {
		httpx.Abort(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := s.auth.Authenticate(ctx, email, password); err != nil {
		s.logger.Warn(ctx, "header authentication failed", "error", err.Error())
		httpx.Abort(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s.getAll(c)
}
