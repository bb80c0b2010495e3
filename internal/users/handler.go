package users

import (
	"net/http"

	"github.com/articret/coffee-shop-server/internal/models"
	"github.com/articret/coffee-shop-server/pkg/apierror"
	"github.com/gin-gonic/gin"
)

// Register binds the /users routes onto r.
func (s *Service) Register(r gin.IRouter) {
	r.GET("/users", s.list)
	r.GET("/users/:id", s.get)
	r.POST("/users", s.create)
	r.PATCH("/users/signin", s.signIn)
	r.PATCH("/users/profile", s.profile)
}

func (s *Service) list(c *gin.Context) {
	list, err := s.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Service) get(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(apierror.BadRequest("invalid user id", err))
		return
	}
	u, err := s.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Service) create(c *gin.Context) {
	var req models.NewUser
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierror.BadRequest("invalid user body", err))
		return
	}
	res, err := s.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Service) signIn(c *gin.Context) {
	var req models.SignIn
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierror.BadRequest("invalid sign-in body", err))
		return
	}
	res, err := s.RecordSignIn(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Service) profile(c *gin.Context) {
	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierror.BadRequest("invalid profile body", err))
		return
	}
	res, err := s.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}
