package handler

import (
	"net/http"

	"github.com/articret/coffee-shop-server/internal/coffee"
	"github.com/articret/coffee-shop-server/internal/coffee/service"
	"github.com/articret/coffee-shop-server/internal/models"
	"github.com/articret/coffee-shop-server/pkg/apierror"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterCoffeeRoutes binds the /coffees collection. Errors are attached to
// the context and rendered by middleware.Errors.
func RegisterCoffeeRoutes(r gin.IRouter, svc service.Service) {
	r.GET("/coffees", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), c.Query("email"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/coffees/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		d, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.POST("/coffees", func(c *gin.Context) {
		var req coffee.NewCoffee
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apierror.BadRequest("invalid coffee body", err))
			return
		}
		res, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	})

	r.PUT("/coffees/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req coffee.Replacement
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apierror.BadRequest("invalid coffee body", err))
			return
		}
		res, err := svc.Replace(c.Request.Context(), id, req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	})

	r.DELETE("/coffees/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		res, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	})
}

func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(apierror.BadRequest("invalid coffee id", err))
		return primitive.NilObjectID, false
	}
	return id, true
}
