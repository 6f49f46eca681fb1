package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

func (r *Router) register(c *gin.Context) {
	var request rest.RegisterUser
	if err := bindJSON(c, &request); err != nil {
		r.renderError(c, err)

		return
	}

	user, err := r.services.Users.Register(c.Request.Context(), request)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusCreated, user)
}

func (r *Router) listUsers(c *gin.Context) {
	pagination, err := r.pagination(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	users, count, err := r.services.Users.ListUsers(c.Request.Context(), pagination)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, rest.NewPage(users, count, pagination, requestURL(c)))
}

func (r *Router) getUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	user, err := r.services.Users.GetUser(c.Request.Context(), id)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, user)
}

func (r *Router) me(c *gin.Context) {
	user, err := r.services.Users.Me(c.Request.Context())
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, user)
}

func (r *Router) setPassword(c *gin.Context) {
	var request rest.SetPassword
	if err := bindJSON(c, &request); err != nil {
		r.renderError(c, err)

		return
	}

	if err := r.services.Users.SetPassword(c.Request.Context(), request); err != nil {
		r.renderError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (r *Router) subscriptions(c *gin.Context) {
	pagination, err := r.pagination(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	recipesLimit, err := queryInt(c, "recipes_limit")
	if err != nil {
		r.renderError(c, err)

		return
	}

	subscriptions, count, err := r.services.Users.Subscriptions(c.Request.Context(), pagination, recipesLimit)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, rest.NewPage(subscriptions, count, pagination, requestURL(c)))
}

func (r *Router) subscribe(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	recipesLimit, err := queryInt(c, "recipes_limit")
	if err != nil {
		r.renderError(c, err)

		return
	}

	subscription, err := r.services.Users.Subscribe(c.Request.Context(), id, recipesLimit)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusCreated, subscription)
}

func (r *Router) unsubscribe(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	if err := r.services.Users.Unsubscribe(c.Request.Context(), id); err != nil {
		r.renderError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (r *Router) login(c *gin.Context) {
	var request rest.Login
	if err := bindJSON(c, &request); err != nil {
		r.renderError(c, err)

		return
	}

	token, err := r.services.Auth.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, rest.Token{AuthToken: token})
}

func (r *Router) logout(c *gin.Context) {
	if err := r.services.Auth.Logout(c.Request.Context()); err != nil {
		r.renderError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
