package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (r *Router) listTags(c *gin.Context) {
	tags, err := r.services.Catalog.ListTags(c.Request.Context())
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, tags)
}

func (r *Router) getTag(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	tag, err := r.services.Catalog.GetTag(c.Request.Context(), id)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, tag)
}

// listIngredients accepts the prefix as either search or name.
func (r *Router) listIngredients(c *gin.Context) {
	search := c.Query("search")
	if len(search) == 0 {
		search = c.Query("name")
	}

	ingredients, err := r.services.Catalog.SearchIngredients(c.Request.Context(), search)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, ingredients)
}

func (r *Router) getIngredient(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	ingredient, err := r.services.Catalog.GetIngredient(c.Request.Context(), id)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, ingredient)
}
