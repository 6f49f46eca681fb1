package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DominusMortem/foodgram-project-react/pkg/server"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

const shoppingListFilename = "shopping_cart.txt"

// recipeResource answers safe methods with the read shape and binds the
// write shape for everything else.
func (r *Router) recipeResource(c *gin.Context) {
	switch rest.OperationForMethod(c.Request.Method) {
	case rest.Read:
		if len(c.Param("id")) == 0 {
			r.listRecipes(c)

			return
		}

		r.getRecipe(c)
	case rest.Write:
		r.writeRecipe(c)
	}
}

func (r *Router) listRecipes(c *gin.Context) {
	pagination, err := r.pagination(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	query := server.RecipeQuery{
		Tags:             c.QueryArray("tags"),
		IsFavorited:      queryFlag(c, "is_favorited"),
		IsInShoppingCart: queryFlag(c, "is_in_shopping_cart"),
		Pagination:       pagination,
	}

	if author := c.Query("author"); len(author) > 0 {
		authorID, err := strconv.ParseUint(author, 10, 0)
		if err != nil {
			c.JSON(http.StatusOK, rest.NewPage([]rest.Recipe{}, 0, pagination, nil))

			return
		}

		id := uint(authorID)
		query.AuthorID = &id
	}

	recipes, count, err := r.services.Recipes.ListRecipes(c.Request.Context(), query)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, rest.NewPage(recipes, count, pagination, requestURL(c)))
}

func (r *Router) getRecipe(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	recipe, err := r.services.Recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, recipe)
}

// writeRecipe creates a recipe on the collection route and replaces one on
// the item route. Both answer with the read shape.
func (r *Router) writeRecipe(c *gin.Context) {
	var request rest.RecipeWrite
	if err := bindJSON(c, &request); err != nil {
		r.renderError(c, err)

		return
	}

	if len(c.Param("id")) == 0 {
		recipe, err := r.services.Recipes.AddRecipe(c.Request.Context(), request)
		if err != nil {
			r.renderError(c, err)

			return
		}

		c.JSON(http.StatusCreated, recipe)

		return
	}

	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	recipe, err := r.services.Recipes.UpdateRecipe(c.Request.Context(), id, request)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (r *Router) deleteRecipe(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	if err := r.services.Recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		r.renderError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (r *Router) addFavorite(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	recipe, err := r.services.Recipes.AddFavorite(c.Request.Context(), id)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (r *Router) deleteFavorite(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	if err := r.services.Recipes.DeleteFavorite(c.Request.Context(), id); err != nil {
		r.renderError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (r *Router) addToCart(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	recipe, err := r.services.Carts.AddToCart(c.Request.Context(), id)
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (r *Router) removeFromCart(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		r.renderError(c, err)

		return
	}

	if err := r.services.Carts.RemoveFromCart(c.Request.Context(), id); err != nil {
		r.renderError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (r *Router) downloadShoppingCart(c *gin.Context) {
	list, err := r.services.Carts.ExportShoppingList(c.Request.Context())
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.Header("Content-Disposition", "attachment; filename="+shoppingListFilename)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(list))
}

func (r *Router) importRecipe(c *gin.Context) {
	draft, err := r.services.Recipes.ImportRecipe(c.Request.Context(), c.Query("url"))
	if err != nil {
		r.renderError(c, err)

		return
	}

	c.JSON(http.StatusOK, draft)
}
