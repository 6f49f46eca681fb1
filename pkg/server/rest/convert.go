package rest

import "github.com/DominusMortem/foodgram-project-react/pkg/model"

func TagFromModel(tag model.Tag) Tag {
	return Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color, Slug: tag.Slug}
}

func TagsFromModel(tags []*model.Tag) []Tag {
	restTags := make([]Tag, 0, len(tags))

	for _, tag := range tags {
		restTags = append(restTags, TagFromModel(*tag))
	}

	return restTags
}

func IngredientFromModel(ingredient model.Ingredient) Ingredient {
	return Ingredient{ID: ingredient.ID, Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit}
}

func IngredientsFromModel(ingredients []*model.Ingredient) []Ingredient {
	restIngredients := make([]Ingredient, 0, len(ingredients))

	for _, ingredient := range ingredients {
		restIngredients = append(restIngredients, IngredientFromModel(*ingredient))
	}

	return restIngredients
}

func UserFromModel(user model.User, subscribed bool) User {
	return User{
		Email:        user.Email,
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
	}
}

// RecipeFlags carries the requester-relative parts of the recipe read shape.
type RecipeFlags struct {
	Favorited        bool
	InShoppingCart   bool
	AuthorSubscribed bool
}

func RecipeFromModel(recipe model.Recipe, flags RecipeFlags) Recipe {
	restRecipe := Recipe{
		ID:               recipe.ID,
		Tags:             make([]Tag, 0, len(recipe.Tags)),
		Author:           UserFromModel(recipe.Author, flags.AuthorSubscribed),
		Ingredients:      make([]RecipeIngredient, 0, len(recipe.Ingredients)),
		IsFavorited:      flags.Favorited,
		IsInShoppingCart: flags.InShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}

	for _, tag := range recipe.Tags {
		restRecipe.Tags = append(restRecipe.Tags, TagFromModel(tag))
	}

	for _, quantity := range recipe.Ingredients {
		restRecipe.Ingredients = append(restRecipe.Ingredients, RecipeIngredient{
			ID:              quantity.Ingredient.ID,
			Name:            quantity.Ingredient.Name,
			MeasurementUnit: quantity.Ingredient.MeasurementUnit,
			Amount:          quantity.Amount,
		})
	}

	return restRecipe
}

func RecipeShortFromModel(recipe model.Recipe) RecipeShort {
	return RecipeShort{ID: recipe.ID, Name: recipe.Name, Image: recipe.Image, CookingTime: recipe.CookingTime}
}

func RecipesShortFromModel(recipes []*model.Recipe) []RecipeShort {
	short := make([]RecipeShort, 0, len(recipes))

	for _, recipe := range recipes {
		short = append(short, RecipeShortFromModel(*recipe))
	}

	return short
}

func RecipeToModel(write RecipeWrite) (model.Recipe, []uint, []model.IngredientAmount) {
	recipe := model.Recipe{
		Name:        write.Name,
		Image:       write.Image,
		Text:        write.Text,
		CookingTime: write.CookingTime,
	}

	ingredients := make([]model.IngredientAmount, 0, len(write.Ingredients))
	for _, ingredient := range write.Ingredients {
		ingredients = append(ingredients, model.IngredientAmount{IngredientID: ingredient.ID, Amount: ingredient.Amount})
	}

	return recipe, write.Tags, ingredients
}
