// Package rest holds the JSON request and response shapes of the HTTP API and
// their conversion from the storage models.
package rest

import "net/http"

// Operation selects between the read and the write shape of a resource.
type Operation int

const (
	Read Operation = iota
	Write
)

// OperationForMethod maps safe HTTP methods to Read and everything else to Write.
func OperationForMethod(method string) Operation {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return Read
	default:
		return Write
	}
}

func (o Operation) String() string {
	if o == Read {
		return "read"
	}

	return "write"
}

type Tag struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type Ingredient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type RecipeIngredient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type User struct {
	Email        string `json:"email"`
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// Recipe is the read shape of a recipe.
type Recipe struct {
	ID               uint               `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           User               `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
}

type RecipeShort struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type IngredientAmount struct {
	ID     uint `json:"id"     binding:"required"`
	Amount int  `json:"amount"`
}

// RecipeWrite is the write shape of a recipe, used by create and update.
type RecipeWrite struct {
	Ingredients []IngredientAmount `json:"ingredients"  binding:"dive"`
	Tags        []uint             `json:"tags"`
	Image       string             `json:"image"`
	Name        string             `json:"name"         binding:"required,max=200"`
	Text        string             `json:"text"         binding:"required"`
	CookingTime int                `json:"cooking_time"`
}

type Subscription struct {
	User
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

type RecipeDraft struct {
	Name        string   `json:"name"`
	Text        string   `json:"text"`
	Image       string   `json:"image"`
	CookingTime int      `json:"cooking_time"`
	Ingredients []string `json:"ingredients"`
	Source      string   `json:"source"`
}

type RegisterUser struct {
	Email     string `json:"email"      binding:"required,email,max=254"`
	Username  string `json:"username"   binding:"required,max=150"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name"  binding:"required,max=150"`
	Password  string `json:"password"   binding:"required,max=150"`
}

type Login struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Token struct {
	AuthToken string `json:"auth_token"`
}

type SetPassword struct {
	NewPassword     string `json:"new_password"     binding:"required,max=150"`
	CurrentPassword string `json:"current_password" binding:"required"`
}

type Error struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
