package schemaorg

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

var ErrNoRecipe = errors.New("no schema.org recipe found")

type RecipeJSON struct {
	Type               json.RawMessage `json:"@type"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Image              json.RawMessage `json:"image"`
	RecipeIngredient   []string        `json:"recipeIngredient"`
	RecipeInstructions json.RawMessage `json:"recipeInstructions"`
	TotalTime          string          `json:"totalTime"`
	CookTime           string          `json:"cookTime"`
	PrepTime           string          `json:"prepTime"`
}

type instructionJSON struct {
	Type            string            `json:"@type"`
	Text            string            `json:"text"`
	Name            string            `json:"name"`
	ItemListElement []json.RawMessage `json:"itemListElement"`
}

func (s *SchemaOrgIntegration) FindRecipe(url string) (*model.ImportedRecipe, error) {
	collector := s.newCollector()

	var (
		errs   error
		result *model.ImportedRecipe
	)

	collector.OnHTML("script[type='application/ld+json']", func(element *colly.HTMLElement) {
		if result != nil {
			return
		}

		recipeJSON, err := findRecipeNode([]byte(element.Text))
		if err != nil {
			s.logger.Debug("skipping unparsable json-ld block", zap.String("url", url), zap.Error(err))

			return
		}

		if recipeJSON == nil {
			return
		}

		recipe, err := recipeJSON.toModel()
		if multierr.AppendInto(&errs, err) {
			return
		}

		recipe.Source = element.Request.URL.String()
		result = recipe
	})

	multierr.AppendInto(&errs, collector.Visit(url))

	if result != nil {
		return result, nil
	}

	if errs != nil {
		return nil, errs
	}

	return nil, fmt.Errorf("%w at %s", ErrNoRecipe, url)
}

// findRecipeNode looks for a Recipe node in a JSON-LD document, which may be a
// single object, an array of objects or an object with an @graph.
func findRecipeNode(data []byte) (*RecipeJSON, error) {
	trimmed := []byte(strings.TrimSpace(string(data)))
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var nodes []json.RawMessage
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, err
		}

		return findInNodes(nodes), nil
	}

	var graph struct {
		Graph []json.RawMessage `json:"@graph"`
	}

	if err := json.Unmarshal(trimmed, &graph); err != nil {
		return nil, err
	}

	if len(graph.Graph) > 0 {
		return findInNodes(graph.Graph), nil
	}

	var recipe RecipeJSON
	if err := json.Unmarshal(trimmed, &recipe); err != nil {
		return nil, err
	}

	if !hasType(recipe.Type, "Recipe") {
		return nil, nil
	}

	return &recipe, nil
}

func findInNodes(nodes []json.RawMessage) *RecipeJSON {
	for _, node := range nodes {
		if recipe, err := findRecipeNode(node); err == nil && recipe != nil {
			return recipe
		}
	}

	return nil
}

func hasType(raw json.RawMessage, want string) bool {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single == want
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, t := range many {
			if t == want {
				return true
			}
		}
	}

	return false
}

func (r *RecipeJSON) toModel() (*model.ImportedRecipe, error) {
	if len(r.Name) == 0 {
		return nil, fmt.Errorf("%w: recipe has no name", ErrNoRecipe)
	}

	recipe := &model.ImportedRecipe{
		Name:        strings.TrimSpace(r.Name),
		Image:       imageURL(r.Image),
		Ingredients: make([]string, 0, len(r.RecipeIngredient)),
	}

	for _, ingredient := range r.RecipeIngredient {
		if line := strings.TrimSpace(ingredient); len(line) > 0 {
			recipe.Ingredients = append(recipe.Ingredients, line)
		}
	}

	var text []string
	if description := strings.TrimSpace(r.Description); len(description) > 0 {
		text = append(text, description)
	}

	text = append(text, instructions(r.RecipeInstructions)...)
	recipe.Text = strings.Join(text, "\n")

	var errs error

	if len(r.TotalTime) > 0 {
		minutes, err := parseDurationMinutes(r.TotalTime)
		multierr.AppendInto(&errs, err)
		recipe.CookingTime = minutes
	} else {
		cook, err := parseDurationMinutes(r.CookTime)
		multierr.AppendInto(&errs, err)
		prep, err := parseDurationMinutes(r.PrepTime)
		multierr.AppendInto(&errs, err)
		recipe.CookingTime = cook + prep
	}

	return recipe, errs
}

// instructions flattens recipeInstructions, which may be plain text, a list of
// strings, HowToStep objects or HowToSection objects.
func instructions(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if text = strings.TrimSpace(text); len(text) > 0 {
			return []string{text}
		}

		return nil
	}

	var steps []json.RawMessage
	if err := json.Unmarshal(raw, &steps); err != nil {
		var step instructionJSON
		if err := json.Unmarshal(raw, &step); err != nil {
			return nil
		}

		return stepText(step)
	}

	var lines []string

	for _, stepRaw := range steps {
		var step instructionJSON
		if err := json.Unmarshal(stepRaw, &step); err != nil {
			lines = append(lines, instructions(stepRaw)...)

			continue
		}

		lines = append(lines, stepText(step)...)
	}

	return lines
}

func stepText(step instructionJSON) []string {
	if step.Type == "HowToSection" {
		var lines []string
		for _, element := range step.ItemListElement {
			lines = append(lines, instructions(element)...)
		}

		return lines
	}

	if text := strings.TrimSpace(step.Text); len(text) > 0 {
		return []string{text}
	}

	if name := strings.TrimSpace(step.Name); len(name) > 0 {
		return []string{name}
	}

	return nil
}

func imageURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var url string
	if err := json.Unmarshal(raw, &url); err == nil {
		return url
	}

	var object struct {
		URL        string `json:"url"`
		ContentURL string `json:"contentUrl"`
	}
	if err := json.Unmarshal(raw, &object); err == nil {
		if len(object.URL) > 0 {
			return object.URL
		}

		return object.ContentURL
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return imageURL(list[0])
	}

	return ""
}
