package board

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/tycoongames/tycoon-backend/app/models"
)

//go:embed properties.json
var spacesJSON []byte

// LoadSpaces returns the 40-space board in position order. The data ships
// embedded so the loader works from any working directory.
func LoadSpaces() []models.Space {
	var spaces []models.Space
	if err := json.Unmarshal(spacesJSON, &spaces); err != nil {
		panic(err)
	}
	return spaces
}

func GetByPos(pos int, spaces *[]models.Space) (models.Space, error) { // O(N) time complexity
	for _, space := range *spaces {
		if space.Position == pos {
			return space, nil
		}
	}
	return models.Space{}, errors.New("not found")
}

// GroupPositions maps every ownable group to the positions composing it.
func GroupPositions(spaces *[]models.Space) map[string][]int {
	groups := make(map[string][]int)
	for _, space := range *spaces {
		if space.Purchasable() && space.Group != "" {
			groups[space.Group] = append(groups[space.Group], space.Position)
		}
	}
	return groups
}
