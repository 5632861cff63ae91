package staff

import "github.com/trashtocash/admin-api/pkg/model"

// Materials is the catalog of materials the machines accept.
func Materials() []model.Material {
	return []model.Material{
		{ID: "1", TypeIcon: "🪟", Name: "Glass", Status: model.MaterialActive},
		{ID: "2", TypeIcon: "🧴", Name: "Plastic", Status: model.MaterialActive},
		{ID: "3", TypeIcon: "🥫", Name: "Cans", Status: model.MaterialActive},
	}
}
