package activities

// Category es abierta: los valores conocidos son solo los que usan los presets.
type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryFood     Category = "food"
)

type PresetKey string

const (
	PresetWalk PresetKey = "walk"
	PresetPlay PresetKey = "play"
	PresetMeal PresetKey = "meal"
)

// Preset es un botón fijo de la tarjeta de mascota: un par (type, details) predefinido.
type Preset struct {
	Key     PresetKey
	Label   string
	Type    Category
	Details string
}

// Presets en el orden en que se muestran.
var Presets = []Preset{
	{Key: PresetWalk, Label: "Add Walk", Type: CategoryExercise, Details: "Walk"},
	{Key: PresetPlay, Label: "Add Play Time", Type: CategoryExercise, Details: "Play"},
	{Key: PresetMeal, Label: "Add Meal", Type: CategoryFood, Details: "Meal"},
}

func LookupPreset(key PresetKey) (Preset, bool) {
	for _, p := range Presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}
