package domain

// LevelDefinition is one row of the static level table. Rows are ordered by
// level with strictly increasing MinXP; level 1 always has MinXP 0.
type LevelDefinition struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	MinXP int    `json:"minXP"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}
