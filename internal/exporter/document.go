package exporter

// Document is the YAML form of a loaded world. Rooms and items appear in
// source order and routes in declaration order, so an export reads like the
// WorldText it came from.
type Document struct {
	Game  string    `yaml:"game,omitempty"`
	Rooms []RoomDoc `yaml:"rooms"`
	Items []ItemDoc `yaml:"items,omitempty"`
}

// RoomDoc holds a single room's data.
type RoomDoc struct {
	ID          int        `yaml:"id"`
	Key         string     `yaml:"key"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Routes      []RouteDoc `yaml:"routes,omitempty"`
	Items       []string   `yaml:"items,omitempty"`
}

// RouteDoc holds the candidates for one direction.
type RouteDoc struct {
	Direction  string         `yaml:"direction"`
	Candidates []CandidateDoc `yaml:"candidates"`
}

// CandidateDoc is one transition. Target 0 means the player is lost.
type CandidateDoc struct {
	Target   int    `yaml:"target"`
	Requires string `yaml:"requires,omitempty"`
}

// ItemDoc holds a single item's data.
type ItemDoc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Location    int    `yaml:"location"`
}
