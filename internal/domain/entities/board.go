package entities

// Board numbers form a closed set: Manhattan Community Boards 1 through 12.
const (
	MinBoardNumber = 1
	MaxBoardNumber = 12
)

// Board is one Manhattan Community Board, the entity meetings are grouped by.
type Board struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	District string `json:"district"`
	Channel  string `json:"channel,omitempty"`
}

// Boards returns the registry of Manhattan Community Boards. Only CB7
// currently publishes a known YouTube channel handle.
func Boards() []Board {
	return []Board{
		{Number: 1, Name: "Manhattan CB1", District: "Manhattan"},
		{Number: 2, Name: "Manhattan CB2", District: "Manhattan"},
		{Number: 3, Name: "Manhattan CB3", District: "Manhattan"},
		{Number: 4, Name: "Manhattan CB4", District: "Manhattan"},
		{Number: 5, Name: "Manhattan CB5", District: "Manhattan"},
		{Number: 6, Name: "Manhattan CB6", District: "Manhattan"},
		{Number: 7, Name: "Manhattan CB7", District: "Manhattan", Channel: "@manhattancbseven4610"},
		{Number: 8, Name: "Manhattan CB8", District: "Manhattan"},
		{Number: 9, Name: "Manhattan CB9", District: "Manhattan"},
		{Number: 10, Name: "Manhattan CB10", District: "Manhattan"},
		{Number: 11, Name: "Manhattan CB11", District: "Manhattan"},
		{Number: 12, Name: "Manhattan CB12", District: "Manhattan"},
	}
}

// ValidBoardNumber reports whether n identifies a Manhattan Community Board.
func ValidBoardNumber(n int) bool {
	return n >= MinBoardNumber && n <= MaxBoardNumber
}
