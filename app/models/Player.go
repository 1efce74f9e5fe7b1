package models

// Player is the lobby row linking a user to a game. Live game state
// (cash, position, holdings) belongs to the engine session, not here.
type Player struct {
	User_id  string
	Game_id  string
	Username string
	Active   string
}
