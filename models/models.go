package models

// ShipRecord is the persisted shape of one placed ship: both endpoints as
// board tokens ("A1".."J10") plus the cell count between them.
type ShipRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Size  int    `json:"size"`
}

// MoveRecord is one full round of play as it appears in the game log:
// the player's shot and the bot's reply. BotMove is empty when the game
// ended on the player's shot.
type MoveRecord struct {
	Turn       int    `json:"turn"`
	PlayerMove string `json:"player_move"`
	PlayerHit  string `json:"player_hit"`
	BotMove    string `json:"bot_move"`
	BotHit     string `json:"bot_hit"`
}
