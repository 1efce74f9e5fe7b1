package queries

import (
	"github.com/go-pg/pg/v10"
	"github.com/tycoongames/tycoon-backend/app/models"
)

// Lobby bookkeeping lives in postgres; live game state belongs to the engine.

func VerifyGame(id string, db *pg.DB) bool {
	game := &models.Game{Id: id}
	return db.Model(game).WherePK().Select() == nil
}

func GetUserData(userID string, db *pg.DB) (*models.User, error) {
	user := &models.User{Id: userID}
	if err := db.Model(user).WherePK().Select(); err != nil {
		return nil, err
	}
	return user, nil
}

func CreatePlayer(player models.Player, db *pg.DB) error {
	_, err := db.Model(&player).Insert()
	return err
}

func DeletePlayer(userID, gameID string, db *pg.DB) error {
	player := new(models.Player)
	_, err := db.Model(player).Where("user_id = ? and game_id = ?", userID, gameID).Delete()
	return err
}

// GamePlayers returns the seated players in join order; join order is turn
// order once the game starts.
func GamePlayers(gameID string, db *pg.DB) ([]models.Player, error) {
	var players []models.Player
	err := db.Model(&players).Where("game_id = ?", gameID).Select()
	return players, err
}

func SetGameStatus(gameID, status string, db *pg.DB) error {
	game := &models.Game{Id: gameID}
	_, err := db.Model(game).WherePK().Set("status = ?", status).Update()
	return err
}

// CleanupGame drops the lobby rows once everyone has left.
func CleanupGame(gameID string, db *pg.DB) {
	player := new(models.Player)
	game := new(models.Game)
	db.Model(player).Where("game_id = ?", gameID).Delete()
	db.Model(game).Where("id = ?", gameID).Delete()
}
