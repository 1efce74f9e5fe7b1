package socket

import (
	"encoding/json"
	"net/http"
	"strconv"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/tycoongames/tycoon-backend/app/engine"
	"github.com/tycoongames/tycoon-backend/app/models"
	"github.com/tycoongames/tycoon-backend/platform/database"
	"github.com/tycoongames/tycoon-backend/platform/queries"
)

// TODO add chat

// CreateSocketIOServer runs the realtime gameplay surface. Every event
// delegates to the engine manager; the manager serializes access per session,
// so handlers never touch game state directly.
func CreateSocketIOServer(games *engine.Manager) {

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	log := logrus.WithField("component", "sockets")

	emitError := func(s socketio.Conn, err error) {
		s.Emit("error-message", err.Error())
		s.Emit("error-kind", engine.Kind(err))
	}

	broadcastState := func(gameID string, snap *engine.Snapshot) {
		data, err := json.Marshal(snap)
		if err != nil {
			log.WithError(err).Error("snapshot marshal failed")
			return
		}
		server.BroadcastToRoom("/", gameID, "game-state", string(data))
		if snap.Status == engine.StatusEnded {
			server.BroadcastToRoom("/", gameID, "game-over", snap.Winner)
			queries.SetGameStatus(gameID, "ended", db)
		} else {
			server.BroadcastToRoom("/", gameID, "change-turn", snap.Players[snap.Current].Id)
		}
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		gameID, ok := result["game_id"]
		if !ok {
			log.Warn("game_id not passed")
			return
		}
		if !queries.VerifyGame(gameID, db) {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}
		userID, ok := result["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			s.Emit("failed")
			return
		}
		user, err := queries.GetUserData(userID, db)
		if err != nil {
			s.Emit("error-message", "User retrieval failed")
			s.Emit("failed")
			return
		}
		if err := queries.CreatePlayer(models.Player{
			Game_id:  gameID,
			User_id:  userID,
			Username: user.Email,
		}, db); err != nil {
			log.WithError(err).Warn("failed creating player")
			s.Emit("error-message", "Failed creating player")
			s.Emit("failed")
			return
		}

		server.BroadcastToRoom("/", gameID, "player-join")
		s.Join(gameID)
		s.Emit("joined-game", strconv.Itoa(server.RoomLen("/", gameID)))
		log.WithFields(logrus.Fields{"conn": s.ID(), "game_id": gameID}).Info("player joined room")
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		gameID, userID := result["game_id"], result["user_id"]

		s.Leave(gameID)
		// a running game treats leaving as forfeiture
		if snap, err := games.Forfeit(gameID, userID); err == nil {
			broadcastState(gameID, snap)
		}
		queries.DeletePlayer(userID, gameID, db)
		server.BroadcastToRoom("/", gameID, "player-left")

		players, err := queries.GamePlayers(gameID, db)
		if err == nil && len(players) == 0 {
			queries.CleanupGame(gameID, db)
			games.Remove(gameID)
		}
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameID string) {
		players, err := queries.GamePlayers(gameID, db)
		if err != nil || len(players) < engine.MinPlayers {
			s.Emit("error-message", "Unable to start game")
			return
		}
		infos := make([]engine.PlayerInfo, 0, len(players))
		for _, player := range players {
			infos = append(infos, engine.PlayerInfo{Id: player.User_id, Name: player.Username})
		}
		snap, err := games.Start(gameID, infos, 0)
		if err != nil {
			emitError(s, err)
			return
		}
		queries.SetGameStatus(gameID, "in progress", db)
		data, _ := json.Marshal(snap)
		server.BroadcastToRoom("/", gameID, "game-start", string(data))
		server.BroadcastToRoom("/", gameID, "change-turn", snap.Players[snap.Current].Id)
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		turn, snap, err := games.Roll(result["game_id"], result["user_id"])
		if err != nil {
			emitError(s, err)
			return
		}
		data, _ := json.Marshal(turn)
		server.BroadcastToRoom("/", result["game_id"], "dice-rolled", string(data))
		broadcastState(result["game_id"], snap)
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		pos, err := strconv.Atoi(result["card_pos"])
		if err != nil {
			s.Emit("error-message", "Invalid position")
			return
		}
		snap, err := games.Buy(result["game_id"], result["user_id"], pos)
		if err != nil {
			emitError(s, err)
			return
		}
		broadcastState(result["game_id"], snap)
	})

	server.OnEvent("/", "request-mortgage", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		pos, err := strconv.Atoi(result["card_pos"])
		if err != nil {
			s.Emit("error-message", "Invalid position")
			return
		}
		snap, err := games.Mortgage(result["game_id"], result["user_id"], pos)
		if err != nil {
			emitError(s, err)
			return
		}
		broadcastState(result["game_id"], snap)
	})

	server.OnEvent("/", "request-unmortgage", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		pos, err := strconv.Atoi(result["card_pos"])
		if err != nil {
			s.Emit("error-message", "Invalid position")
			return
		}
		snap, err := games.Unmortgage(result["game_id"], result["user_id"], pos)
		if err != nil {
			emitError(s, err)
			return
		}
		broadcastState(result["game_id"], snap)
	})

	server.OnEvent("/", "declare-bankruptcy", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		snap, err := games.Bankrupt(result["game_id"], result["user_id"])
		if err != nil {
			emitError(s, err)
			return
		}
		broadcastState(result["game_id"], snap)
	})

	server.OnEvent("/", "forfeit-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		snap, err := games.Forfeit(result["game_id"], result["user_id"])
		if err != nil {
			emitError(s, err)
			return
		}
		broadcastState(result["game_id"], snap)
	})

	server.OnEvent("/", "use-jail-card", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		snap, err := games.UseJailCard(result["game_id"], result["user_id"])
		if err != nil {
			emitError(s, err)
			return
		}
		broadcastState(result["game_id"], snap)
	})

	server.OnEvent("/", "game-state", func(s socketio.Conn, gameID string) {
		snap, err := games.State(gameID)
		if err != nil {
			emitError(s, err)
			return
		}
		data, _ := json.Marshal(snap)
		s.Emit("game-state", string(data))
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
