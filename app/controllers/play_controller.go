package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tycoongames/tycoon-backend/app/engine"
	"github.com/tycoongames/tycoon-backend/pkg"
)

// Games is the engine manager behind the play endpoints, set from main.
var Games *engine.Manager

type startDto struct {
	GameId  string              `json:"game_id"`
	Players []engine.PlayerInfo `json:"players"`
}

type actionDto struct {
	UserId   string `json:"user_id"`
	Position int    `json:"position"`
}

// StartPlay boots an engine session directly from a player list, the
// request/response twin of the socket start-game event.
func StartPlay(c *fiber.Ctx) error {
	dto := new(startDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if dto.GameId == "" {
		dto.GameId = pkg.RandString(8)
	}
	snap, err := Games.Start(dto.GameId, dto.Players, 0)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "game_id": snap.Id, "state": snap})
}

func GetPlayState(c *fiber.Ctx) error {
	snap, err := Games.State(c.Params("id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "state": snap})
}

func RollDice(c *fiber.Ctx) error {
	dto := new(actionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	turn, snap, err := Games.Roll(c.Params("id"), dto.UserId)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "turn": turn, "state": snap})
}

func BuyProperty(c *fiber.Ctx) error {
	return playAction(c, func(gameID string, dto *actionDto) (*engine.Snapshot, error) {
		return Games.Buy(gameID, dto.UserId, dto.Position)
	})
}

func MortgageProperty(c *fiber.Ctx) error {
	return playAction(c, func(gameID string, dto *actionDto) (*engine.Snapshot, error) {
		return Games.Mortgage(gameID, dto.UserId, dto.Position)
	})
}

func UnmortgageProperty(c *fiber.Ctx) error {
	return playAction(c, func(gameID string, dto *actionDto) (*engine.Snapshot, error) {
		return Games.Unmortgage(gameID, dto.UserId, dto.Position)
	})
}

func DeclareBankruptcy(c *fiber.Ctx) error {
	return playAction(c, func(gameID string, dto *actionDto) (*engine.Snapshot, error) {
		return Games.Bankrupt(gameID, dto.UserId)
	})
}

func ForfeitGame(c *fiber.Ctx) error {
	return playAction(c, func(gameID string, dto *actionDto) (*engine.Snapshot, error) {
		return Games.Forfeit(gameID, dto.UserId)
	})
}

func UseJailCard(c *fiber.Ctx) error {
	return playAction(c, func(gameID string, dto *actionDto) (*engine.Snapshot, error) {
		return Games.UseJailCard(gameID, dto.UserId)
	})
}

func playAction(c *fiber.Ctx, op func(string, *actionDto) (*engine.Snapshot, error)) error {
	dto := new(actionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	snap, err := op(c.Params("id"), dto)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "state": snap})
}

// engineError maps engine failure kinds onto HTTP statuses; the engine never
// builds transport responses itself.
func engineError(c *fiber.Ctx, err error) error {
	status := fiber.StatusConflict
	switch {
	case errors.Is(err, engine.ErrInvalidSetup):
		status = fiber.StatusBadRequest
	case errors.Is(err, engine.ErrSessionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, engine.ErrInsufficientFunds):
		status = fiber.StatusPaymentRequired
	}
	return c.Status(status).JSON(fiber.Map{"ok": false, "error": engine.Kind(err)})
}
