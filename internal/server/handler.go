package server

import (
	stderrors "errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lmeyer/gamehall/internal/errors"
	"github.com/lmeyer/gamehall/internal/tictactoe"
)

var validate = validator.New()

// NewApp builds the fiber application serving the game API.
func NewApp(svc *Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "gamehall",
		DisableStartupMessage: true,
	})

	api := app.Group("/api")

	api.Post("/chess", func(c *fiber.Ctx) error {
		var req NewGameRequest
		if err := parseBody(c, &req); err != nil {
			return badRequest(c, err)
		}
		state, err := svc.NewChessGame(req.Difficulty, req.Color)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(state)
	})

	api.Get("/chess/:id", func(c *fiber.Ctx) error {
		state, err := svc.ChessState(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(state)
	})

	api.Get("/chess/:id/moves", func(c *fiber.Ctx) error {
		moves, err := svc.ChessLegalMoves(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"moves": moves})
	})

	api.Post("/chess/:id/moves", func(c *fiber.Ctx) error {
		var req ChessMoveRequest
		if err := parseBody(c, &req); err != nil {
			return badRequest(c, err)
		}
		state, err := svc.PlayChessMove(c.Params("id"), req.Move)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(state)
	})

	api.Post("/chess/:id/reset", func(c *fiber.Ctx) error {
		state, err := svc.ResetChess(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(state)
	})

	api.Post("/tictactoe", func(c *fiber.Ctx) error {
		var req NewGameRequest
		if err := parseBody(c, &req); err != nil {
			return badRequest(c, err)
		}
		state, err := svc.NewTTTGame(req.Difficulty)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(state)
	})

	api.Get("/tictactoe/:id", func(c *fiber.Ctx) error {
		state, err := svc.TTTState(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(state)
	})

	api.Post("/tictactoe/:id/moves", func(c *fiber.Ctx) error {
		var req TTTMoveRequest
		if err := parseBody(c, &req); err != nil {
			return badRequest(c, err)
		}
		state, err := svc.PlayTTTMove(c.Params("id"), tictactoe.Cell{Row: req.Row, Col: req.Col})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(state)
	})

	api.Get("/trophies", func(c *fiber.Ctx) error {
		resp, err := svc.Trophies()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(resp)
	})

	return app
}

// parseBody decodes and validates a JSON request body.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	return validate.Struct(out)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
}

// fail maps domain errors onto HTTP status codes.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		status = fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrInvalidSquare),
		stderrors.Is(err, errors.ErrInvalidDifficulty):
		status = fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrGameOver):
		status = fiber.StatusConflict
	default:
		log.Printf("internal error: %v", err)
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}
