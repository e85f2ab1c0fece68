package main

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Server struct {
	app     *fiber.App
	config  *Config
	runner  *Runner
	source  InputSource
	storage *Storage
	logger  *zap.Logger
}

type solveResponse struct {
	Run string `json:"run,omitempty"`
	*Result
}

func NewServer(config *Config, runner *Runner, source InputSource, storage *Storage, logger *zap.Logger) *Server {
	s := &Server{
		config:  config,
		runner:  runner,
		source:  source,
		storage: storage,
		logger:  logger,
	}

	// create a go-fiber app
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(ctx *fiber.Ctx, e error) error {
			var fe *fiber.Error
			if !errors.As(e, &fe) {
				logger.Error("request failed", zap.String("path", ctx.Path()), zap.Error(e))
				fe = fiber.NewError(fiber.StatusInternalServerError, "internal server error")
			}
			_ = ctx.SendStatus(fe.Code)
			return ctx.JSON(fe)
		},
	})

	s.app.Get("/days", s.handleDays)
	s.app.Post("/solve/:day", s.handleSolveBody)
	s.app.Get("/solve/:day", s.handleSolveSource)
	s.app.Get("/answers", s.handleExport)
	s.app.Get("/answers/:day", s.handleAnswers)
	return s
}

func (s *Server) Listen(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()
	s.logger.Info("listening", zap.String("addr", s.config.Listen))
	return s.app.Listen(s.config.Listen)
}

func (s *Server) handleDays(c *fiber.Ctx) error {
	return c.JSON(days())
}

// serve solving of a posted input
func (s *Server) handleSolveBody(c *fiber.Ctx) error {
	day, err := dayParam(c)
	if err != nil {
		return err
	}
	return s.solve(c, day, string(c.Body()))
}

// serve solving of the stored input
func (s *Server) handleSolveSource(c *fiber.Ctx) error {
	day, err := dayParam(c)
	if err != nil {
		return err
	}
	if _, err := lookup(day); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if s.source == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no input source configured")
	}
	input, err := s.source.Load(c.Context(), day)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return s.solve(c, day, string(input))
}

func (s *Server) solve(c *fiber.Ctx, day int, input string) error {
	res, err := s.runner.Run(c.Context(), day, input)
	if err != nil {
		if errors.Is(err, ErrUnknownDay) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	resp := &solveResponse{Result: res}
	if s.storage != nil {
		run := uuid.New()
		if err := s.storage.InsertResult(c.Context(), run, res); err != nil {
			return err
		}
		resp.Run = run.String()
	}
	return c.JSON(resp)
}

// serve answers of one day
func (s *Server) handleAnswers(c *fiber.Ctx) error {
	if err := s.checkToken(c); err != nil {
		return err
	}
	day, err := dayParam(c)
	if err != nil {
		return err
	}
	rows, err := s.storage.QueryAnswers(c.Context(), day)
	if errors.Is(err, ErrStorageDisabled) {
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	if err != nil {
		return err
	}

	type row struct {
		Run     string `json:"run"`
		Part    int    `json:"part"`
		Answer  Answer `json:"answer"`
		Elapsed int64  `json:"elapsed"`
		Created string `json:"created"`
	}
	out := make([]row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row{
			Run:     r.RunID.String(),
			Part:    r.Part,
			Answer:  r.Answer,
			Elapsed: int64(r.Elapsed),
			Created: r.Created.String(),
		})
	}
	return c.JSON(out)
}

// serve answer export
func (s *Server) handleExport(c *fiber.Ctx) error {
	if err := s.checkToken(c); err != nil {
		return err
	}
	if s.storage == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, ErrStorageDisabled.Error())
	}

	reader, writer := io.Pipe()
	w := csv.NewWriter(writer)
	go func() {
		err := s.storage.EachAnswer(context.Background(), func(r *AnswerRow) error {
			return w.Write([]string{
				r.RunID.String(),
				strconv.Itoa(r.Day),
				strconv.Itoa(r.Part),
				r.Answer.String(),
				r.Elapsed.String(),
				r.Created.String(),
			})
		})
		if err != nil {
			s.logger.Error("export answers", zap.Error(err))
			writer.CloseWithError(err)
			return
		}
		w.Flush()
		writer.CloseWithError(w.Error())
	}()

	c.Type("csv", "utf-8")
	c.Set("Content-Disposition", "attachment; filename=\"answers.csv\"")

	return c.SendStream(reader)
}

func (s *Server) checkToken(c *fiber.Ctx) error {
	if c.Cookies("token") != s.config.Password {
		c.ClearCookie("token")
		return fiber.NewError(fiber.StatusForbidden, "authentication failed")
	}
	return nil
}

func dayParam(c *fiber.Ctx) (int, error) {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil || day <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid day: "+c.Params("day"))
	}
	return day, nil
}
