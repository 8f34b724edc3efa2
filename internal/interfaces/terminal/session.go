package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	appmarket "marketboard/internal/application/service/market"
	market "marketboard/internal/domain/entity/market"

	"github.com/sirupsen/logrus"
)

const (
	loadErrorMessage = "Erro ao carregar dados. Por favor, tente novamente."
	prompt           = "Buscar por empresa ou código (:refresh, :show CÓDIGO, :quit)"
)

// SessionParams configures an interactive session.
type SessionParams struct {
	Service *appmarket.Service
	Out     io.Writer
	Logger  logrus.FieldLogger
	// Delay between the last typed query and the search. Zero means
	// DefaultDelay.
	Delay time.Duration
	// Base is applied to every search; its Query is replaced by what the
	// user types.
	Base market.Criteria
}

// Session reads queries line by line and redraws the table for the last
// one once typing settles.
type Session struct {
	market    *appmarket.Service
	out       io.Writer
	logger    logrus.FieldLogger
	base      market.Criteria
	debouncer *Debouncer

	mu    sync.Mutex
	query string
}

func NewSession(p SessionParams) *Session {
	logger := p.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Session{
		market:    p.Service,
		out:       p.Out,
		logger:    logger.WithField("component", "terminal"),
		base:      p.Base,
		query:     p.Base.Query,
		debouncer: NewDebouncer(p.Delay),
	}
}

// Run draws the initial table and then processes input until :quit, end of
// input or ctx cancellation. A query still waiting on the debouncer when
// input ends is run before returning.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.mu.Lock()
	fmt.Fprintln(s.out, prompt)
	s.renderLocked(ctx)
	s.mu.Unlock()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			s.debouncer.Cancel()
			return err
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ":") {
			s.debouncer.Trigger(func() { s.search(ctx, line) })
			continue
		}

		command, arg, _ := strings.Cut(trimmed[1:], " ")
		switch strings.ToLower(command) {
		case "quit", "q":
			s.debouncer.Cancel()
			return nil
		case "refresh", "r":
			s.debouncer.Flush()
			s.refresh(ctx)
		case "show", "s":
			s.show(ctx, strings.TrimSpace(arg))
		default:
			s.write(fmt.Sprintf("Comando desconhecido: %s\n", trimmed))
		}
	}

	s.debouncer.Flush()
	return scanner.Err()
}

func (s *Session) search(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.renderLocked(ctx)
}

func (s *Session) refresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.market.Refresh(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("refresh failed")
		fmt.Fprintln(s.out, loadErrorMessage)
		return
	}
	s.logger.WithField("batch_id", batch.ID).Debug("batch refreshed")
	s.renderLocked(ctx)
}

func (s *Session) show(ctx context.Context, symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if symbol == "" {
		fmt.Fprintln(s.out, "Informe o código da empresa")
		return
	}
	company, err := s.market.Company(ctx, symbol)
	switch {
	case errors.Is(err, appmarket.ErrCompanyNotFound):
		fmt.Fprintf(s.out, "Empresa não encontrada: %s\n", symbol)
		return
	case err != nil:
		s.logger.WithError(err).Warn("detail lookup failed")
		fmt.Fprintln(s.out, loadErrorMessage)
		return
	}
	if err := RenderDetail(s.out, company); err != nil {
		s.logger.WithError(err).Warn("render detail failed")
	}
}

func (s *Session) renderLocked(ctx context.Context) {
	criteria := s.base
	criteria.Query = s.query
	result, err := s.market.Search(ctx, criteria)
	if err != nil {
		s.logger.WithError(err).Warn("search failed")
		fmt.Fprintln(s.out, loadErrorMessage)
		return
	}
	if err := RenderTable(s.out, result); err != nil {
		s.logger.WithError(err).Warn("render table failed")
	}
}

func (s *Session) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	io.WriteString(s.out, text)
}
