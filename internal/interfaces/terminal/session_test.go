package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appmarket "marketboard/internal/application/service/market"
	market "marketboard/internal/domain/entity/market"

	"github.com/stretchr/testify/require"
)

var updatedAt = time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)

type stubGenerator struct {
	err   error
	calls int
}

func (g *stubGenerator) Generate(int) ([]market.Company, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return sampleCompanies(), nil
}

func sampleCompanies() []market.Company {
	return []market.Company{
		{ID: "PETR4", Name: "Petrobras S.A.", Symbol: "PETR4", Sector: "Petróleo e Gás", CurrentPrice: 38.5,
			Change: market.PriceChange{Value: 1.5, Percentage: 4.05}, Volume: 9_500_000, MarketCap: 1_234_567_890, LastUpdate: updatedAt},
		{ID: "ITUB4", Name: "Itaú Unibanco S.A.", Symbol: "ITUB4", Sector: "Financeiro", CurrentPrice: 32.1,
			Change: market.PriceChange{Value: -0.75, Percentage: -2.28}, Volume: 8_000_000, MarketCap: 900_000_000, LastUpdate: updatedAt},
		{ID: "TICK001", Name: "Nova Energia Holding", Symbol: "TICK001", Sector: "Energia", CurrentPrice: 12.9,
			Volume: 450_000, MarketCap: 50_000_000, LastUpdate: updatedAt},
	}
}

func runSession(t *testing.T, gen *stubGenerator, input string) string {
	t.Helper()
	var out bytes.Buffer
	session := NewSession(SessionParams{
		Service: appmarket.NewService(gen, 10),
		Out:     &out,
		Delay:   time.Hour,
	})
	require.NoError(t, session.Run(context.Background(), strings.NewReader(input)))
	return out.String()
}

func TestSession_InitialTable(t *testing.T) {
	out := runSession(t, &stubGenerator{}, "")

	require.Contains(t, out, "PETR4")
	require.Contains(t, out, "TICK001")
	require.Contains(t, out, "Exibindo 3 de 3 empresas")
}

func TestSession_DebouncesQueries(t *testing.T) {
	out := runSession(t, &stubGenerator{}, "p\npe\npetr\n")

	require.NotContains(t, out, `Resultados para "p":`)
	require.NotContains(t, out, `Resultados para "pe":`)
	require.Contains(t, out, `Resultados para "petr": Exibindo 1 de 3 empresas`)
}

func TestSession_WaitsForQueryFiredByTimer(t *testing.T) {
	for i := 0; i < 20; i++ {
		var out bytes.Buffer
		session := NewSession(SessionParams{
			Service: appmarket.NewService(&stubGenerator{}, 10),
			Out:     &out,
			Delay:   time.Nanosecond,
		})
		require.NoError(t, session.Run(context.Background(), strings.NewReader("petr\n")))
		require.Contains(t, out.String(), `Resultados para "petr": Exibindo 1 de 3 empresas`)
	}
}

func TestSession_NoMatch(t *testing.T) {
	out := runSession(t, &stubGenerator{}, "xyz\n")

	require.Contains(t, out, "Nenhuma empresa encontrada")
	require.Contains(t, out, `Resultados para "xyz": Exibindo 0 de 3 empresas`)
}

func TestSession_Show(t *testing.T) {
	out := runSession(t, &stubGenerator{}, ":show itub4\n:show NOPE3\n:show\n")

	require.Contains(t, out, "ITUB4  Itaú Unibanco S.A.")
	require.Contains(t, out, "Empresa não encontrada: NOPE3")
	require.Contains(t, out, "Informe o código da empresa")
}

func TestSession_Refresh(t *testing.T) {
	gen := &stubGenerator{}
	out := runSession(t, gen, ":refresh\n")

	require.Equal(t, 2, gen.calls)
	require.Equal(t, 2, strings.Count(out, "Exibindo 3 de 3 empresas"))
}

func TestSession_QuitDropsPendingQuery(t *testing.T) {
	out := runSession(t, &stubGenerator{}, "petr\n:quit\n:show PETR4\n")

	require.NotContains(t, out, `Resultados para "petr"`)
	require.NotContains(t, out, "Preço de Abertura")
}

func TestSession_UnknownCommand(t *testing.T) {
	out := runSession(t, &stubGenerator{}, ":bogus\n")

	require.Contains(t, out, "Comando desconhecido: :bogus")
}

func TestSession_GenerationFailure(t *testing.T) {
	out := runSession(t, &stubGenerator{err: errors.New("feed down")}, "petr\n")

	require.Contains(t, out, loadErrorMessage)
	require.NotContains(t, out, "Exibindo")
}

func TestSession_BaseCriteria(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(SessionParams{
		Service: appmarket.NewService(&stubGenerator{}, 10),
		Out:     &out,
		Delay:   time.Hour,
		Base:    market.Criteria{Sector: "Financeiro"},
	})
	require.NoError(t, session.Run(context.Background(), strings.NewReader("")))

	require.Contains(t, out.String(), "ITUB4")
	require.NotContains(t, out.String(), "PETR4")
	require.Contains(t, out.String(), "Exibindo 1 de 3 empresas")
}

func TestSession_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	session := NewSession(SessionParams{
		Service: appmarket.NewService(&stubGenerator{}, 10),
		Out:     &out,
	})
	err := session.Run(ctx, strings.NewReader("petr\n"))
	require.ErrorIs(t, err, context.Canceled)
}
