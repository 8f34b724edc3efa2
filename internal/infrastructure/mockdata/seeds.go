package mockdata

import market "marketboard/internal/domain/entity/market"

// Vocabulary holds the word lists filler company names are assembled from.
type Vocabulary struct {
	Prefixes []string
	Sectors  []string
	Suffixes []string
}

func (v Vocabulary) isZero() bool {
	return v.Prefixes == nil && v.Sectors == nil && v.Suffixes == nil
}

// DefaultSeeds returns the B3 companies present in every batch.
func DefaultSeeds() []market.Listing {
	return []market.Listing{
		{Name: "Petrobras S.A.", Symbol: "PETR4", Sector: "Petróleo e Gás"},
		{Name: "Vale S.A.", Symbol: "VALE3", Sector: "Mineração"},
		{Name: "Itaú Unibanco S.A.", Symbol: "ITUB4", Sector: "Financeiro"},
		{Name: "Bradesco S.A.", Symbol: "BBDC4", Sector: "Financeiro"},
		{Name: "Ambev S.A.", Symbol: "ABEV3", Sector: "Bebidas"},
		{Name: "Magazine Luiza S.A.", Symbol: "MGLU3", Sector: "Varejo"},
		{Name: "Lojas Renner S.A.", Symbol: "LREN3", Sector: "Varejo"},
		{Name: "WEG S.A.", Symbol: "WEGE3", Sector: "Industrial"},
		{Name: "B3 S.A.", Symbol: "B3SA3", Sector: "Financeiro"},
		{Name: "JBS S.A.", Symbol: "JBSS3", Sector: "Alimentos"},
		{Name: "Localiza S.A.", Symbol: "RENT3", Sector: "Locação de Veículos"},
		{Name: "Natura S.A.", Symbol: "NTCO3", Sector: "Cosméticos"},
		{Name: "Gerdau S.A.", Symbol: "GGBR4", Sector: "Siderurgia"},
		{Name: "Suzano S.A.", Symbol: "SUZB3", Sector: "Papel e Celulose"},
		{Name: "Banco do Brasil S.A.", Symbol: "BBAS3", Sector: "Financeiro"},
	}
}

// DefaultVocabulary returns the word lists used for filler companies.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Prefixes: []string{"Nova", "Brasil", "Tech", "Global", "Nacional", "Multi", "Mega", "Smart", "Eco", "Digital"},
		Sectors:  []string{"Tecnologia", "Energia", "Saúde", "Construção", "Logística", "Alimentos", "Finanças", "Varejo", "Educação", "Telecom"},
		Suffixes: []string{"S.A.", "Holding", "Corporation", "Participações", "Investimentos", "Group", "Technologies", "Solutions"},
	}
}
