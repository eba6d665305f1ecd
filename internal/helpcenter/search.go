// Package helpcenter serves the help-center's article search.
package helpcenter

import (
	"sort"
	"strings"
)

// Article is one help-center entry.
type Article struct {
	ID      string `json:"id"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// Result is a matched article with its relevance count.
type Result struct {
	Article Article `json:"article"`
	Matches int     `json:"matches"`
}

// Index holds the searchable article set. Articles are static site content;
// the index is built once at startup.
type Index struct {
	articles []Article
}

// NewIndex builds an index over articles.
func NewIndex(articles []Article) *Index {
	return &Index{articles: articles}
}

// Search returns articles containing query, ordered by descending match
// count. Matching is case-insensitive substring counting over title and
// body; title hits weigh double so exact topic pages rank first. An empty
// query returns no results.
func (ix *Index) Search(query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Result
	for _, a := range ix.articles {
		matches := 2*strings.Count(strings.ToLower(a.Title), q) +
			strings.Count(strings.ToLower(a.Body), q)
		if matches > 0 {
			results = append(results, Result{Article: a, Matches: matches})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Matches > results[j].Matches
	})
	return results
}

// DefaultArticles is the article set for the published help center.
func DefaultArticles() []Article {
	return []Article{
		{
			ID:      "primeros-pasos",
			Section: "Comenzando",
			Title:   "Primeros pasos con ZONDA ERP",
			Body:    "Aprende a configurar tu empresa, dar de alta usuarios y personalizar los módulos de ZONDA ERP para tu operación.",
		},
		{
			ID:      "facturacion",
			Section: "Facturación",
			Title:   "Facturación electrónica (CFDI)",
			Body:    "Emite facturas CFDI 4.0, notas de crédito y complementos de pago. Configura tus certificados de sello digital y series de facturación.",
		},
		{
			ID:      "inventario",
			Section: "Inventario",
			Title:   "Control de inventario y almacenes",
			Body:    "Gestiona existencias, traspasos entre almacenes, conteos cíclicos y alertas de stock mínimo en el módulo de inventario.",
		},
		{
			ID:      "nominas",
			Section: "Nóminas",
			Title:   "Cálculo y timbrado de nómina",
			Body:    "Procesa nóminas semanales y quincenales, calcula percepciones y deducciones, y timbra los recibos ante el SAT.",
		},
		{
			ID:      "reportes",
			Section: "Reportes",
			Title:   "Reportes financieros y de ventas",
			Body:    "Genera estados de resultados, reportes de ventas por cliente o producto y exporta cualquier reporte a Excel.",
		},
		{
			ID:      "agendar-reunion",
			Section: "Soporte",
			Title:   "Agendar una reunión con el equipo",
			Body:    "Usa el agendador del sitio para reservar una reunión de 30 minutos por Google Meet con nuestro equipo de ventas.",
		},
	}
}
