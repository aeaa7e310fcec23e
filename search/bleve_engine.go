package search

import (
	"strconv"
	"strings"

	"fortune-dashboard/models"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

var searchFields = []string{"name", "ticker", "industry"}

// BleveEngine answers filters from an in-memory bleve index. Each field is
// indexed lowercased as a single keyword term, so a "*q*" wildcard is a
// substring match.
type BleveEngine struct {
	index     bleve.Index
	companies []models.Company
}

func NewBleveEngine(companies []models.Company) (*BleveEngine, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, errors.Wrap(err, "create index")
	}

	batch := index.NewBatch()
	for i, c := range companies {
		doc := map[string]interface{}{
			"name":     strings.ToLower(c.Name),
			"ticker":   strings.ToLower(c.Ticker),
			"industry": strings.ToLower(c.Industry),
		}
		// Position in the base list is the document ID; tickers may repeat as N/A.
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			index.Close()
			return nil, errors.Wrap(err, "add to batch")
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, errors.Wrap(err, "execute batch")
	}

	return &BleveEngine{index: index, companies: companies}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	companyMapping := bleve.NewDocumentStaticMapping()
	for _, f := range searchFields {
		fm := bleve.NewKeywordFieldMapping()
		fm.Store = false
		companyMapping.AddFieldMappingsAt(f, fm)
	}
	indexMapping.DefaultMapping = companyMapping

	return indexMapping
}

func (e *BleveEngine) Filter(text string) []models.Company {
	// Wildcard metacharacters cannot be escaped in a bleve wildcard query.
	if text == "" || strings.ContainsAny(text, "*?") {
		return Filter(e.companies, text)
	}

	q := strings.ToLower(text)
	disjuncts := make([]query.Query, 0, len(searchFields))
	for _, f := range searchFields {
		wq := bleve.NewWildcardQuery("*" + q + "*")
		wq.SetField(f)
		disjuncts = append(disjuncts, wq)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(disjuncts...), len(e.companies), 0, false)
	res, err := e.index.Search(req)
	if err != nil {
		logs.Errorf("bleve filter %q, falling back to scan, err: %+v", text, err)
		return Filter(e.companies, text)
	}

	hit := make(map[int]struct{}, len(res.Hits))
	for _, h := range res.Hits {
		i, err := strconv.Atoi(h.ID)
		if err != nil {
			continue
		}
		hit[i] = struct{}{}
	}

	// Hits come back by score; restore base order.
	results := make([]models.Company, 0, len(hit))
	for i, c := range e.companies {
		if _, ok := hit[i]; ok {
			results = append(results, c)
		}
	}
	return results
}

func (e *BleveEngine) Close() error {
	return e.index.Close()
}
