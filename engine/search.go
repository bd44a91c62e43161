package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blevesearch/bleve"

	"github.com/drummonds/travelGenius/catalog"
)

// searchDocument is the flattened form of a catalog entry that gets indexed
type searchDocument struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SearchHit is a single search result returned to the client
type SearchHit struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// SetupSearchDB indexes the whole catalog into an in-memory bleve index
func SetupSearchDB() (bleve.Index, map[string]searchDocument, error) {
	Logger.Info("Creating bleve index mapping")
	mapping := bleve.NewIndexMapping()
	index, err := bleve.NewMemOnly(mapping)
	if err != nil {
		Logger.Error("Failed to create bleve index", "error", err)
		return nil, nil, err
	}
	docs := catalogDocuments()
	batch := index.NewBatch()
	for id, doc := range docs {
		if err := batch.Index(id, doc); err != nil {
			index.Close()
			return nil, nil, fmt.Errorf("indexing %s: %w", id, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, nil, fmt.Errorf("writing search batch: %w", err)
	}
	Logger.Info("Catalog indexed", "documents", len(docs))
	return index, docs, nil
}

func catalogDocuments() map[string]searchDocument {
	docs := make(map[string]searchDocument)
	for c, category := range catalog.Attractions() {
		for p, place := range category.Places {
			docs[fmt.Sprintf("attraction/%d/%d", c, p)] = searchDocument{
				Kind:  "attraction",
				Title: place.Name,
				Body:  strings.Join([]string{category.Name, place.Description, place.Tip}, " "),
			}
		}
	}
	for i, cuisine := range catalog.Cuisines() {
		body := []string{cuisine.Description}
		for _, restaurant := range cuisine.Restaurants {
			body = append(body, restaurant.Name)
		}
		docs[fmt.Sprintf("cuisine/%d", i)] = searchDocument{
			Kind:  "cuisine",
			Title: cuisine.Type,
			Body:  strings.Join(body, " "),
		}
	}
	for i, tip := range catalog.Tips() {
		docs[fmt.Sprintf("tip/%d", i)] = searchDocument{
			Kind:  "tip",
			Title: tip.Category,
			Body:  tip.Text,
		}
	}
	return docs
}

// SearchCatalogTerm runs a single term or phrase search and maps the hits back onto catalog entries
func SearchCatalogTerm(searchTerm string, index bleve.Index, docs map[string]searchDocument) (uint64, []SearchHit, error) {
	var request *bleve.SearchRequest
	if strings.IndexFunc(searchTerm, unicode.IsSpace) >= 0 { //if there is a space in the term, do a phrase search
		Logger.Debug("Found space in search term, converting to phrase", "searchTerm", searchTerm)
		titlePhrase := bleve.NewMatchPhraseQuery(searchTerm)
		titlePhrase.SetField("title")
		bodyPhrase := bleve.NewMatchPhraseQuery(searchTerm)
		bodyPhrase.SetField("body")
		request = bleve.NewSearchRequest(bleve.NewDisjunctionQuery(titlePhrase, bodyPhrase))
	} else {
		request = bleve.NewSearchRequest(bleve.NewMatchQuery(searchTerm))
	}
	request.Size = len(docs)
	results, err := index.Search(request)
	if err != nil {
		return 0, nil, err
	}
	hits := make([]SearchHit, 0, len(results.Hits))
	for _, match := range results.Hits {
		doc := docs[match.ID]
		hits = append(hits, SearchHit{ID: match.ID, Kind: doc.Kind, Title: doc.Title, Score: match.Score})
	}
	return results.Total, hits, nil
}
