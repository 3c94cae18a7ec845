package service

import (
	"encoding/json"
	"log"

	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/meilisearch/meilisearch-go"
)

const usersIndex = "users"

// SearchService keeps the member directory index in sync and serves
// name/department search for the community pages.
type SearchService interface {
	IndexUser(user *model.User) error
	DeleteUser(id string) error
	SearchUsers(query string, limit int) ([]MemberHit, error)
}

// MemberHit is one member directory search result.
type MemberHit struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Campus     string `json:"campus"`
}

type searchService struct {
	client meilisearch.ServiceManager
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	filterableAttrs := []string{"department", "campus"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(usersIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update users filterable attributes: %v", err)
	}
}

func (s *searchService) IndexUser(user *model.User) error {
	doc := MemberHit{
		ID:         user.ID.String(),
		Name:       user.Name,
		Department: user.Department,
		Campus:     user.Campus,
	}

	_, err := s.client.Index(usersIndex).AddDocuments([]MemberHit{doc}, strPtr("id"))
	return err
}

func (s *searchService) DeleteUser(id string) error {
	_, err := s.client.Index(usersIndex).DeleteDocument(id)
	return err
}

func (s *searchService) SearchUsers(query string, limit int) ([]MemberHit, error) {
	if limit <= 0 {
		limit = 20
	}

	resp, err := s.client.Index(usersIndex).Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}

	var hits []MemberHit
	if err := json.Unmarshal(payload, &hits); err != nil {
		return nil, err
	}

	return hits, nil
}

func strPtr(s string) *string {
	return &s
}
