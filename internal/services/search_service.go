package services

import (
	"time"

	"chavecerta/internal/domain"

	"github.com/google/uuid"
)

// Submission is one hero search form post. It is only logged; no query runs.
type Submission struct {
	ID         string
	Form       domain.SearchForm
	ReceivedAt time.Time
}

type SearchService struct {
	now func() time.Time
}

func NewSearchService() *SearchService { return &SearchService{now: time.Now} }

func (s *SearchService) Submit(form domain.SearchForm) Submission {
	return Submission{ID: uuid.NewString(), Form: form, ReceivedAt: s.now().UTC()}
}

// LogFields flattens the submission for the diagnostic log.
func (sub Submission) LogFields() map[string]any {
	f := map[string]any{
		"search_id": sub.ID,
		"cidade":    sub.Form.City,
	}
	if sub.Form.Category != "" {
		f["tipo"] = sub.Form.Category
	}
	if sub.Form.MinPrice != nil {
		f["precoMin"] = *sub.Form.MinPrice
	}
	if sub.Form.MaxPrice != nil {
		f["precoMax"] = *sub.Form.MaxPrice
	}
	if sub.Form.Rooms != nil {
		f["quartos"] = *sub.Form.Rooms
	}
	return f
}
