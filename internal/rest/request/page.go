package request

import (
	"github.com/Guyuepp/go-tube-engagement/domain"
)

// Page carries the shared pagination query parameters.
type Page struct {
	Page     string `form:"page"`
	Limit    string `form:"limit"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
}

// ToDomain: Request -> Domain. Bad numbers fall back to defaults.
func (r *Page) ToDomain() domain.PageQuery {
	return domain.ParsePageQuery(r.Page, r.Limit, r.SortBy, r.SortType)
}

// VideoList is the query of GET /videos.
type VideoList struct {
	Page
	Query  string `form:"query" binding:"max=200"`
	UserID int64  `form:"userId" binding:"omitempty,gt=0"`
	// Published drops unpublished videos when set.
	Published bool `form:"published"`
}

func (r *VideoList) Filter() domain.ListFilter {
	return domain.ListFilter{
		OwnerID:       r.UserID,
		Query:         r.Query,
		PublishedOnly: r.Published,
	}
}
