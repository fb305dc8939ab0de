package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// Sortable fields per collection, logical name -> column. Anything else sorts by created_at.
var (
	videoSortColumns = map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"views":     "views",
		"title":     "title",
		"duration":  "duration",
	}
	commentSortColumns = map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	tweetSortColumns    = commentSortColumns
	playlistSortColumns = map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"name":      "name",
	}
)

type scope = func(*gorm.DB) *gorm.DB

// paginate applies the whitelisted sort (id as tie breaker) and skip/limit of q.
func paginate(q domain.PageQuery, columns map[string]string) scope {
	return func(db *gorm.DB) *gorm.DB {
		col, ok := columns[q.SortField]
		if !ok {
			col = "created_at"
		}
		desc := q.Descending()
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
			Offset(q.Offset()).
			Limit(q.Limit)
	}
}

// containsFold matches column against query as a case-insensitive substring.
func containsFold(column, query string) scope {
	return func(db *gorm.DB) *gorm.DB {
		if query == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+escapeLike(strings.ToLower(query))+"%")
	}
}

func ownedBy(ownerID int64) scope {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID <= 0 {
			return db
		}
		return db.Where("owner_id = ?", ownerID)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// findPage counts the filtered rows, then loads the requested window of them.
// The count is taken before skip/limit so it is the filtered total.
func findPage[M any, T any](ctx context.Context, db *gorm.DB, q domain.PageQuery, columns map[string]string, toDomain func(*M) T, filters ...scope) ([]T, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(M)).Scopes(filters...).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 || int64(q.Offset()) >= total {
		return []T{}, total, nil
	}

	var rows []M
	err := db.WithContext(ctx).
		Model(new(M)).
		Scopes(filters...).
		Scopes(paginate(q, columns)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	res := make([]T, len(rows))
	for i := range rows {
		res[i] = toDomain(&rows[i])
	}
	return res, total, nil
}
