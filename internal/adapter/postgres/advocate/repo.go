// Package advocate implements the advocate repository using PostgreSQL.
// Statements are built with squirrel and rows are scanned with scany.
package advocate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/advocates-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocates-backend/internal/domain"
)

const (
	tableName = "advocates"

	// insertChunkSize keeps a multi-row INSERT well under PostgreSQL's
	// 65535 bind parameter limit.
	insertChunkSize = 500
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "first_name", "last_name", "city", "degree",
	"specialties", "years_of_experience", "phone_number", "created_at",
}

var insertColumns = []string{
	"first_name", "last_name", "city", "degree",
	"specialties", "years_of_experience", "phone_number",
}

// searchColumns are compared against every search term. Non-text columns are
// matched on their text rendering.
var searchColumns = []string{
	"first_name",
	"last_name",
	"city",
	"degree",
	"specialties::text",
	"years_of_experience::text",
	"phone_number::text",
}

// Repo provides advocate persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.DB
	txm *postgres.TxManager
}

// New creates a new advocate repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, txm: postgres.NewTxManager(db)}
}

type advocateRow struct {
	ID                int64     `db:"id"`
	FirstName         string    `db:"first_name"`
	LastName          string    `db:"last_name"`
	City              string    `db:"city"`
	Degree            string    `db:"degree"`
	Specialties       []string  `db:"specialties"`
	YearsOfExperience int       `db:"years_of_experience"`
	PhoneNumber       int64     `db:"phone_number"`
	CreatedAt         time.Time `db:"created_at"`
}

func (r advocateRow) toDomain() domain.Advocate {
	a := domain.Advocate{
		ID:                r.ID,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		City:              r.City,
		Degree:            r.Degree,
		Specialties:       r.Specialties,
		YearsOfExperience: r.YearsOfExperience,
		PhoneNumber:       r.PhoneNumber,
		CreatedAt:         r.CreatedAt,
	}
	a.Specialties = a.NormalizeSpecialties()
	return a
}

// Find returns up to limit advocates matching filter, skipping offset rows,
// ordered by id. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) Find(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]domain.Advocate, error) {
	q := psql.Select(columns...).
		From(tableName).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if !filter.IsEmpty() {
		q = q.Where(searchPredicate(filter.Terms))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find advocates query: %w", err)
	}

	var rows []advocateRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "find advocates")
	}

	out := make([]domain.Advocate, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Count returns the number of advocates matching filter.
func (r *Repo) Count(ctx context.Context, filter domain.SearchFilter) (int, error) {
	q := psql.Select("COUNT(*)").From(tableName)
	if !filter.IsEmpty() {
		q = q.Where(searchPredicate(filter.Terms))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count advocates query: %w", err)
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "count advocates")
	}
	return int(total), nil
}

// DeleteAll removes every advocate and returns the number of deleted rows.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := psql.Delete(tableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete advocates query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delete advocates")
	}
	return tag.RowsAffected(), nil
}

// InsertMany inserts advocates in chunks and returns the number inserted.
// ID and CreatedAt of the input are ignored; the database assigns both.
func (r *Repo) InsertMany(ctx context.Context, list []domain.Advocate) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	inserted := 0
	for start := 0; start < len(list); start += insertChunkSize {
		end := min(start+insertChunkSize, len(list))

		ins := psql.Insert(tableName).Columns(insertColumns...)
		for _, a := range list[start:end] {
			specialties, err := json.Marshal(a.NormalizeSpecialties())
			if err != nil {
				return inserted, fmt.Errorf("marshal specialties for %s %s: %w", a.FirstName, a.LastName, err)
			}
			ins = ins.Values(a.FirstName, a.LastName, a.City, a.Degree, specialties, a.YearsOfExperience, a.PhoneNumber)
		}

		query, args, err := ins.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build insert advocates query: %w", err)
		}

		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return inserted, postgres.MapError(err, "insert advocates")
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// ReplaceAll deletes every advocate and inserts list in one transaction.
// Readers never observe a partially replaced table.
func (r *Repo) ReplaceAll(ctx context.Context, list []domain.Advocate) (int, error) {
	var inserted int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := r.DeleteAll(ctx); err != nil {
			return err
		}
		n, err := r.InsertMany(ctx, list)
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("replace advocates: %w", err)
	}
	return inserted, nil
}

// searchPredicate renders the term-AND / field-OR rule: each term must be a
// case-insensitive substring of at least one search column.
func searchPredicate(terms []string) sq.Sqlizer {
	and := make(sq.And, 0, len(terms))
	for _, term := range terms {
		pattern := "%" + escapeLike(term) + "%"
		or := make(sq.Or, 0, len(searchColumns))
		for _, col := range searchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		and = append(and, or)
	}
	return and
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
