package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var personColumns = []string{
	"id", "name", "biography", "birth_date", "photo_url", "created_at", "updated_at",
}

func scanPerson(row rowScanner) (domain.Person, error) {
	var (
		p         domain.Person
		biography sql.NullString
		birthDate sql.NullTime
	)

	if err := row.Scan(
		&p.ID, &p.Name, &biography, &birthDate, &p.PhotoURL,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Person{}, err
	}

	p.Biography = biography.String
	if birthDate.Valid {
		t := birthDate.Time
		p.BirthDate = &t
	}

	return p, nil
}

func (r *Repository) ListPeople(
	ctx context.Context,
	filters domain.PersonFilters,
	page, pageSize int,
) ([]domain.Person, error) {
	sb := sqlbuilder.Select(personColumns...)
	sb.From("people")

	if filters.NameContains != "" {
		sb.Where(sb.Like("name", "%"+filters.NameContains+"%"))
	}
	sb.OrderBy("name")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running people query: %w", err)
	}
	defer closeRows(rows)

	people := []domain.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}

	return people, nil
}

func (r *Repository) FetchPerson(ctx context.Context, personID string) (domain.Person, error) {
	sb := sqlbuilder.Select(personColumns...)
	sb.From("people")
	sb.Where(sb.Equal("id", personID))

	query, args := sb.Build()
	p, err := scanPerson(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Person{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Person{}, fmt.Errorf("fetching person: %w", err)
	}
	return p, nil
}

func (r *Repository) CreatePerson(ctx context.Context, person domain.Person) error {
	var birthDate sql.NullTime
	if person.BirthDate != nil {
		birthDate = sql.NullTime{Time: *person.BirthDate, Valid: true}
	}

	ib := sqlbuilder.InsertInto("people")
	ib.Cols(personColumns...)
	ib.Values(
		person.ID, person.Name, person.Biography, birthDate, person.PhotoURL,
		person.CreatedAt, person.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

func (r *Repository) UpdatePerson(ctx context.Context, person domain.Person) error {
	var birthDate sql.NullTime
	if person.BirthDate != nil {
		birthDate = sql.NullTime{Time: *person.BirthDate, Valid: true}
	}

	ub := sqlbuilder.Update("people")
	ub.Set(
		ub.Assign("name", person.Name),
		ub.Assign("biography", person.Biography),
		ub.Assign("birth_date", birthDate),
		ub.Assign("photo_url", person.PhotoURL),
		ub.Assign("updated_at", person.UpdatedAt),
	)
	ub.Where(ub.Equal("id", person.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating person: %w", err)
	}

	if err := requireAffected(res); errors.Is(err, domain.ErrNotFound) {
		if _, fetchErr := r.FetchPerson(ctx, person.ID); fetchErr != nil {
			return fetchErr
		}
	} else if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DeletePerson(ctx context.Context, personID string) error {
	del := sqlbuilder.DeleteFrom("people")
	del.Where(del.Equal("id", personID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	return requireAffected(res)
}
