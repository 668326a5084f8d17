package store

import (
	"context"
	"fmt"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/jmoiron/sqlx"
	"github.com/mamadou288/shop-api/internal/dependency"
)

// bindNamed expands :name parameters (and slices for IN) into the
// placeholder style of conn's driver.
func bindNamed(conn dependency.DB, query string, params map[string]any) (string, []any, error) {
	queryNamed := namedParameterQuery.NewNamedParameterQuery(query)
	queryNamed.SetValuesFromMap(params)
	query, args, err := sqlx.In(queryNamed.GetParsedQuery(), queryNamed.GetParsedParameters()...)
	if err != nil {
		return "", nil, fmt.Errorf("sqlx in: %w", err)
	}
	return conn.Rebind(query), args, nil
}

func QueryListNamed[T any](
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) ([]T, error) {
	query, args, err := bindNamed(conn, query, params)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var target []T
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		target = append(target, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return target, nil
}

func QueryCountNamed(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) (int, error) {
	query, args, err := bindNamed(conn, query, params)
	if err != nil {
		return 0, err
	}

	var count int
	if err := conn.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("query row scan: %w", err)
	}
	return count, nil
}

// nolint: interfacer
func ExecNamed(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) error {
	query, args, err := bindNamed(conn, query, params)
	if err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ExecContext: %w", err)
	}
	return nil
}
