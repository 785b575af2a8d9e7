package db

import (
	"context"
	"database/sql"

	_ "embed"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const createCharacter = `
INSERT INTO characters (name) VALUES (?)
ON CONFLICT (name) DO NOTHING
`

func (q *Queries) CreateCharacter(ctx context.Context, name string) error {
	_, err := q.db.ExecContext(ctx, createCharacter, name)
	return err
}

const getCharacterId = `
SELECT id FROM characters WHERE name = ?
`

func (q *Queries) GetCharacterId(ctx context.Context, name string) (int64, error) {
	row := q.db.QueryRowContext(ctx, getCharacterId, name)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertDayGain = `
INSERT INTO day_gains (character_id, date, gain) VALUES (?, ?, ?)
ON CONFLICT (character_id, date) DO UPDATE SET gain = excluded.gain
`

type UpsertDayGainParams struct {
	CharacterID int64
	Date        string
	Gain        int64
}

func (q *Queries) UpsertDayGain(ctx context.Context, arg UpsertDayGainParams) error {
	_, err := q.db.ExecContext(ctx, upsertDayGain, arg.CharacterID, arg.Date, arg.Gain)
	return err
}

const getGainSeries = `
SELECT day_gains.date, day_gains.gain
FROM day_gains
JOIN characters ON characters.id = day_gains.character_id
WHERE characters.name = ?
ORDER BY day_gains.date ASC
`

type GetGainSeriesRow struct {
	Date string
	Gain int64
}

func (q *Queries) GetGainSeries(ctx context.Context, name string) ([]GetGainSeriesRow, error) {
	rows, err := q.db.QueryContext(ctx, getGainSeries, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetGainSeriesRow
	for rows.Next() {
		var r GetGainSeriesRow
		if err := rows.Scan(&r.Date, &r.Gain); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getGainsOn = `
SELECT characters.name, day_gains.gain
FROM day_gains
JOIN characters ON characters.id = day_gains.character_id
WHERE day_gains.date = ?
ORDER BY day_gains.gain DESC, characters.name ASC
`

type GetGainsOnRow struct {
	Name string
	Gain int64
}

func (q *Queries) GetGainsOn(ctx context.Context, date string) ([]GetGainsOnRow, error) {
	rows, err := q.db.QueryContext(ctx, getGainsOn, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetGainsOnRow
	for rows.Next() {
		var r GetGainsOnRow
		if err := rows.Scan(&r.Name, &r.Gain); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
