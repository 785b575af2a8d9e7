package xparchive

import (
	"context"
	"database/sql"

	"xptracker-backend/lib/xparchive/db"
)

// Archive keeps the long term daily gain history in sqlite. Unlike
// the JSON snapshot, which only holds whatever window guildstats
// still displays, the archive accumulates forever.
type Archive struct {
	db  *sql.DB
	qry *db.Queries
}

func NewArchive(database *sql.DB) Archive {
	return Archive{
		db:  database,
		qry: db.New(database),
	}
}

// Push records every character's gain for one date. Re-pushing the
// same date overwrites, a rerun of the pipeline must not double
// count.
func (a Archive) Push(ctx context.Context, date string, gains map[string]int) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := a.qry.WithTx(tx)

	for name, gain := range gains {
		err := txqry.CreateCharacter(ctx, name)
		if err != nil {
			return err
		}
		characterId, err := txqry.GetCharacterId(ctx, name)
		if err != nil {
			return err
		}
		err = txqry.UpsertDayGain(ctx, db.UpsertDayGainParams{
			CharacterID: characterId,
			Date:        date,
			Gain:        int64(gain),
		})
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

type DayGain struct {
	Date string
	Gain int
}

// Series returns one character's archived gains in ascending date
// order.
func (a Archive) Series(ctx context.Context, character string) ([]DayGain, error) {
	rows, err := a.qry.GetGainSeries(ctx, character)
	if err != nil {
		return nil, err
	}

	series := make([]DayGain, len(rows))
	for i, r := range rows {
		series[i] = DayGain{Date: r.Date, Gain: int(r.Gain)}
	}
	return series, nil
}

type CharacterGain struct {
	Name string
	Gain int
}

// GainsOn returns all archived gains for one date, highest first.
func (a Archive) GainsOn(ctx context.Context, date string) ([]CharacterGain, error) {
	rows, err := a.qry.GetGainsOn(ctx, date)
	if err != nil {
		return nil, err
	}

	gains := make([]CharacterGain, len(rows))
	for i, r := range rows {
		gains[i] = CharacterGain{Name: r.Name, Gain: int(r.Gain)}
	}
	return gains, nil
}
