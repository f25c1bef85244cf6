package store

import (
	"context"
)

type dbPinger struct {
	db *DB
}

// NewPinger returns a [Pinger] over db.
func NewPinger(db *DB) Pinger {
	return &dbPinger{db: db}
}

func (p *dbPinger) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return p.db.wrapError(ErrStorageUnavailable, err)
	}
	return nil
}
