package store

import (
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
)

// Repositories aggregates every repository backed by one database
// connection. It is the unit handed to the service layer at wiring time.
type Repositories struct {
	Users    UserRepository
	Records  RecordRepository
	Messages MessageRepository
}

// NewRepositories constructs all repositories over the given connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	logger.Info().Msg("creating repositories...")

	return &Repositories{
		Users:    NewUserRepository(db, logger),
		Records:  NewRecordRepository(db, logger),
		Messages: NewMessageRepository(db, logger),
	}
}
