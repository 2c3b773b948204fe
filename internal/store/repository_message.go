package store

import (
	"context"
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
// Read paths join the users table so that every returned message carries the
// author's email; recipient stays a plain string column and may dangle.
type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists an encrypted message and returns it with
// server-assigned fields (ID, DatePosted).
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMessage,
		message.UserID, message.Recipient, message.Title, message.Ciphertext)

	created := models.Message{AuthorEmail: message.AuthorEmail}
	if err := row.Scan(&created.ID, &created.UserID, &created.Recipient, &created.Title, &created.Ciphertext, &created.DatePosted); err != nil {
		log.Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Int64("user_id", message.UserID).
			Str("recipient", message.Recipient).
			Msg("error creating message")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetMessagesForUser returns every message user authored or received,
// ordered by creation time descending.
func (r *messageRepository) GetMessagesForUser(ctx context.Context, user models.User) ([]models.Message, error) {
	return r.queryMessages(ctx, "*messageRepository.GetMessagesForUser", getMessagesForUser, user.UserID, user.Email)
}

// GetConversation returns the two-sided exchange between user and other,
// ordered by creation time descending.
func (r *messageRepository) GetConversation(ctx context.Context, user models.User, other models.User) ([]models.Message, error) {
	query, args, err := buildConversationQuery(user, other)
	if err != nil {
		return nil, err
	}

	return r.queryMessages(ctx, "*messageRepository.GetConversation", query, args...)
}

func (r *messageRepository) queryMessages(ctx context.Context, funcName, query string, args ...any) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute messages query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 32)

	for rows.Next() {
		var message models.Message
		scanErr := rows.Scan(
			&message.ID,
			&message.UserID,
			&message.AuthorEmail,
			&message.Recipient,
			&message.Title,
			&message.Ciphertext,
			&message.DatePosted,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
