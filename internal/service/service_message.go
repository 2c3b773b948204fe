package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/internal/crypto"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/policy"
	"github.com/GeorgesCH/SSDTeamProject/internal/store"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// messageService is the concrete implementation of MessageService.
//
// Message bodies are sealed under the recipient's key, so reading any
// conversation back requires resolving each message's recipient to its key.
// Listings resolve keys lazily with a small per-call cache and skip messages
// whose recipient account no longer exists.
type messageService struct {
	userRepository    store.UserRepository
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewMessageService constructs a MessageService wired to the given
// repositories.
func NewMessageService(userRepository store.UserRepository, messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		userRepository:    userRepository,
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// SendMessage encrypts body under the recipient's key and stores the
// message. The title stays plaintext. Sending to an email no account is
// registered under fails with ErrRecipientNotFound.
func (m *messageService) SendMessage(ctx context.Context, actor models.User, recipientEmail, title, body string) (models.DecryptedMessage, error) {
	log := logger.FromContext(ctx)

	if err := policy.Authorize(actor, policy.ActionSendMessage, nil); err != nil {
		return models.DecryptedMessage{}, err
	}

	if recipientEmail == "" || body == "" {
		return models.DecryptedMessage{}, fmt.Errorf("%w: recipient and content are required", ErrInvalidDataProvided)
	}

	recipient, err := m.userRepository.FindUserByEmail(ctx, recipientEmail)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("recipient", recipientEmail).Msg("message addressed to unknown recipient")
			return models.DecryptedMessage{}, fmt.Errorf("%w: %s", ErrRecipientNotFound, recipientEmail)
		}

		return models.DecryptedMessage{}, fmt.Errorf("recipient search by email failed: %w", err)
	}

	ciphertext, err := crypto.EncryptMessage(body, crypto.Key(recipient.Key))
	if err != nil {
		log.Err(err).Str("recipient", recipientEmail).Msg("message encryption failed")
		return models.DecryptedMessage{}, fmt.Errorf("message encryption failed: %w", err)
	}

	created, err := m.messageRepository.CreateMessage(ctx, models.Message{
		UserID:      actor.UserID,
		AuthorEmail: actor.Email,
		Recipient:   recipient.Email,
		Title:       title,
		Ciphertext:  ciphertext,
	})
	if err != nil {
		log.Err(err).Str("recipient", recipientEmail).Msg("message creation ended with error")
		return models.DecryptedMessage{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return models.DecryptedMessage{
		ID:         created.ID,
		Author:     actor.Email,
		Recipient:  recipient.Email,
		DatePosted: created.DatePosted.Format(models.DateLayout),
		Title:      created.Title,
		Content:    body,
	}, nil
}

// ListMessages returns every decrypted message the actor authored or
// received, newest first.
func (m *messageService) ListMessages(ctx context.Context, actor models.User) ([]models.DecryptedMessage, error) {
	if err := policy.Authorize(actor, policy.ActionReadMessages, nil); err != nil {
		return nil, err
	}

	messages, err := m.messageRepository.GetMessagesForUser(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("messages retrieval ended with error: %w", err)
	}

	return m.decryptAll(ctx, actor, messages)
}

// ListConversation returns the decrypted two-sided exchange between the
// actor and the account registered under otherEmail, newest first.
func (m *messageService) ListConversation(ctx context.Context, actor models.User, otherEmail string) ([]models.DecryptedMessage, error) {
	if err := policy.Authorize(actor, policy.ActionReadMessages, nil); err != nil {
		return nil, err
	}

	other, err := m.userRepository.FindUserByEmail(ctx, otherEmail)
	if err != nil {
		return nil, fmt.Errorf("conversation counterpart search by email failed: %w", err)
	}

	messages, err := m.messageRepository.GetConversation(ctx, actor, other)
	if err != nil {
		return nil, fmt.Errorf("conversation retrieval ended with error: %w", err)
	}

	return m.decryptAll(ctx, actor, messages)
}

// decryptAll opens every message body with its recipient's key. The actor's
// own key serves messages addressed to the actor; any other recipient is
// resolved by email once per call. A recipient that no longer exists makes
// the message unreadable, so it is skipped and logged rather than failing
// the whole listing.
func (m *messageService) decryptAll(ctx context.Context, actor models.User, messages []models.Message) ([]models.DecryptedMessage, error) {
	log := logger.FromContext(ctx)

	keys := map[string]crypto.Key{actor.Email: crypto.Key(actor.Key)}
	decrypted := make([]models.DecryptedMessage, 0, len(messages))

	for _, message := range messages {
		key, ok := keys[message.Recipient]
		if !ok {
			recipient, err := m.userRepository.FindUserByEmail(ctx, message.Recipient)
			if err != nil {
				log.Warn().
					Int64("message_id", message.ID).
					Str("recipient", message.Recipient).
					Msg("skipping message: recipient account no longer exists")
				keys[message.Recipient] = ""
				continue
			}

			key = crypto.Key(recipient.Key)
			keys[message.Recipient] = key
		}
		if key == "" {
			continue
		}

		entry, err := crypto.DecryptMessage(message, key)
		if err != nil {
			log.Err(err).Int64("message_id", message.ID).Msg("message decryption failed")
			return nil, fmt.Errorf("message decryption failed: %w", err)
		}

		decrypted = append(decrypted, entry)
	}

	return decrypted, nil
}
