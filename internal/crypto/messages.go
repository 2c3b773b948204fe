package crypto

import (
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/models"
)

// EncryptMessage seals a message body under the recipient's key at send
// time. The recipient — not the author — anchors confidentiality: reading
// the body back always requires the recipient's key, even for the sender.
//
// This is storage confidentiality, not end-to-end messaging secrecy: the
// server holds every key and mediates each lookup, so the scheme protects
// against raw-database-dump inspection only.
func EncryptMessage(body string, recipientKey Key) (string, error) {
	ciphertext, err := Seal([]byte(body), recipientKey)
	if err != nil {
		return "", fmt.Errorf("error encrypting message: %w", err)
	}

	return ciphertext, nil
}

// DecryptMessage opens a single message body with the recipient's key and
// returns the caller-facing entry. The caller supplies whichever key belongs
// to the message's recipient, regardless of whether the viewer is the sender
// or the recipient.
func DecryptMessage(message models.Message, recipientKey Key) (models.DecryptedMessage, error) {
	body, err := Open(message.Ciphertext, recipientKey)
	if err != nil {
		return models.DecryptedMessage{}, fmt.Errorf("error decrypting message %d: %w", message.ID, err)
	}

	return models.DecryptedMessage{
		ID:         message.ID,
		Author:     message.AuthorEmail,
		Recipient:  message.Recipient,
		DatePosted: message.DatePosted.Format(models.DateLayout),
		Title:      message.Title,
		Content:    string(body),
	}, nil
}

// DecryptMessages opens a same-recipient batch with one key. Like record
// batches, a failure on any message fails the whole batch.
func DecryptMessages(messages []models.Message, recipientKey Key) ([]models.DecryptedMessage, error) {
	decrypted := make([]models.DecryptedMessage, 0, len(messages))

	for _, message := range messages {
		entry, err := DecryptMessage(message, recipientKey)
		if err != nil {
			return nil, err
		}

		decrypted = append(decrypted, entry)
	}

	return decrypted, nil
}
