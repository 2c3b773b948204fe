package crypto

import (
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/models"
)

// EncryptRecord seals the literal textual representation of a health metric
// under the owner's key and returns the ciphertext for storage.
func EncryptRecord(value string, ownerKey Key) (string, error) {
	ciphertext, err := Seal([]byte(value), ownerKey)
	if err != nil {
		return "", fmt.Errorf("error encrypting record: %w", err)
	}

	return ciphertext, nil
}

// DecryptRecords opens every record in the batch with the single supplied
// key and returns the caller-facing decrypted entries.
//
// Valid batches are always same-owner, so a key that fails on any single
// record indicates a caller logic error: the whole operation fails fast with
// ErrAuthFailure instead of silently omitting the row.
func DecryptRecords(records []models.Record, ownerEmail string, key Key) ([]models.DecryptedRecord, error) {
	decrypted := make([]models.DecryptedRecord, 0, len(records))

	for _, record := range records {
		value, err := Open(record.Ciphertext, key)
		if err != nil {
			return nil, fmt.Errorf("error decrypting record %d: %w", record.ID, err)
		}

		decrypted = append(decrypted, models.DecryptedRecord{
			ID:         record.ID,
			Author:     ownerEmail,
			DatePosted: record.DatePosted.Format(models.DateLayout),
			Record:     string(value),
		})
	}

	return decrypted, nil
}
