package service

import (
	"context"
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/internal/crypto"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/policy"
	"github.com/GeorgesCH/SSDTeamProject/internal/store"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// recordService is the concrete implementation of RecordService. Plaintext
// exists only inside this layer: values are sealed under the owner's key
// before they reach the repository and opened again on the way out.
type recordService struct {
	userRepository   store.UserRepository
	recordRepository store.RecordRepository
	logger           *logger.Logger
}

// NewRecordService constructs a RecordService wired to the given
// repositories.
func NewRecordService(userRepository store.UserRepository, recordRepository store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		userRepository:   userRepository,
		recordRepository: recordRepository,
		logger:           logger,
	}
}

// SubmitRecord encrypts value under the actor's own key and stores it.
// Only astronauts submit records, always for themselves; the policy engine
// enforces both.
func (r *recordService) SubmitRecord(ctx context.Context, actor models.User, kind, value string) (models.DecryptedRecord, error) {
	log := logger.FromContext(ctx)

	recordKind, err := models.ParseRecordKind(kind)
	if err != nil {
		log.Error().Str("kind", kind).Msg("unknown record kind on submit")
		return models.DecryptedRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if value == "" {
		return models.DecryptedRecord{}, fmt.Errorf("%w: record value is required", ErrInvalidDataProvided)
	}

	if err := policy.Authorize(actor, policy.ActionSubmitRecord, &actor); err != nil {
		return models.DecryptedRecord{}, err
	}

	ciphertext, err := crypto.EncryptRecord(value, crypto.Key(actor.Key))
	if err != nil {
		log.Err(err).Int64("user_id", actor.UserID).Msg("record encryption failed")
		return models.DecryptedRecord{}, fmt.Errorf("record encryption failed: %w", err)
	}

	created, err := r.recordRepository.CreateRecord(ctx, models.Record{
		UserID:     actor.UserID,
		Kind:       recordKind,
		Ciphertext: ciphertext,
	})
	if err != nil {
		log.Err(err).Int64("user_id", actor.UserID).Msg("record creation ended with error")
		return models.DecryptedRecord{}, fmt.Errorf("record creation ended with error: %w", err)
	}

	return models.DecryptedRecord{
		ID:         created.ID,
		Author:     actor.Email,
		DatePosted: created.DatePosted.Format(models.DateLayout),
		Record:     value,
	}, nil
}

// ListRecords returns the decrypted records of the given kind owned by
// ownerEmail. An empty ownerEmail means the actor's own records. Viewing
// another user's records requires Admin or Medic and an Astronaut target.
func (r *recordService) ListRecords(ctx context.Context, actor models.User, kind, ownerEmail string) ([]models.DecryptedRecord, error) {
	log := logger.FromContext(ctx)

	recordKind, err := models.ParseRecordKind(kind)
	if err != nil {
		log.Error().Str("kind", kind).Msg("unknown record kind on list")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	owner := actor
	if ownerEmail != "" && ownerEmail != actor.Email {
		// Deny by role before looking the owner up, so a rejected caller
		// cannot tell whether the email exists.
		if err := policy.Authorize(actor, policy.ActionViewRecords, &models.User{Role: models.RoleAstronaut}); err != nil {
			return nil, err
		}

		owner, err = r.userRepository.FindUserByEmail(ctx, ownerEmail)
		if err != nil {
			return nil, fmt.Errorf("record owner search by email failed: %w", err)
		}
	}

	if err := policy.Authorize(actor, policy.ActionViewRecords, &owner); err != nil {
		return nil, err
	}

	records, err := r.recordRepository.GetRecordsByOwner(ctx, owner.UserID, recordKind)
	if err != nil {
		log.Err(err).Int64("user_id", owner.UserID).Msg("records retrieval ended with error")
		return nil, fmt.Errorf("records retrieval ended with error: %w", err)
	}

	decrypted, err := crypto.DecryptRecords(records, owner.Email, crypto.Key(owner.Key))
	if err != nil {
		log.Err(err).Int64("user_id", owner.UserID).Msg("record decryption failed")
		return nil, fmt.Errorf("record decryption failed: %w", err)
	}

	return decrypted, nil
}
