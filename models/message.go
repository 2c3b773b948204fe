package models

import "time"

// Message is a private post from one user to another. The body is sealed
// under the *recipient's* key at send time, so decrypting it always requires
// the recipient's key, regardless of who is reading.
//
// Recipient is a plain email string rather than a foreign key; it may point
// at an address that no longer exists, and readers must tolerate that.
type Message struct {
	// ID is the internal unique identifier of the message.
	ID int64 `json:"-"`

	// UserID references the authoring user.
	UserID int64 `json:"-"`

	// AuthorEmail is the author's email, populated by the store via a join
	// for read paths. Not a persisted column.
	AuthorEmail string `json:"-"`

	// Recipient is the email address the message was sent to.
	Recipient string `json:"recipient"`

	// Title is the plaintext subject line; it is not treated as sensitive.
	Title string `json:"title"`

	// Ciphertext is the Fernet token of the message body, produced under
	// the recipient's key.
	Ciphertext string `json:"-"`

	// DatePosted is the creation timestamp of the message.
	DatePosted time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "posts"
}
