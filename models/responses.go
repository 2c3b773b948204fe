package models

// DecryptedRecord is the caller-facing representation of a health record
// after its ciphertext has been opened. Dates use the YYYY-MM-DD form.
type DecryptedRecord struct {
	// ID is the record identifier.
	ID int64 `json:"id"`

	// Author is the email of the owning user.
	Author string `json:"author"`

	// DatePosted is the creation date formatted as YYYY-MM-DD.
	DatePosted string `json:"date_posted"`

	// Record is the decrypted metric value, e.g. "120/80".
	Record string `json:"record"`
}

// DecryptedMessage is the caller-facing representation of a private message
// after its body has been opened with the recipient's key.
type DecryptedMessage struct {
	// ID is the message identifier.
	ID int64 `json:"id"`

	// Author is the email of the sending user.
	Author string `json:"author"`

	// Recipient is the email the message was addressed to.
	Recipient string `json:"recipient"`

	// DatePosted is the creation date formatted as YYYY-MM-DD.
	DatePosted string `json:"date_posted"`

	// Title is the plaintext subject line.
	Title string `json:"title"`

	// Content is the decrypted message body.
	Content string `json:"content"`
}

// DateLayout is the wire format for DatePosted fields of decrypted entries.
const DateLayout = "2006-01-02"
