package domain

import "context"

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TextGenerator sends a single prompt to a hosted language model.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, maxOutputTokens int) (string, error)
}

// Notifier delivers a plain-text message to the configured recipient.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}

// QuizStore maps issued quiz identifiers to their records.
type QuizStore interface {
	// Register stores the record under the next identifier ("1", "2", ...).
	Register(ctx context.Context, record QuizRecord) (QuizID, error)

	// Lookup returns nil, nil when the identifier was never registered.
	Lookup(ctx context.Context, id QuizID) (*QuizRecord, error)
}
