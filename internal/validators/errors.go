package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAction     = errors.New("invalid block action")
	ErrEmptyBlockID      = errors.New("block id is required")
	ErrInvalidBlockType  = errors.New("invalid block type")
	ErrEmptyTitle        = errors.New("block title is required")
	ErrEmptySummary      = errors.New("block summary is required")
	ErrInvalidStrength   = errors.New("block strength must be between 1 and 5")
	ErrInvalidSentiment  = errors.New("invalid sentiment")
	ErrInvalidEnergy     = errors.New("invalid energy level")
	ErrEmptyMetaSummary  = errors.New("meta summary is required")
	ErrInvalidActionKind = errors.New("invalid action item kind")
	ErrEmptyActionText   = errors.New("action item text is required")
	ErrEmptyLabel        = errors.New("language pattern label is required")
	ErrTooManyItems      = errors.New("too many items")
	ErrPatternCount      = errors.New("between 1 and 3 language patterns are required")
	ErrNilOperations     = errors.New("blocks array is required")

	ErrEmptyTranscript       = errors.New("transcript is required")
	ErrTranscriptTooLong     = errors.New("transcript is too long")
	ErrTooManyExistingBlocks = errors.New("too many existing blocks")
	ErrDuplicateBlockID      = errors.New("duplicate block id")
	ErrInvalidConversation   = errors.New("invalid conversation id")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
	ErrEmptyEmail            = errors.New("email is required")
	ErrEmptyPassword         = errors.New("password is required")
)
