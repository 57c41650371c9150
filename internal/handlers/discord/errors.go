package discord

// HandlerError is a custom error type for handler-layer errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     HandlerError = "config cannot be nil"
	ErrNilSession    HandlerError = "session cannot be nil"
	ErrNilReplier    HandlerError = "replier cannot be nil"
	ErrNilEconomy    HandlerError = "economy service cannot be nil"
	ErrNilDrawing    HandlerError = "drawing service cannot be nil"
	ErrNilPlayback   HandlerError = "playback service cannot be nil"
	ErrNilAIClient   HandlerError = "ai client cannot be nil"
	ErrNilModerator  HandlerError = "moderator cannot be nil"
	ErrNilClock      HandlerError = "clock cannot be nil"
	ErrNilRouter     HandlerError = "router cannot be nil"
	ErrEmptyPrefix   HandlerError = "prefix cannot be empty"
	ErrNilDispatcher HandlerError = "dispatcher cannot be nil"
)
