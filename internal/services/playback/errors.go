package playback

// PlaybackError is a custom error type for playback-related errors
type PlaybackError string

// Error implements the error interface
func (e PlaybackError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveSession PlaybackError = "no active voice session"
	ErrNilConfig       PlaybackError = "config cannot be nil"
	ErrNilDialer       PlaybackError = "dialer cannot be nil"
	ErrNilResolver     PlaybackError = "resolver cannot be nil"
)
