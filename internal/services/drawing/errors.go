package drawing

// DrawingError is a custom error type for drawing-related errors
type DrawingError string

// Error implements the error interface
func (e DrawingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidDuration DrawingError = "duration must be a positive number of minutes"
	ErrEmptyPrize      DrawingError = "prize cannot be empty"
	ErrDrawingNotFound DrawingError = "drawing not found"
	ErrNilConfig       DrawingError = "config cannot be nil"
	ErrNilMessenger    DrawingError = "messenger cannot be nil"
	ErrNilClock        DrawingError = "clock cannot be nil"
	ErrNilPicker       DrawingError = "picker cannot be nil"
)
