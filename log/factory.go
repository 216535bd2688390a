package log

// NewConsoleLogger returns a logger which writes colored lines to standard output.
func NewConsoleLogger() *ConsoleLogger {
	return NewConsoleLoggerWithOptions(ConsoleLoggerOptions{})
}

// NewConsoleLoggerWithOptions returns a console logger using the given options, zero values are defaulted.
func NewConsoleLoggerWithOptions(options ConsoleLoggerOptions) *ConsoleLogger {
	options.defaults()

	return &ConsoleLogger{writer: options.Writer, timeProvider: options.TimeProvider}
}

// NewFileLogger returns a logger which appends lines to the file at the given path.
//
// NOTE: The path isn't validated, any problems with it are reported when logging.
func NewFileLogger(path string) *FileLogger {
	return NewFileLoggerWithOptions(path, FileLoggerOptions{})
}

// NewFileLoggerWithOptions returns a file logger using the given options, zero values are defaulted.
func NewFileLoggerWithOptions(path string, options FileLoggerOptions) *FileLogger {
	options.defaults()

	return &FileLogger{
		path:         path,
		mode:         options.Mode,
		lockFile:     options.LockFile,
		errorWriter:  options.ErrorWriter,
		timeProvider: options.TimeProvider,
	}
}
