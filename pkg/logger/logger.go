package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	// Loggers for each level, initialized by SetupLogger.
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
)

// SetupLogger initializes the leveled loggers, writing to a date-named file
// under logs/ and to stdout.
func SetupLogger() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("falha ao criar diretório de logs: %v", err)
	}

	currentTime := time.Now()
	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", currentTime.Format("2006-01-02")))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("falha ao abrir arquivo de log: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	InfoLogger = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(multiWriter, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// Warning logs at warning level.
func Warning(format string, v ...interface{}) {
	WarningLogger.Printf(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
