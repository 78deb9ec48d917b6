package logger

import (
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Logging Configuration Functions
////////////////////////////////////////////////////////////////////////////////

// InitLogger initializes the application logger with the specified configuration
func InitLogger(dbg bool, logFile io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if dbg {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	log.AddHook(lfshook.NewHook(logFile, nil))
}

////////////////////////////////////////////////////////////////////////////////

// SetRestyLogger attaches a dedicated logrus instance to the API client so its
// request traffic lands in its own file instead of the application log
func SetRestyLogger(client *resty.Client, out io.Writer) {
	logger := log.New()
	logger.SetLevel(log.InfoLevel)
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
	})
	client.SetLogger(logger)
}
